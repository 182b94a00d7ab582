package notification

import (
	"context"

	"acclivity-be/internal/logger"

	"go.uber.org/zap"
)

type CreateParams struct {
	Title          string
	Message        string
	Type           string
	TargetAudience string
}

type Service interface {
	ListActive(ctx context.Context, userID int64, limit int) ([]*Notification, error)
	Create(ctx context.Context, params CreateParams) (int64, error)
	MarkRead(ctx context.Context, notificationID, userID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListActive(ctx context.Context, userID int64, limit int) ([]*Notification, error) {
	if limit < 1 {
		limit = DefaultLimit
	}
	return s.repo.ListActive(ctx, userID, limit)
}

func (s *service) MarkRead(ctx context.Context, notificationID, userID int64) error {
	if notificationID == 0 || userID == 0 {
		return ErrMissingFields
	}
	return s.repo.MarkRead(ctx, notificationID, userID)
}

func (s *service) Create(ctx context.Context, params CreateParams) (int64, error) {
	if params.Title == "" || params.Message == "" {
		return 0, ErrMissingFields
	}

	if params.Type == "" {
		params.Type = DefaultType
	}
	if params.TargetAudience == "" {
		params.TargetAudience = DefaultAudience
	}

	id, err := s.repo.Insert(ctx, &Notification{
		Title:          params.Title,
		Message:        params.Message,
		Type:           params.Type,
		TargetAudience: params.TargetAudience,
	})
	if err != nil {
		return 0, err
	}

	logger.FromCtx(ctx).Info("notification created",
		zap.Int64("notification_id", id),
		zap.String("type", params.Type),
		zap.String("target_audience", params.TargetAudience),
	)

	return id, nil
}
