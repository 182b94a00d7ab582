package verification

import (
	"context"
	"errors"

	"acclivity-be/internal/logger"

	"go.uber.org/zap"
)

var ErrMissingUserID = errors.New("user ID is required")

type SubmitParams struct {
	UserID           int64
	NationalIDNumber *string
}

type Service interface {
	Submit(ctx context.Context, params SubmitParams) (*Verification, error)
	Status(ctx context.Context, userID int64) (*Verification, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Submit records a new verification attempt. The face-match decision is
// made by an external review surface; submissions always start pending.
func (s *service) Submit(ctx context.Context, params SubmitParams) (*Verification, error) {
	if params.UserID == 0 {
		return nil, ErrMissingUserID
	}

	v := &Verification{
		UserID:           params.UserID,
		NationalIDNumber: params.NationalIDNumber,
		Status:           StatusPending,
	}

	id, err := s.repo.Insert(ctx, v)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to submit verification",
			zap.Int64("user_id", params.UserID),
			zap.Error(err),
		)
		return nil, err
	}
	v.ID = id

	return v, nil
}

// Status returns the latest verification record, or a synthetic "none"
// record when the user has never submitted one.
func (s *service) Status(ctx context.Context, userID int64) (*Verification, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}

	v, err := s.repo.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return &Verification{UserID: userID, Status: StatusNone}, nil
	}

	return v, nil
}
