package earnings

import (
	"context"
	"time"

	"acclivity-be/internal/logger"
	"acclivity-be/internal/metrics"
	"acclivity-be/internal/settings"

	"go.uber.org/zap"
)

type RecordEarningParams struct {
	UserID       int64
	Type         EarningType
	PointsEarned float64
	PointsSpent  float64
	Description  string
	ReferenceID  *int64
}

type Service interface {
	RecordEarning(ctx context.Context, params RecordEarningParams) (*Earning, error)
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	GetHistory(ctx context.Context, userID int64) ([]*Earning, error)
	GetClaimStatus(ctx context.Context, userID int64) (ClaimStatus, error)
	RecordDailyClaim(ctx context.Context, userID int64, pointsEarned float64, streakDay int) (*Earning, error)
}

type service struct {
	repo     Repository
	settings settings.Service
	now      func() time.Time
}

func NewService(repo Repository, settingsSvc settings.Service) Service {
	return &service{
		repo:     repo,
		settings: settingsSvc,
		now:      time.Now,
	}
}

// RecordEarning appends a ledger entry with a snapshot of the conversion
// rate in effect right now. The rate lookup never fails (it degrades to
// the configured default), so the only failure mode is the insert itself.
func (s *service) RecordEarning(ctx context.Context, params RecordEarningParams) (*Earning, error) {
	if params.UserID == 0 {
		return nil, ErrMissingUserID
	}
	if !params.Type.Valid() {
		return nil, ErrInvalidEarningType
	}
	if params.PointsEarned < 0 || params.PointsSpent < 0 {
		return nil, ErrInvalidPoints
	}

	rate := s.settings.GetConversionRate(ctx)

	e := &Earning{
		UserID:         params.UserID,
		Type:           params.Type,
		PointsEarned:   params.PointsEarned,
		PointsSpent:    params.PointsSpent,
		Description:    params.Description,
		ReferenceID:    params.ReferenceID,
		ConversionRate: rate,
	}

	id, err := s.repo.Insert(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id

	metrics.PointsEarned.Add(params.PointsEarned)
	metrics.PointsSpent.Add(params.PointsSpent)

	logger.FromCtx(ctx).Info("earning recorded",
		zap.Int64("earning_id", id),
		zap.Int64("user_id", params.UserID),
		zap.String("earning_type", string(params.Type)),
		zap.Float64("points_earned", params.PointsEarned),
		zap.Float64("points_spent", params.PointsSpent),
		zap.Float64("conversion_rate", rate),
	)

	return e, nil
}

func (s *service) GetBalance(ctx context.Context, userID int64) (*Balance, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}
	return s.repo.Balance(ctx, userID)
}

func (s *service) GetHistory(ctx context.Context, userID int64) ([]*Earning, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}
	return s.repo.History(ctx, userID)
}

func (s *service) GetClaimStatus(ctx context.Context, userID int64) (ClaimStatus, error) {
	if userID == 0 {
		return ClaimStatus{}, ErrMissingUserID
	}

	last, err := s.repo.LatestByType(ctx, userID, TypeDailyClaim)
	if err != nil {
		return ClaimStatus{}, err
	}

	return EvaluateClaim(last, s.now()), nil
}

// RecordDailyClaim re-validates eligibility against the latest claim before
// writing, so a client cannot claim more than once per 24h window.
func (s *service) RecordDailyClaim(ctx context.Context, userID int64, pointsEarned float64, streakDay int) (*Earning, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}
	if pointsEarned <= 0 {
		return nil, ErrInvalidPoints
	}

	status, err := s.GetClaimStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !status.CanClaim {
		return nil, ErrClaimNotAvailable
	}

	e, err := s.RecordEarning(ctx, RecordEarningParams{
		UserID:       userID,
		Type:         TypeDailyClaim,
		PointsEarned: pointsEarned,
		Description:  ClaimDescription(streakDay),
	})
	if err != nil {
		return nil, err
	}

	metrics.DailyClaims.Inc()
	return e, nil
}
