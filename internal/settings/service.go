package settings

import (
	"context"
	"strconv"

	"acclivity-be/internal/logger"

	"go.uber.org/zap"
)

// Service resolves mutable system settings. Conversion rate reads never
// fail the caller: any store error degrades to the configured default.
type Service interface {
	GetConversionRate(ctx context.Context) float64
	UpdateConversionRate(ctx context.Context, rate float64) error
}

type service struct {
	repo        Repository
	defaultRate float64
}

func NewService(repo Repository, defaultRate float64) Service {
	return &service{repo: repo, defaultRate: defaultRate}
}

func (s *service) GetConversionRate(ctx context.Context) float64 {
	log := logger.FromCtx(ctx)

	raw, err := s.repo.GetSetting(ctx, conversionRateKey)
	if err != nil {
		log.Warn("falling back to default conversion rate",
			zap.Float64("default", s.defaultRate),
			zap.Error(err),
		)
		return s.defaultRate
	}

	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate <= 0 {
		log.Warn("invalid conversion rate value, using default",
			zap.String("value", raw),
			zap.Float64("default", s.defaultRate),
		)
		return s.defaultRate
	}

	return rate
}

// UpdateConversionRate changes the rate for future ledger entries only;
// rows already written keep the rate snapshot they were recorded with.
func (s *service) UpdateConversionRate(ctx context.Context, rate float64) error {
	if rate <= 0 {
		return ErrInvalidRate
	}

	if err := s.repo.UpdateSetting(ctx, conversionRateKey, strconv.FormatFloat(rate, 'f', -1, 64)); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("conversion rate updated", zap.Float64("rate", rate))
	return nil
}
