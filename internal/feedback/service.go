package feedback

import (
	"context"
	"fmt"
	"math"

	"acclivity-be/internal/earnings"
	"acclivity-be/internal/logger"
	"acclivity-be/internal/metrics"

	"go.uber.org/zap"
)

type SubmitParams struct {
	OrderID        int64
	ProductID      int64
	UserID         int64
	ProductRating  int
	DeliveryRating int
	FeedbackText   string
}

type SubmitResult struct {
	FeedbackID     int64
	PointsEarned   float64
	AlreadyAwarded bool
}

type Service interface {
	Submit(ctx context.Context, params SubmitParams) (*SubmitResult, error)
	ProductSummary(ctx context.Context, productID int64) (*Summary, error)
}

type service struct {
	repo     Repository
	earnings earnings.Service
}

func NewService(repo Repository, earningsSvc earnings.Service) Service {
	return &service{repo: repo, earnings: earningsSvc}
}

// BonusPoints converts an order total into the feedback bonus. Any rated
// order is worth at least one point.
func BonusPoints(orderTotal float64) float64 {
	return math.Max(1, math.Floor(orderTotal/PesosPerBonusPoint))
}

// clampRating forces a rating into [MinRating, MaxRating].
func clampRating(r int) int {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

// Submit upserts the rating for an (order, product) pair and pays the
// bonus at most once. Re-submissions refresh the ratings but the
// compare-and-set claim keeps the points from being paid twice, even
// under concurrent submissions.
func (s *service) Submit(ctx context.Context, params SubmitParams) (*SubmitResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("order_id", params.OrderID),
		zap.Int64("product_id", params.ProductID),
		zap.Int64("user_id", params.UserID),
	)

	if params.OrderID == 0 || params.ProductID == 0 || params.UserID == 0 {
		return nil, ErrMissingFields
	}
	if params.ProductRating == 0 || params.DeliveryRating == 0 {
		return nil, ErrMissingRating
	}

	// Out-of-range ratings are clamped rather than rejected.
	productRating := clampRating(params.ProductRating)
	deliveryRating := clampRating(params.DeliveryRating)

	existing, err := s.repo.GetByOrderProduct(ctx, params.OrderID, params.ProductID)
	if err != nil {
		return nil, err
	}

	var feedbackID int64
	if existing != nil {
		if err := s.repo.UpdateRatings(ctx, existing.ID, productRating, deliveryRating, params.FeedbackText); err != nil {
			return nil, err
		}
		feedbackID = existing.ID
	} else {
		feedbackID, err = s.repo.Insert(ctx, &Feedback{
			OrderID:        params.OrderID,
			ProductID:      params.ProductID,
			UserID:         params.UserID,
			ProductRating:  productRating,
			DeliveryRating: deliveryRating,
			FeedbackText:   params.FeedbackText,
		})
		if err != nil {
			return nil, err
		}
	}

	total, err := s.repo.OrderTotal(ctx, params.OrderID)
	if err != nil {
		return nil, err
	}
	points := BonusPoints(total)

	claimed, err := s.repo.ClaimAward(ctx, feedbackID, points)
	if err != nil {
		return nil, err
	}
	if !claimed {
		log.Info("feedback updated, bonus already paid", zap.Int64("feedback_id", feedbackID))
		return &SubmitResult{FeedbackID: feedbackID, AlreadyAwarded: true}, nil
	}

	metrics.FeedbackBonuses.Inc()

	// The claim above is the source of truth for the award; a ledger
	// failure here is logged, not retried, so the response still reports
	// the points as earned.
	_, err = s.earnings.RecordEarning(ctx, earnings.RecordEarningParams{
		UserID:       params.UserID,
		Type:         earnings.TypeOrderFeedback,
		PointsEarned: points,
		Description:  fmt.Sprintf("Feedback bonus for order #%d", params.OrderID),
		ReferenceID:  &params.OrderID,
	})
	if err != nil {
		log.Warn("failed to record feedback bonus in ledger",
			zap.Int64("feedback_id", feedbackID),
			zap.Float64("points", points),
			zap.Error(err),
		)
	}

	log.Info("feedback submitted",
		zap.Int64("feedback_id", feedbackID),
		zap.Float64("points_earned", points),
	)

	return &SubmitResult{FeedbackID: feedbackID, PointsEarned: points}, nil
}

func (s *service) ProductSummary(ctx context.Context, productID int64) (*Summary, error) {
	if productID == 0 {
		return nil, ErrMissingFields
	}
	return s.repo.Summary(ctx, productID)
}
