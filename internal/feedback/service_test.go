package feedback

import (
	"context"
	"errors"
	"testing"

	"acclivity-be/internal/earnings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByOrderProduct(ctx context.Context, orderID, productID int64) (*Feedback, error) {
	args := m.Called(ctx, orderID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Feedback), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, f *Feedback) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateRatings(ctx context.Context, id int64, productRating, deliveryRating int, feedbackText string) error {
	args := m.Called(ctx, id, productRating, deliveryRating, feedbackText)
	return args.Error(0)
}

func (m *MockRepository) ClaimAward(ctx context.Context, id int64, points float64) (bool, error) {
	args := m.Called(ctx, id, points)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) OrderTotal(ctx context.Context, orderID int64) (float64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRepository) Summary(ctx context.Context, productID int64) (*Summary, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Summary), args.Error(1)
}

type MockEarnings struct {
	mock.Mock
}

func (m *MockEarnings) RecordEarning(ctx context.Context, params earnings.RecordEarningParams) (*earnings.Earning, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*earnings.Earning), args.Error(1)
}

func (m *MockEarnings) GetBalance(ctx context.Context, userID int64) (*earnings.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*earnings.Balance), args.Error(1)
}

func (m *MockEarnings) GetHistory(ctx context.Context, userID int64) ([]*earnings.Earning, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*earnings.Earning), args.Error(1)
}

func (m *MockEarnings) GetClaimStatus(ctx context.Context, userID int64) (earnings.ClaimStatus, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(earnings.ClaimStatus), args.Error(1)
}

func (m *MockEarnings) RecordDailyClaim(ctx context.Context, userID int64, pointsEarned float64, streakDay int) (*earnings.Earning, error) {
	args := m.Called(ctx, userID, pointsEarned, streakDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*earnings.Earning), args.Error(1)
}

func validSubmitParams() SubmitParams {
	return SubmitParams{
		OrderID:        55,
		ProductID:      7,
		UserID:         1,
		ProductRating:  5,
		DeliveryRating: 4,
		FeedbackText:   "Great service",
	}
}

func TestBonusPoints(t *testing.T) {
	tests := []struct {
		name   string
		total  float64
		points float64
	}{
		{"SmallOrderGetsMinimum", 10, 1},
		{"ExactThreshold", 50, 1},
		{"RoundsDown", 120, 2},
		{"LargeOrder", 500, 10},
		{"ZeroTotalGetsMinimum", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.points, BonusPoints(tt.total))
		})
	}
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstSubmissionAwardsBonus", func(t *testing.T) {
		repo := new(MockRepository)
		earn := new(MockEarnings)
		svc := NewService(repo, earn)

		repo.On("GetByOrderProduct", ctx, int64(55), int64(7)).Return(nil, nil)
		repo.On("Insert", ctx, mock.AnythingOfType("*feedback.Feedback")).Return(int64(3), nil)
		repo.On("OrderTotal", ctx, int64(55)).Return(120.0, nil)
		repo.On("ClaimAward", ctx, int64(3), 2.0).Return(true, nil)
		earn.On("RecordEarning", ctx, mock.MatchedBy(func(p earnings.RecordEarningParams) bool {
			return p.UserID == 1 &&
				p.Type == earnings.TypeOrderFeedback &&
				p.PointsEarned == 2 &&
				p.Description == "Feedback bonus for order #55"
		})).Return(&earnings.Earning{ID: 9}, nil)

		result, err := svc.Submit(ctx, validSubmitParams())
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.FeedbackID)
		assert.Equal(t, 2.0, result.PointsEarned)
		assert.False(t, result.AlreadyAwarded)
		repo.AssertExpectations(t)
		earn.AssertExpectations(t)
	})

	t.Run("ResubmissionUpdatesWithoutAward", func(t *testing.T) {
		repo := new(MockRepository)
		earn := new(MockEarnings)
		svc := NewService(repo, earn)

		repo.On("GetByOrderProduct", ctx, int64(55), int64(7)).
			Return(&Feedback{ID: 3, PointsAwarded: 2}, nil)
		repo.On("UpdateRatings", ctx, int64(3), 5, 4, "Great service").Return(nil)
		repo.On("OrderTotal", ctx, int64(55)).Return(120.0, nil)
		repo.On("ClaimAward", ctx, int64(3), 2.0).Return(false, nil)

		result, err := svc.Submit(ctx, validSubmitParams())
		require.NoError(t, err)
		assert.True(t, result.AlreadyAwarded)
		assert.Zero(t, result.PointsEarned)
		earn.AssertNotCalled(t, "RecordEarning")
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockEarnings))

		params := validSubmitParams()
		params.UserID = 0

		_, err := svc.Submit(ctx, params)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("OutOfRangeRatingsClamped", func(t *testing.T) {
		repo := new(MockRepository)
		earn := new(MockEarnings)
		svc := NewService(repo, earn)

		repo.On("GetByOrderProduct", ctx, int64(55), int64(7)).Return(nil, nil)
		repo.On("Insert", ctx, mock.MatchedBy(func(f *Feedback) bool {
			return f.ProductRating == 5 && f.DeliveryRating == 1
		})).Return(int64(3), nil)
		repo.On("OrderTotal", ctx, int64(55)).Return(120.0, nil)
		repo.On("ClaimAward", ctx, int64(3), 2.0).Return(true, nil)
		earn.On("RecordEarning", ctx, mock.Anything).Return(&earnings.Earning{ID: 9}, nil)

		params := validSubmitParams()
		params.ProductRating = 7
		params.DeliveryRating = -2

		result, err := svc.Submit(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, 2.0, result.PointsEarned)
		repo.AssertExpectations(t)
	})

	t.Run("MissingRatings", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockEarnings))

		params := validSubmitParams()
		params.DeliveryRating = 0

		_, err := svc.Submit(ctx, params)
		assert.ErrorIs(t, err, ErrMissingRating)
	})

	t.Run("OrderNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockEarnings))

		repo.On("GetByOrderProduct", ctx, int64(55), int64(7)).Return(nil, nil)
		repo.On("Insert", ctx, mock.Anything).Return(int64(3), nil)
		repo.On("OrderTotal", ctx, int64(55)).Return(0.0, ErrOrderNotFound)

		_, err := svc.Submit(ctx, validSubmitParams())
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("LedgerFailureStillReportsAward", func(t *testing.T) {
		repo := new(MockRepository)
		earn := new(MockEarnings)
		svc := NewService(repo, earn)

		repo.On("GetByOrderProduct", ctx, int64(55), int64(7)).Return(nil, nil)
		repo.On("Insert", ctx, mock.Anything).Return(int64(3), nil)
		repo.On("OrderTotal", ctx, int64(55)).Return(120.0, nil)
		repo.On("ClaimAward", ctx, int64(3), 2.0).Return(true, nil)
		earn.On("RecordEarning", ctx, mock.Anything).Return(nil, errors.New("db error"))

		result, err := svc.Submit(ctx, validSubmitParams())
		require.NoError(t, err)
		assert.Equal(t, 2.0, result.PointsEarned)
		assert.False(t, result.AlreadyAwarded)
	})
}

func TestService_ProductSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockEarnings))

		repo.On("Summary", ctx, int64(7)).
			Return(&Summary{ProductID: 7, AverageRating: 4.5, TotalReviews: 2}, nil)

		s, err := svc.ProductSummary(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 4.5, s.AverageRating)
	})

	t.Run("MissingProductID", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockEarnings))

		_, err := svc.ProductSummary(ctx, 0)
		assert.ErrorIs(t, err, ErrMissingFields)
	})
}
