package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListActive(ctx context.Context, userID int64, limit int) ([]*Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Notification), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, n *Notification) (int64, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) MarkRead(ctx context.Context, notificationID, userID int64) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Insert", ctx, mock.MatchedBy(func(n *Notification) bool {
			return n.Title == "Promo" && n.Type == "promo" && n.TargetAudience == "verified"
		})).Return(int64(6), nil)

		id, err := svc.Create(ctx, CreateParams{
			Title:          "Promo",
			Message:        "Buy one take one",
			Type:           "promo",
			TargetAudience: "verified",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(6), id)
	})

	t.Run("DefaultsApplied", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Insert", ctx, mock.MatchedBy(func(n *Notification) bool {
			return n.Type == DefaultType && n.TargetAudience == DefaultAudience
		})).Return(int64(7), nil)

		_, err := svc.Create(ctx, CreateParams{Title: "Notice", Message: "Schedule change"})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, CreateParams{Message: "No title"})
		assert.ErrorIs(t, err, ErrMissingFields)
		repo.AssertNotCalled(t, "Insert")
	})
}

func TestService_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultLimit", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("ListActive", ctx, int64(0), DefaultLimit).Return([]*Notification{}, nil)

		_, err := svc.ListActive(ctx, 0, 0)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("ExplicitLimit", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("ListActive", ctx, int64(1), 10).Return([]*Notification{{ID: 1}}, nil)

		notifications, err := svc.ListActive(ctx, 1, 10)
		require.NoError(t, err)
		assert.Len(t, notifications, 1)
	})
}

func TestService_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("MarkRead", ctx, int64(6), int64(1)).Return(nil)

		assert.NoError(t, svc.MarkRead(ctx, 6, 1))
	})

	t.Run("MissingUserID", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		err := svc.MarkRead(ctx, 6, 0)
		assert.ErrorIs(t, err, ErrMissingFields)
		repo.AssertNotCalled(t, "MarkRead")
	})
}
