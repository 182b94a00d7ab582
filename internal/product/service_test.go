package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, offset, limit int) ([]*Product, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func TestService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstPage", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Count", ctx).Return(int64(120), nil)
		repo.On("List", ctx, 0, 50).Return([]*Product{{ID: 1}, {ID: 2}}, nil)

		page, err := svc.ListProducts(ctx, 1, 50)
		require.NoError(t, err)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, int64(120), page.TotalProducts)
		assert.True(t, page.HasNextPage)
		assert.False(t, page.HasPrevPage)
	})

	t.Run("LastPage", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Count", ctx).Return(int64(120), nil)
		repo.On("List", ctx, 100, 50).Return([]*Product{{ID: 101}}, nil)

		page, err := svc.ListProducts(ctx, 3, 50)
		require.NoError(t, err)
		assert.False(t, page.HasNextPage)
		assert.True(t, page.HasPrevPage)
	})

	t.Run("DefaultsApplied", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Count", ctx).Return(int64(10), nil)
		repo.On("List", ctx, 0, DefaultLimit).Return([]*Product{}, nil)

		page, err := svc.ListProducts(ctx, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, DefaultLimit, page.Limit)
	})

	t.Run("LimitClamped", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Count", ctx).Return(int64(10), nil)
		repo.On("List", ctx, 0, MaxLimit).Return([]*Product{}, nil)

		page, err := svc.ListProducts(ctx, 1, 5000)
		require.NoError(t, err)
		assert.Equal(t, MaxLimit, page.Limit)
	})

	t.Run("CountError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Count", ctx).Return(int64(0), errors.New("db error"))

		_, err := svc.ListProducts(ctx, 1, 50)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "List")
	})
}

func TestService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, int64(7)).
			Return(&Product{ID: 7, Name: "Purified 5 Gallon", AverageRating: 4.5}, nil)

		p, err := svc.GetProduct(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Purified 5 Gallon", p.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, int64(99)).Return(nil, ErrProductNotFound)

		_, err := svc.GetProduct(ctx, 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
