package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByOrderProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	cols := []string{
		"id", "order_id", "product_id", "user_id", "product_rating",
		"delivery_rating", "feedback_text", "points_awarded", "created_at",
	}

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM order_feedback").
			WithArgs(int64(55), int64(7)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(3, 55, 7, 1, 5, 4, "Great", 2.0, time.Now()))

		f, err := repo.GetByOrderProduct(context.Background(), 55, 7)
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, int64(3), f.ID)
		assert.Equal(t, 5, f.ProductRating)
		assert.Equal(t, 2.0, f.PointsAwarded)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM order_feedback").
			WithArgs(int64(55), int64(8)).
			WillReturnRows(sqlmock.NewRows(cols))

		f, err := repo.GetByOrderProduct(context.Background(), 55, 8)
		assert.NoError(t, err)
		assert.Nil(t, f)
	})
}

func TestRepository_ClaimAward(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Claimed", func(t *testing.T) {
		mock.ExpectExec("UPDATE order_feedback").
			WithArgs(2.0, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		claimed, err := repo.ClaimAward(context.Background(), 3, 2)
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("AlreadyAwarded", func(t *testing.T) {
		// points_awarded != 0 means the guard matches no row.
		mock.ExpectExec("UPDATE order_feedback").
			WithArgs(2.0, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		claimed, err := repo.ClaimAward(context.Background(), 3, 2)
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("UPDATE order_feedback").
			WillReturnError(errors.New("db error"))

		_, err := repo.ClaimAward(context.Background(), 3, 2)
		assert.Error(t, err)
	})
}

func TestRepository_OrderTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT total_amount FROM orders").
			WithArgs(int64(55)).
			WillReturnRows(sqlmock.NewRows([]string{"total_amount"}).AddRow(120.0))

		total, err := repo.OrderTotal(context.Background(), 55)
		require.NoError(t, err)
		assert.Equal(t, 120.0, total)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT total_amount FROM orders").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"total_amount"}))

		_, err := repo.OrderTotal(context.Background(), 99)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestRepository_Summary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	summaryCols := []string{"avg", "count", "one", "two", "three", "four", "five"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(AVG").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(summaryCols).AddRow(4.5, 2, 0, 0, 0, 1, 1))
		mock.ExpectQuery("SELECT f.product_rating").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"product_rating", "delivery_rating", "feedback_text", "full_name", "created_at"}).
				AddRow(5, 5, "Excellent", "Maria Cruz", time.Now()).
				AddRow(4, 4, "Good", "Anonymous", time.Now()))

		s, err := repo.Summary(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 4.5, s.AverageRating)
		assert.Equal(t, int64(2), s.TotalReviews)
		assert.Equal(t, int64(1), s.Breakdown.Five)
		assert.Equal(t, int64(1), s.Breakdown.Four)
		require.Len(t, s.Reviews, 2)
		assert.Equal(t, "Maria Cruz", s.Reviews[0].CustomerName)
	})

	t.Run("NoReviews", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(AVG").
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows(summaryCols).AddRow(0.0, 0, 0, 0, 0, 0, 0))
		mock.ExpectQuery("SELECT f.product_rating").
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"product_rating", "delivery_rating", "feedback_text", "full_name", "created_at"}))

		s, err := repo.Summary(context.Background(), 8)
		require.NoError(t, err)
		assert.Zero(t, s.AverageRating)
		assert.Empty(t, s.Reviews)
	})
}
