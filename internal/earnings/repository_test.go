package earnings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var earningColumns = []string{
	"id", "user_id", "earning_type", "points_earned", "points_spent",
	"description", "reference_id", "conversion_rate", "created_at",
}

func TestRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO user_earnings").
			WithArgs(int64(1), TypePurchase, float64(12), float64(0), "Points earned from purchase", sqlmock.AnyArg(), float64(100)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(77))

		refID := int64(9)
		id, err := repo.Insert(context.Background(), &Earning{
			UserID:         1,
			Type:           TypePurchase,
			PointsEarned:   12,
			Description:    "Points earned from purchase",
			ReferenceID:    &refID,
			ConversionRate: 100,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(77), id)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO user_earnings").
			WillReturnError(errors.New("db error"))

		_, err := repo.Insert(context.Background(), &Earning{UserID: 1, Type: TypePurchase})
		assert.Error(t, err)
	})
}

func TestRepository_LatestByType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		created := time.Now().Add(-30 * time.Hour)
		rows := sqlmock.NewRows(earningColumns).
			AddRow(5, 1, "daily_claim", 10.0, 0.0, "Daily login bonus - Day 2", nil, 100.0, created)

		mock.ExpectQuery("SELECT (.+) FROM user_earnings").
			WithArgs(int64(1), TypeDailyClaim).
			WillReturnRows(rows)

		e, err := repo.LatestByType(context.Background(), 1, TypeDailyClaim)
		require.NoError(t, err)
		require.NotNil(t, e)
		assert.Equal(t, int64(5), e.ID)
		assert.Equal(t, "Daily login bonus - Day 2", e.Description)
		assert.Nil(t, e.ReferenceID)
	})

	t.Run("NoRows", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_earnings").
			WithArgs(int64(2), TypeDailyClaim).
			WillReturnRows(sqlmock.NewRows(earningColumns))

		e, err := repo.LatestByType(context.Background(), 2, TypeDailyClaim)
		assert.NoError(t, err)
		assert.Nil(t, e)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_earnings").
			WillReturnError(errors.New("db error"))

		_, err := repo.LatestByType(context.Background(), 1, TypeDailyClaim)
		assert.Error(t, err)
	})
}

func TestRepository_Balance(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"total_earned", "total_spent"}).
			AddRow(120.0, 45.0)

		mock.ExpectQuery("SELECT(.+)SUM\\(points_earned\\)").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		b, err := repo.Balance(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 120.0, b.TotalEarned)
		assert.Equal(t, 45.0, b.TotalSpent)
		assert.Equal(t, 75.0, b.CurrentBalance)
	})

	t.Run("NoRecords_Zeros", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"total_earned", "total_spent"}).
			AddRow(0.0, 0.0)

		mock.ExpectQuery("SELECT(.+)SUM\\(points_earned\\)").
			WithArgs(int64(99)).
			WillReturnRows(rows)

		b, err := repo.Balance(context.Background(), 99)
		require.NoError(t, err)
		assert.Zero(t, b.TotalEarned)
		assert.Zero(t, b.TotalSpent)
		assert.Zero(t, b.CurrentBalance)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT(.+)SUM\\(points_earned\\)").
			WillReturnError(errors.New("db error"))

		_, err := repo.Balance(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestRepository_History(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(earningColumns).
			AddRow(2, 1, "daily_claim", 10.0, 0.0, "Daily login bonus - Day 2", nil, 100.0, now).
			AddRow(1, 1, "purchase", 12.0, 0.0, "Points earned from purchase", 9, 100.0, now.Add(-time.Hour))

		mock.ExpectQuery("SELECT (.+) FROM user_earnings").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		history, err := repo.History(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, TypeDailyClaim, history[0].Type)
		assert.Equal(t, TypePurchase, history[1].Type)
		require.NotNil(t, history[1].ReferenceID)
		assert.Equal(t, int64(9), *history[1].ReferenceID)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_earnings").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(earningColumns))

		history, err := repo.History(context.Background(), 3)
		assert.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_earnings").
			WillReturnError(errors.New("db error"))

		_, err := repo.History(context.Background(), 1)
		assert.Error(t, err)
	})
}
