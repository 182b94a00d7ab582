package verification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_LatestStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Verified", func(t *testing.T) {
		mock.ExpectQuery("SELECT status").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("verified"))

		status, err := repo.LatestStatus(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, StatusVerified, status)
	})

	t.Run("NoRecord_None", func(t *testing.T) {
		mock.ExpectQuery("SELECT status").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}))

		status, err := repo.LatestStatus(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, StatusNone, status)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT status").
			WillReturnError(errors.New("db error"))

		_, err := repo.LatestStatus(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO user_verifications").
			WithArgs(int64(1), sqlmock.AnyArg(), StatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

		id, err := repo.Insert(context.Background(), &Verification{
			UserID: 1,
			Status: StatusPending,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(4), id)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO user_verifications").
			WillReturnError(errors.New("db error"))

		_, err := repo.Insert(context.Background(), &Verification{UserID: 1, Status: StatusPending})
		assert.Error(t, err)
	})
}

func TestRepository_Latest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	cols := []string{
		"id", "user_id", "national_id_number", "match_score", "status",
		"notes", "created_at", "updated_at", "verified_at",
	}

	t.Run("Found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM user_verifications").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(3, 1, "ID-123", 92.5, "verified", nil, now, now, now))

		v, err := repo.Latest(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, StatusVerified, v.Status)
		require.NotNil(t, v.MatchScore)
		assert.Equal(t, 92.5, *v.MatchScore)
	})

	t.Run("NoRecord", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_verifications").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(cols))

		v, err := repo.Latest(context.Background(), 2)
		assert.NoError(t, err)
		assert.Nil(t, v)
	})
}
