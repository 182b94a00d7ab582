package verification

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	Insert(ctx context.Context, v *Verification) (int64, error)
	Latest(ctx context.Context, userID int64) (*Verification, error)
	LatestStatus(ctx context.Context, userID int64) (string, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, v *Verification) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO user_verifications (user_id, national_id_number, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, v.UserID, v.NationalIDNumber, v.Status).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) Latest(ctx context.Context, userID int64) (*Verification, error) {
	var v Verification
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, national_id_number, match_score, status,
		       notes, created_at, updated_at, verified_at
		FROM user_verifications
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 1
	`, userID).Scan(
		&v.ID,
		&v.UserID,
		&v.NationalIDNumber,
		&v.MatchScore,
		&v.Status,
		&v.Notes,
		&v.CreatedAt,
		&v.UpdatedAt,
		&v.VerifiedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// LatestStatus resolves the verification gate for a user. Absence of any
// record maps to "none" rather than an error.
func (r *repository) LatestStatus(ctx context.Context, userID int64) (string, error) {
	var status string
	err := r.db.QueryRowContext(ctx, `
		SELECT status
		FROM user_verifications
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 1
	`, userID).Scan(&status)

	if errors.Is(err, sql.ErrNoRows) {
		return StatusNone, nil
	}
	if err != nil {
		return "", err
	}

	return status, nil
}
