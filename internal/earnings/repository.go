package earnings

import (
	"context"
	"database/sql"
	"errors"

	"acclivity-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, e *Earning) (int64, error)
	LatestByType(ctx context.Context, userID int64, t EarningType) (*Earning, error)
	Balance(ctx context.Context, userID int64) (*Balance, error)
	History(ctx context.Context, userID int64) ([]*Earning, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Insert appends one ledger row. The table has no update path; every
// correction is a new row.
func (r *repository) Insert(ctx context.Context, e *Earning) (int64, error) {
	log := logger.FromCtx(ctx)

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO user_earnings (
			user_id, earning_type, points_earned, points_spent,
			description, reference_id, conversion_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		e.UserID,
		e.Type,
		e.PointsEarned,
		e.PointsSpent,
		e.Description,
		e.ReferenceID,
		e.ConversionRate,
	).Scan(&id)

	if err != nil {
		log.Error("failed to insert earning",
			zap.Int64("user_id", e.UserID),
			zap.String("earning_type", string(e.Type)),
			zap.Error(err),
		)
		return 0, err
	}

	return id, nil
}

func (r *repository) LatestByType(ctx context.Context, userID int64, t EarningType) (*Earning, error) {
	var e Earning
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, earning_type, points_earned, points_spent,
		       description, reference_id, conversion_rate, created_at
		FROM user_earnings
		WHERE user_id = $1 AND earning_type = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, userID, t).Scan(
		&e.ID,
		&e.UserID,
		&e.Type,
		&e.PointsEarned,
		&e.PointsSpent,
		&e.Description,
		&e.ReferenceID,
		&e.ConversionRate,
		&e.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// Balance recomputes the sums on every call. A cached running total would
// drift from the append-only log under concurrent writers.
func (r *repository) Balance(ctx context.Context, userID int64) (*Balance, error) {
	var b Balance
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(points_earned), 0) AS total_earned,
			COALESCE(SUM(points_spent), 0) AS total_spent
		FROM user_earnings
		WHERE user_id = $1
	`, userID).Scan(&b.TotalEarned, &b.TotalSpent)

	if err != nil {
		return nil, err
	}

	b.CurrentBalance = b.TotalEarned - b.TotalSpent
	return &b, nil
}

func (r *repository) History(ctx context.Context, userID int64) ([]*Earning, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, earning_type, points_earned, points_spent,
		       description, reference_id, conversion_rate, created_at
		FROM user_earnings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []*Earning
	for rows.Next() {
		var e Earning
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Type,
			&e.PointsEarned,
			&e.PointsSpent,
			&e.Description,
			&e.ReferenceID,
			&e.ConversionRate,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		history = append(history, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
