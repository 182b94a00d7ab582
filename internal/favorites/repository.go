package favorites

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Postgres unique_violation, raised when (user_id, product_id) already
// exists.
const uniqueViolation = "23505"

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*Favorite, error)
	Insert(ctx context.Context, userID, productID int64) (int64, error)
	Delete(ctx context.Context, userID, productID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]*Favorite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT f.id, f.user_id, f.product_id,
		       COALESCE(p.name, ''), COALESCE(p.price, 0), p.image_url,
		       f.created_at
		FROM favorites f
		LEFT JOIN products p ON f.product_id = p.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favs := []*Favorite{}
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(
			&f.ID,
			&f.UserID,
			&f.ProductID,
			&f.ProductName,
			&f.Price,
			&f.ImageURL,
			&f.CreatedAt,
		); err != nil {
			return nil, err
		}
		favs = append(favs, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return favs, nil
}

func (r *repository) Insert(ctx context.Context, userID, productID int64) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO favorites (user_id, product_id)
		VALUES ($1, $2)
		RETURNING id
	`, userID, productID).Scan(&id)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return 0, ErrAlreadyFavorited
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) Delete(ctx context.Context, userID, productID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
