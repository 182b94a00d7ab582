package product

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	List(ctx context.Context, offset, limit int) ([]*Product, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// List returns a page of active products with their rating aggregates
// folded in from customer feedback.
func (r *repository) List(ctx context.Context, offset, limit int) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.description, p.category, p.volume_ml,
		       p.price, p.stock_quantity, p.image_url, p.is_active,
		       COALESCE(AVG(f.product_rating), 0),
		       COUNT(f.id),
		       p.created_at
		FROM products p
		LEFT JOIN order_feedback f ON f.product_id = p.id
		WHERE p.is_active = true
		GROUP BY p.id
		ORDER BY p.id
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Category,
			&p.VolumeML,
			&p.Price,
			&p.StockQuantity,
			&p.ImageURL,
			&p.IsActive,
			&p.AverageRating,
			&p.RatingCount,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM products WHERE is_active = true
	`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT p.id, p.name, p.description, p.category, p.volume_ml,
		       p.price, p.stock_quantity, p.image_url, p.is_active,
		       COALESCE(AVG(f.product_rating), 0),
		       COUNT(f.id),
		       p.created_at
		FROM products p
		LEFT JOIN order_feedback f ON f.product_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
	`, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.VolumeML,
		&p.Price,
		&p.StockQuantity,
		&p.ImageURL,
		&p.IsActive,
		&p.AverageRating,
		&p.RatingCount,
		&p.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}
