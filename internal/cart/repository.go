package cart

import (
	"context"
	"database/sql"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*Item, error)
	Insert(ctx context.Context, item *Item) (int64, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.user_id, c.product_id, c.quantity, c.volume_ml,
		       COALESCE(p.name, ''), COALESCE(p.price, 0), p.image_url,
		       c.created_at
		FROM cart_items c
		LEFT JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID,
			&it.UserID,
			&it.ProductID,
			&it.Quantity,
			&it.VolumeML,
			&it.ProductName,
			&it.Price,
			&it.ImageURL,
			&it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) Insert(ctx context.Context, item *Item) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity, volume_ml)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, item.UserID, item.ProductID, item.Quantity, item.VolumeML).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items SET quantity = $1 WHERE id = $2
	`, quantity, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
