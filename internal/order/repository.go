package order

import (
	"context"
	"database/sql"
	"errors"

	"acclivity-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	InsertOrder(ctx context.Context, o *Order) (int64, error)
	AddItemTx(ctx context.Context, item *OrderItem) (int64, error)
	OrdersByUser(ctx context.Context, userID int64) ([]*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InsertOrder(ctx context.Context, o *Order) (int64, error) {
	log := logger.FromCtx(ctx)

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (
			user_id, total_amount, delivery_address_id, order_status,
			payment_method, payment_status, gcash_ref, order_date,
			delivery_date, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING order_id
	`,
		o.UserID,
		o.TotalAmount,
		o.DeliveryAddressID,
		o.OrderStatus,
		o.PaymentMethod,
		o.PaymentStatus,
		o.GcashRef,
		o.OrderDate,
		o.DeliveryDate,
		o.Notes,
	).Scan(&id)

	if err != nil {
		log.Error("failed to insert order",
			zap.Int64("user_id", o.UserID),
			zap.Error(err),
		)
		return 0, err
	}

	return id, nil
}

// AddItemTx performs the stock decrement and item insert as one
// transaction. The conditional UPDATE serializes concurrent buyers of the
// same product; the affected-row check detects a lost race so it surfaces
// as insufficient stock instead of overselling.
func (r *repository) AddItemTx(ctx context.Context, item *OrderItem) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("order_id", item.OrderID),
		zap.Int64("product_id", item.ProductID),
		zap.Int("quantity", item.Quantity),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return 0, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	// 1. Read current stock
	var stock int
	err = tx.QueryRowContext(ctx, `
		SELECT stock_quantity FROM products WHERE id = $1
	`, item.ProductID).Scan(&stock)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrProductNotFound
	}
	if err != nil {
		log.Error("failed to check stock", zap.Error(err))
		return 0, err
	}

	if stock < item.Quantity {
		log.Warn("insufficient stock", zap.Int("available", stock))
		return 0, &InsufficientStockError{Available: stock, Requested: item.Quantity}
	}

	// 2. Conditionally decrement
	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity - $1
		WHERE id = $2 AND stock_quantity >= $1
	`, item.Quantity, item.ProductID)
	if err != nil {
		log.Error("failed to decrement stock", zap.Error(err))
		return 0, err
	}

	// 3. A zero row count means another buyer won the race between the
	// read and the update.
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		log.Warn("stock race lost", zap.Int("last_seen_stock", stock))
		return 0, &InsufficientStockError{Available: stock, Requested: item.Quantity}
	}

	// 4. Insert the order item
	var itemID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING item_id
	`, item.OrderID, item.ProductID, item.Quantity, item.Price).Scan(&itemID)
	if err != nil {
		log.Error("failed to insert order item", zap.Error(err))
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order item transaction", zap.Error(err))
		return 0, err
	}
	committed = true

	return itemID, nil
}

func (r *repository) OrdersByUser(ctx context.Context, userID int64) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, user_id, total_amount, delivery_address_id,
		       order_status, payment_method, payment_status, order_date,
		       delivery_date, notes, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	index := make(map[int64]*Order)
	var orderIDs []int64

	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.TotalAmount,
			&o.DeliveryAddressID,
			&o.OrderStatus,
			&o.PaymentMethod,
			&o.PaymentStatus,
			&o.OrderDate,
			&o.DeliveryDate,
			&o.Notes,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Items = []*OrderItem{}
		orders = append(orders, &o)
		index[o.ID] = &o
		orderIDs = append(orderIDs, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT oi.item_id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		       COALESCE(p.name, '')
		FROM order_items oi
		LEFT JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.item_id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item OrderItem
		if err := itemRows.Scan(
			&item.ItemID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&item.ProductName,
		); err != nil {
			return nil, err
		}
		if o, ok := index[item.OrderID]; ok {
			o.Items = append(o.Items, &item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
