package feedback

import (
	"context"
	"database/sql"
	"errors"

	"acclivity-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetByOrderProduct(ctx context.Context, orderID, productID int64) (*Feedback, error)
	Insert(ctx context.Context, f *Feedback) (int64, error)
	UpdateRatings(ctx context.Context, id int64, productRating, deliveryRating int, feedbackText string) error
	ClaimAward(ctx context.Context, id int64, points float64) (bool, error)
	OrderTotal(ctx context.Context, orderID int64) (float64, error)
	Summary(ctx context.Context, productID int64) (*Summary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByOrderProduct(ctx context.Context, orderID, productID int64) (*Feedback, error) {
	var f Feedback
	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_id, product_id, user_id, product_rating,
		       delivery_rating, feedback_text, points_awarded, created_at
		FROM order_feedback
		WHERE order_id = $1 AND product_id = $2
	`, orderID, productID).Scan(
		&f.ID,
		&f.OrderID,
		&f.ProductID,
		&f.UserID,
		&f.ProductRating,
		&f.DeliveryRating,
		&f.FeedbackText,
		&f.PointsAwarded,
		&f.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func (r *repository) Insert(ctx context.Context, f *Feedback) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO order_feedback (
			order_id, product_id, user_id, product_rating,
			delivery_rating, feedback_text, points_awarded
		) VALUES ($1, $2, $3, $4, $5, $6, 0)
		RETURNING id
	`,
		f.OrderID,
		f.ProductID,
		f.UserID,
		f.ProductRating,
		f.DeliveryRating,
		f.FeedbackText,
	).Scan(&id)

	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert feedback",
			zap.Int64("order_id", f.OrderID),
			zap.Int64("product_id", f.ProductID),
			zap.Error(err),
		)
		return 0, err
	}

	return id, nil
}

func (r *repository) UpdateRatings(ctx context.Context, id int64, productRating, deliveryRating int, feedbackText string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE order_feedback
		SET product_rating = $1, delivery_rating = $2, feedback_text = $3
		WHERE id = $4
	`, productRating, deliveryRating, feedbackText, id)
	return err
}

// ClaimAward marks the bonus as paid, but only if no one has paid it yet.
// The points_awarded = 0 guard makes the claim a compare-and-set: two
// concurrent submissions race to this update and exactly one sees an
// affected row.
func (r *repository) ClaimAward(ctx context.Context, id int64, points float64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE order_feedback
		SET points_awarded = $1
		WHERE id = $2 AND points_awarded = 0
	`, points, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}

func (r *repository) OrderTotal(ctx context.Context, orderID int64) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `
		SELECT total_amount FROM orders WHERE order_id = $1
	`, orderID).Scan(&total)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrOrderNotFound
	}
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *repository) Summary(ctx context.Context, productID int64) (*Summary, error) {
	s := &Summary{ProductID: productID, Reviews: []*Review{}}

	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(AVG(product_rating), 0), COUNT(*),
		       COUNT(*) FILTER (WHERE product_rating = 1),
		       COUNT(*) FILTER (WHERE product_rating = 2),
		       COUNT(*) FILTER (WHERE product_rating = 3),
		       COUNT(*) FILTER (WHERE product_rating = 4),
		       COUNT(*) FILTER (WHERE product_rating = 5)
		FROM order_feedback
		WHERE product_id = $1
	`, productID).Scan(
		&s.AverageRating,
		&s.TotalReviews,
		&s.Breakdown.One,
		&s.Breakdown.Two,
		&s.Breakdown.Three,
		&s.Breakdown.Four,
		&s.Breakdown.Five,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT f.product_rating, f.delivery_rating, f.feedback_text,
		       COALESCE(u.full_name, 'Anonymous'), f.created_at
		FROM order_feedback f
		LEFT JOIN user_account u ON f.user_id = u.id
		WHERE f.product_id = $1
		ORDER BY f.created_at DESC
		LIMIT 100
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rev Review
		if err := rows.Scan(
			&rev.ProductRating,
			&rev.DeliveryRating,
			&rev.FeedbackText,
			&rev.CustomerName,
			&rev.CreatedAt,
		); err != nil {
			return nil, err
		}
		s.Reviews = append(s.Reviews, &rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return s, nil
}
