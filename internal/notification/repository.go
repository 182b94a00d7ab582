package notification

import (
	"context"
	"database/sql"
)

type Repository interface {
	ListActive(ctx context.Context, userID int64, limit int) ([]*Notification, error)
	Insert(ctx context.Context, n *Notification) (int64, error)
	MarkRead(ctx context.Context, notificationID, userID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// ListActive returns active notifications newest first. When userID is
// non-zero each row carries that user's read state.
func (r *repository) ListActive(ctx context.Context, userID int64, limit int) ([]*Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT n.id, n.title, n.message, n.type, n.target_audience,
		       n.is_active, nr.notification_id IS NOT NULL, n.created_at
		FROM notifications n
		LEFT JOIN notification_reads nr
		       ON nr.notification_id = n.id AND nr.user_id = $1
		WHERE n.is_active = true
		ORDER BY n.created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []*Notification{}
	for rows.Next() {
		var n Notification
		if err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.TargetAudience,
			&n.IsActive,
			&n.IsRead,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *repository) Insert(ctx context.Context, n *Notification) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (title, message, type, target_audience, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING id
	`, n.Title, n.Message, n.Type, n.TargetAudience).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// MarkRead is idempotent: re-reading an already-read notification is a
// no-op, not an error.
func (r *repository) MarkRead(ctx context.Context, notificationID, userID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notification_reads (notification_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (notification_id, user_id) DO NOTHING
	`, notificationID, userID)
	return err
}
