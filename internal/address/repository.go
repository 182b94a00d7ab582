package address

import (
	"context"
	"database/sql"
)

type Repository interface {
	Insert(ctx context.Context, a *Address) (*Address, error)
	ListByUser(ctx context.Context, userID int64) ([]*Address, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Insert persists the address and returns the stored row, so the client
// sees exactly what was saved.
func (r *repository) Insert(ctx context.Context, a *Address) (*Address, error) {
	var saved Address
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO delivery_addresses (
			user_id, full_name, phone_number, region, province,
			city, barangay, street_address, postal_code, is_default
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, user_id, full_name, phone_number, region, province,
		          city, barangay, street_address, postal_code, is_default,
		          created_at
	`,
		a.UserID,
		a.FullName,
		a.PhoneNumber,
		a.Region,
		a.Province,
		a.City,
		a.Barangay,
		a.StreetAddress,
		a.PostalCode,
		a.IsDefault,
	).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.FullName,
		&saved.PhoneNumber,
		&saved.Region,
		&saved.Province,
		&saved.City,
		&saved.Barangay,
		&saved.StreetAddress,
		&saved.PostalCode,
		&saved.IsDefault,
		&saved.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]*Address, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, full_name, phone_number, region, province,
		       city, barangay, street_address, postal_code, is_default,
		       created_at
		FROM delivery_addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []*Address{}
	for rows.Next() {
		var a Address
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.FullName,
			&a.PhoneNumber,
			&a.Region,
			&a.Province,
			&a.City,
			&a.Barangay,
			&a.StreetAddress,
			&a.PostalCode,
			&a.IsDefault,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		addresses = append(addresses, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
