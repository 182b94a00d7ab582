package user

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) (*User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO user_account (email, password, full_name, phone_number, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, u.Email, u.Password, u.FullName, u.PhoneNumber, u.Role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, full_name, phone_number, role, created_at
		FROM user_account
		WHERE email = $1
	`, email).Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.FullName,
		&u.PhoneNumber,
		&u.Role,
		&u.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, full_name, phone_number, role, created_at
		FROM user_account
		WHERE id = $1
	`, id).Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.FullName,
		&u.PhoneNumber,
		&u.Role,
		&u.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
