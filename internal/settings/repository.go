package settings

import (
	"context"
	"database/sql"
	"errors"
)

const conversionRateKey = "points_per_peso"

type Repository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	UpdateSetting(ctx context.Context, key, value string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `
		SELECT setting_value
		FROM system_settings
		WHERE setting_key = $1
		LIMIT 1
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

func (r *repository) UpdateSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO system_settings (setting_key, setting_value)
		VALUES ($1, $2)
		ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value
	`, key, value)
	return err
}
