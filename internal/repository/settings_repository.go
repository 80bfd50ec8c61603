package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/study-tracker/internal/domain"
)

// SettingsRepository persists per-user preferences.
type SettingsRepository interface {
	Create(ctx context.Context, settings *domain.Settings) error
	Update(ctx context.Context, settings *domain.Settings) error
	GetByUser(ctx context.Context, userID string) (*domain.Settings, error)
}

type settingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository returns a Postgres-backed implementation.
func NewSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &settingsRepository{pool: pool}
}

func (r *settingsRepository) Create(ctx context.Context, settings *domain.Settings) error {
	const query = `
        INSERT INTO settings (user_id, theme, notifications)
        VALUES ($1, $2, $3)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		settings.UserID,
		settings.Theme,
		settings.Notifications,
	).Scan(&settings.CreatedAt, &settings.UpdatedAt)
}

func (r *settingsRepository) Update(ctx context.Context, settings *domain.Settings) error {
	const query = `
        UPDATE settings SET theme=$1, notifications=$2, updated_at=NOW()
        WHERE user_id=$3
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		settings.Theme,
		settings.Notifications,
		settings.UserID,
	).Scan(&settings.CreatedAt, &settings.UpdatedAt)
}

func (r *settingsRepository) GetByUser(ctx context.Context, userID string) (*domain.Settings, error) {
	const query = `
        SELECT user_id, theme, notifications, created_at, updated_at
        FROM settings WHERE user_id=$1`

	var settings domain.Settings
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.Theme,
		&settings.Notifications,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &settings, nil
}
