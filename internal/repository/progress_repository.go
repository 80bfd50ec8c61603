package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/study-tracker/internal/domain"
)

// ProgressRepository persists progress tracks.
type ProgressRepository interface {
	Create(ctx context.Context, progress *domain.Progress) error
	IncrementCompleted(ctx context.Context, id, userID string) (*domain.Progress, error)
	GetByID(ctx context.Context, id string) (*domain.Progress, error)
	StatisticsByUser(ctx context.Context, userID string) (domain.ProgressStatistics, error)
}

type progressRepository struct {
	pool *pgxpool.Pool
}

// NewProgressRepository returns a Postgres-backed implementation.
func NewProgressRepository(pool *pgxpool.Pool) ProgressRepository {
	return &progressRepository{pool: pool}
}

func (r *progressRepository) Create(ctx context.Context, progress *domain.Progress) error {
	const query = `
        INSERT INTO progress (id, user_id, title, total_items, completed_items)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	if progress.ID == "" {
		progress.ID = uuid.NewString()
	}
	return r.pool.QueryRow(ctx, query,
		progress.ID,
		progress.UserID,
		progress.Title,
		progress.TotalItems,
		progress.CompletedItems,
	).Scan(&progress.CreatedAt, &progress.UpdatedAt)
}

// IncrementCompleted adds one completed item in a single statement. It returns
// pgx.ErrNoRows when the track does not exist, belongs to another user or is
// already complete.
func (r *progressRepository) IncrementCompleted(ctx context.Context, id, userID string) (*domain.Progress, error) {
	const query = `
        UPDATE progress SET completed_items=completed_items+1, updated_at=NOW()
        WHERE id=$1 AND user_id=$2 AND completed_items < total_items
        RETURNING id, user_id, title, total_items, completed_items, created_at, updated_at`

	return scanProgress(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *progressRepository) GetByID(ctx context.Context, id string) (*domain.Progress, error) {
	const query = `
        SELECT id, user_id, title, total_items, completed_items, created_at, updated_at
        FROM progress WHERE id=$1`

	return scanProgress(r.pool.QueryRow(ctx, query, id))
}

func scanProgress(row pgx.Row) (*domain.Progress, error) {
	var progress domain.Progress
	if err := row.Scan(
		&progress.ID,
		&progress.UserID,
		&progress.Title,
		&progress.TotalItems,
		&progress.CompletedItems,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) StatisticsByUser(ctx context.Context, userID string) (domain.ProgressStatistics, error) {
	const query = `
        SELECT COUNT(*), COALESCE(SUM(total_items), 0), COALESCE(SUM(completed_items), 0)
        FROM progress WHERE user_id=$1`

	stats := domain.ProgressStatistics{UserID: userID}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&stats.Tracks,
		&stats.TotalItems,
		&stats.CompletedItems,
	)
	return stats, err
}
