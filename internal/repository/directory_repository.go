package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/study-tracker/internal/domain"
)

// DirectoryRepository encapsulates directory persistence.
type DirectoryRepository interface {
	Create(ctx context.Context, dir *domain.Directory) error
	Update(ctx context.Context, dir *domain.Directory) error
	GetByID(ctx context.Context, id string) (*domain.Directory, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]domain.Directory, error)
}

type directoryRepository struct {
	pool *pgxpool.Pool
}

// NewDirectoryRepository instantiates repository.
func NewDirectoryRepository(pool *pgxpool.Pool) DirectoryRepository {
	return &directoryRepository{pool: pool}
}

func (r *directoryRepository) Create(ctx context.Context, dir *domain.Directory) error {
	const query = `
        INSERT INTO directories (id, user_id, name, active)
        VALUES ($1, $2, $3, $4)
        RETURNING last_accessed_at, created_at, updated_at`

	if dir.ID == "" {
		dir.ID = uuid.NewString()
	}
	return r.pool.QueryRow(ctx, query,
		dir.ID,
		dir.UserID,
		dir.Name,
		dir.Active,
	).Scan(&dir.LastAccessedAt, &dir.CreatedAt, &dir.UpdatedAt)
}

func (r *directoryRepository) Update(ctx context.Context, dir *domain.Directory) error {
	const query = `
        UPDATE directories SET name=$1, active=$2, last_accessed_at=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		dir.Name,
		dir.Active,
		dir.LastAccessedAt,
		dir.ID,
	).Scan(&dir.UpdatedAt)
}

func (r *directoryRepository) GetByID(ctx context.Context, id string) (*domain.Directory, error) {
	const query = `
        SELECT id, user_id, name, active, last_accessed_at, created_at, updated_at
        FROM directories WHERE id=$1`

	var dir domain.Directory
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&dir.ID,
		&dir.UserID,
		&dir.Name,
		&dir.Active,
		&dir.LastAccessedAt,
		&dir.CreatedAt,
		&dir.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dir, nil
}

func (r *directoryRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]domain.Directory, error) {
	const query = `
        SELECT id, user_id, name, active, last_accessed_at, created_at, updated_at
        FROM directories
        WHERE user_id=$1 AND active
        ORDER BY last_accessed_at DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Directory, error) {
		var dir domain.Directory
		err := row.Scan(
			&dir.ID,
			&dir.UserID,
			&dir.Name,
			&dir.Active,
			&dir.LastAccessedAt,
			&dir.CreatedAt,
			&dir.UpdatedAt,
		)
		return dir, err
	})
}
