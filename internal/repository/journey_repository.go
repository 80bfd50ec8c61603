package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/study-tracker/internal/domain"
)

// JourneyRepository persists journeys.
type JourneyRepository interface {
	Create(ctx context.Context, journey *domain.Journey) error
	Rename(ctx context.Context, journey *domain.Journey) error
	GetByID(ctx context.Context, id string) (*domain.Journey, error)
	ListByDirectory(ctx context.Context, directoryID string) ([]domain.Journey, error)
	Delete(ctx context.Context, id string) error
}

type journeyRepository struct {
	pool *pgxpool.Pool
}

// NewJourneyRepository instantiates repository.
func NewJourneyRepository(pool *pgxpool.Pool) JourneyRepository {
	return &journeyRepository{pool: pool}
}

func (r *journeyRepository) Create(ctx context.Context, journey *domain.Journey) error {
	const query = `
        INSERT INTO journeys (id, user_id, directory_id, name)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at`

	if journey.ID == "" {
		journey.ID = uuid.NewString()
	}
	return r.pool.QueryRow(ctx, query,
		journey.ID,
		journey.UserID,
		journey.DirectoryID,
		journey.Name,
	).Scan(&journey.CreatedAt, &journey.UpdatedAt)
}

func (r *journeyRepository) Rename(ctx context.Context, journey *domain.Journey) error {
	const query = `
        UPDATE journeys SET name=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query, journey.Name, journey.ID).Scan(&journey.UpdatedAt)
}

func (r *journeyRepository) GetByID(ctx context.Context, id string) (*domain.Journey, error) {
	const query = `
        SELECT id, user_id, directory_id, name, created_at, updated_at
        FROM journeys WHERE id=$1`

	journey, err := scanJourney(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return &journey, nil
}

func (r *journeyRepository) ListByDirectory(ctx context.Context, directoryID string) ([]domain.Journey, error) {
	const query = `
        SELECT id, user_id, directory_id, name, created_at, updated_at
        FROM journeys
        WHERE directory_id=$1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, directoryID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Journey, error) {
		return scanJourney(row)
	})
}

// Delete removes the journey, returning pgx.ErrNoRows when it does not exist.
func (r *journeyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM journeys WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanJourney(row pgx.Row) (domain.Journey, error) {
	var journey domain.Journey
	err := row.Scan(
		&journey.ID,
		&journey.UserID,
		&journey.DirectoryID,
		&journey.Name,
		&journey.CreatedAt,
		&journey.UpdatedAt,
	)
	return journey, err
}
