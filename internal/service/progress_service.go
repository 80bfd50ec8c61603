package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/study-tracker/internal/domain"
	"github.com/spec-kit/study-tracker/internal/events"
	"github.com/spec-kit/study-tracker/internal/repository"
	"github.com/spec-kit/study-tracker/pkg/util/errorutil"
)

// ProgressService implements progress use cases.
type ProgressService struct {
	progress repository.ProgressRepository
	events   publisher
}

// NewProgressService builds the service.
func NewProgressService(progress repository.ProgressRepository) *ProgressService {
	return &ProgressService{progress: progress}
}

// WithEvents publishes EventProgressCompleted when a track reaches its total.
func (s *ProgressService) WithEvents(dispatcher events.Dispatcher, logger *zap.Logger) *ProgressService {
	s.events = newPublisher(dispatcher, logger)
	return s
}

// Create starts a new track with nothing completed.
func (s *ProgressService) Create(ctx context.Context, userID, title string, totalItems int) (*domain.Progress, error) {
	if totalItems < 1 {
		return nil, errorutil.NewValidationError("totalItems must be at least 1", nil)
	}
	progress := &domain.Progress{
		UserID:     userID,
		Title:      strings.TrimSpace(title),
		TotalItems: totalItems,
	}
	if err := s.progress.Create(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// Increase marks one more item of the track complete. The increment happens
// in the repository so concurrent calls never lose an update; once the track
// is complete further calls return it unchanged.
func (s *ProgressService) Increase(ctx context.Context, userID, progressID string) (*domain.Progress, error) {
	progress, err := s.progress.IncrementCompleted(ctx, progressID, userID)
	switch {
	case err == nil:
		if progress.Completed() {
			s.events.publish(ctx, events.EventProgressCompleted, userID, events.ProgressCompletedPayload{
				ProgressID: progress.ID,
				Title:      progress.Title,
				TotalItems: progress.TotalItems,
			})
		}
		return progress, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, err
	}

	current, err := s.progress.GetByID(ctx, progressID)
	if err != nil {
		return nil, errorutil.MapNotFound(err, "Progress")
	}
	if !current.OwnedBy(userID) {
		return nil, errorutil.NewUnauthorized(errorutil.UnauthorizedMessage)
	}
	return current, nil
}

// Statistics summarizes every track of the user.
func (s *ProgressService) Statistics(ctx context.Context, userID string) (domain.ProgressStatistics, error) {
	return s.progress.StatisticsByUser(ctx, userID)
}
