package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/study-tracker/internal/domain"
	"github.com/spec-kit/study-tracker/internal/events"
	"github.com/spec-kit/study-tracker/internal/repository"
	"github.com/spec-kit/study-tracker/pkg/util/errorutil"
)

// RecentDirectoriesLimit caps the recently accessed listing.
const RecentDirectoriesLimit = 10

// DirectoryService implements directory use cases. Every operation on an
// existing directory checks that the caller owns it.
type DirectoryService struct {
	directories repository.DirectoryRepository
	now         func() time.Time
	events      publisher
}

// NewDirectoryService builds the service.
func NewDirectoryService(directories repository.DirectoryRepository) *DirectoryService {
	return &DirectoryService{directories: directories, now: time.Now}
}

// WithEvents publishes EventDirectoryDeactivated to dispatcher.
func (s *DirectoryService) WithEvents(dispatcher events.Dispatcher, logger *zap.Logger) *DirectoryService {
	s.events = newPublisher(dispatcher, logger)
	return s
}

// Create adds an active directory for userID.
func (s *DirectoryService) Create(ctx context.Context, userID, name string) (*domain.Directory, error) {
	dir := &domain.Directory{
		UserID: userID,
		Name:   strings.TrimSpace(name),
		Active: true,
	}
	if err := s.directories.Create(ctx, dir); err != nil {
		return nil, err
	}
	return dir, nil
}

// Rename changes the directory name.
func (s *DirectoryService) Rename(ctx context.Context, userID, directoryID, name string) (*domain.Directory, error) {
	dir, err := s.owned(ctx, userID, directoryID)
	if err != nil {
		return nil, err
	}
	dir.Name = strings.TrimSpace(name)
	if err := s.directories.Update(ctx, dir); err != nil {
		return nil, err
	}
	return dir, nil
}

// Deactivate hides the directory from listings.
func (s *DirectoryService) Deactivate(ctx context.Context, userID, directoryID string) (*domain.Directory, error) {
	dir, err := s.owned(ctx, userID, directoryID)
	if err != nil {
		return nil, err
	}
	wasActive := dir.Active
	dir.Active = false
	if err := s.directories.Update(ctx, dir); err != nil {
		return nil, err
	}
	if wasActive {
		s.events.publish(ctx, events.EventDirectoryDeactivated, userID, events.DirectoryDeactivatedPayload{
			DirectoryID: dir.ID,
			Name:        dir.Name,
		})
	}
	return dir, nil
}

// TouchAccess records that the directory was opened now.
func (s *DirectoryService) TouchAccess(ctx context.Context, userID, directoryID string) (*domain.Directory, error) {
	dir, err := s.owned(ctx, userID, directoryID)
	if err != nil {
		return nil, err
	}
	dir.LastAccessedAt = s.now().UTC()
	if err := s.directories.Update(ctx, dir); err != nil {
		return nil, err
	}
	return dir, nil
}

// ListRecent returns the user's active directories, most recently accessed first.
func (s *DirectoryService) ListRecent(ctx context.Context, userID string) ([]domain.Directory, error) {
	return s.directories.ListRecentByUser(ctx, userID, RecentDirectoriesLimit)
}

func (s *DirectoryService) owned(ctx context.Context, userID, directoryID string) (*domain.Directory, error) {
	dir, err := s.directories.GetByID(ctx, directoryID)
	if err != nil {
		return nil, errorutil.MapNotFound(err, "Directory")
	}
	if !dir.OwnedBy(userID) {
		return nil, errorutil.NewUnauthorized(errorutil.UnauthorizedMessage)
	}
	return dir, nil
}
