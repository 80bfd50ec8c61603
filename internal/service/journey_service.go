package service

import (
	"context"
	"strings"

	"github.com/spec-kit/study-tracker/internal/domain"
	"github.com/spec-kit/study-tracker/internal/repository"
	"github.com/spec-kit/study-tracker/pkg/util/errorutil"
)

// JourneyService implements journey use cases. Journeys live inside a
// directory and inherit its owner.
type JourneyService struct {
	journeys    repository.JourneyRepository
	directories repository.DirectoryRepository
}

// NewJourneyService builds the service.
func NewJourneyService(journeys repository.JourneyRepository, directories repository.DirectoryRepository) *JourneyService {
	return &JourneyService{journeys: journeys, directories: directories}
}

// Create adds a journey to an active directory owned by userID.
func (s *JourneyService) Create(ctx context.Context, userID, directoryID, name string) (*domain.Journey, error) {
	dir, err := s.ownedDirectory(ctx, userID, directoryID)
	if err != nil {
		return nil, err
	}
	if !dir.Active {
		return nil, errorutil.NewConflict("Directory is inactive")
	}

	journey := &domain.Journey{
		UserID:      userID,
		DirectoryID: dir.ID,
		Name:        strings.TrimSpace(name),
	}
	if err := s.journeys.Create(ctx, journey); err != nil {
		return nil, err
	}
	return journey, nil
}

// ListByDirectory returns the journeys of a directory in creation order.
func (s *JourneyService) ListByDirectory(ctx context.Context, userID, directoryID string) ([]domain.Journey, error) {
	if _, err := s.ownedDirectory(ctx, userID, directoryID); err != nil {
		return nil, err
	}
	return s.journeys.ListByDirectory(ctx, directoryID)
}

// Rename changes the journey name.
func (s *JourneyService) Rename(ctx context.Context, userID, journeyID, name string) (*domain.Journey, error) {
	journey, err := s.owned(ctx, userID, journeyID)
	if err != nil {
		return nil, err
	}
	journey.Name = strings.TrimSpace(name)
	if err := s.journeys.Rename(ctx, journey); err != nil {
		return nil, err
	}
	return journey, nil
}

// Delete removes the journey.
func (s *JourneyService) Delete(ctx context.Context, userID, journeyID string) error {
	if _, err := s.owned(ctx, userID, journeyID); err != nil {
		return err
	}
	return errorutil.MapNotFound(s.journeys.Delete(ctx, journeyID), "Journey")
}

func (s *JourneyService) owned(ctx context.Context, userID, journeyID string) (*domain.Journey, error) {
	journey, err := s.journeys.GetByID(ctx, journeyID)
	if err != nil {
		return nil, errorutil.MapNotFound(err, "Journey")
	}
	if !journey.OwnedBy(userID) {
		return nil, errorutil.NewUnauthorized(errorutil.UnauthorizedMessage)
	}
	return journey, nil
}

func (s *JourneyService) ownedDirectory(ctx context.Context, userID, directoryID string) (*domain.Directory, error) {
	dir, err := s.directories.GetByID(ctx, directoryID)
	if err != nil {
		return nil, errorutil.MapNotFound(err, "Directory")
	}
	if !dir.OwnedBy(userID) {
		return nil, errorutil.NewUnauthorized(errorutil.UnauthorizedMessage)
	}
	return dir, nil
}
