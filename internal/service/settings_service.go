package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/study-tracker/internal/domain"
	"github.com/spec-kit/study-tracker/internal/repository"
	"github.com/spec-kit/study-tracker/pkg/util/errorutil"
)

// SettingsUpdate is the full replacement for a user's preferences.
type SettingsUpdate struct {
	Theme         domain.Theme
	Notifications bool
}

// SettingsService implements settings use cases.
type SettingsService struct {
	settings repository.SettingsRepository
}

// NewSettingsService builds the service.
func NewSettingsService(settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Create stores default settings for userID. A user can only have one row.
func (s *SettingsService) Create(ctx context.Context, userID string) (*domain.Settings, error) {
	if _, err := s.settings.GetByUser(ctx, userID); err == nil {
		return nil, errorutil.NewConflict("Settings already exist")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	settings := domain.DefaultSettings(userID)
	if err := s.settings.Create(ctx, settings); err != nil {
		if isUniqueViolation(err) {
			return nil, errorutil.NewConflict("Settings already exist")
		}
		return nil, err
	}
	return settings, nil
}

// Get returns the user's settings.
func (s *SettingsService) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	settings, err := s.settings.GetByUser(ctx, userID)
	if err != nil {
		return nil, errorutil.MapNotFound(err, "Settings")
	}
	return settings, nil
}

// Update replaces the user's settings.
func (s *SettingsService) Update(ctx context.Context, userID string, in SettingsUpdate) (*domain.Settings, error) {
	settings := &domain.Settings{
		UserID:        userID,
		Theme:         in.Theme,
		Notifications: in.Notifications,
	}
	if err := s.settings.Update(ctx, settings); err != nil {
		return nil, errorutil.MapNotFound(err, "Settings")
	}
	return settings, nil
}
