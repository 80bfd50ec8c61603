package domain

import "time"

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Settings holds per-user preferences. A user has at most one row.
type Settings struct {
	UserID        string
	Theme         Theme
	Notifications bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DefaultSettings returns the preferences assigned on creation.
func DefaultSettings(userID string) *Settings {
	return &Settings{UserID: userID, Theme: ThemeLight, Notifications: true}
}
