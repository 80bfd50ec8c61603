package domain

import "time"

// Directory groups a user's study material.
type Directory struct {
	ID             string
	UserID         string
	Name           string
	Active         bool
	LastAccessedAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OwnedBy reports whether userID owns the directory.
func (d *Directory) OwnedBy(userID string) bool {
	return d != nil && d.UserID == userID
}
