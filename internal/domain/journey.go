package domain

import "time"

// Journey is a named learning path inside a directory.
type Journey struct {
	ID          string
	UserID      string
	DirectoryID string
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether userID owns the journey.
func (j *Journey) OwnedBy(userID string) bool {
	return j != nil && j.UserID == userID
}
