package domain

import "time"

// User is an account that owns directories, settings and progress tracks.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
