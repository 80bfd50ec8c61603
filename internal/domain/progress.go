package domain

import (
	"math"
	"time"
)

// Progress tracks completion of a fixed number of study items.
type Progress struct {
	ID             string
	UserID         string
	Title          string
	TotalItems     int
	CompletedItems int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OwnedBy reports whether userID owns the track.
func (p *Progress) OwnedBy(userID string) bool {
	return p != nil && p.UserID == userID
}

// Completed reports whether every item of the track is done.
func (p *Progress) Completed() bool {
	return p.CompletedItems >= p.TotalItems
}

// ProgressStatistics aggregates every track of a user.
type ProgressStatistics struct {
	UserID         string
	Tracks         int
	TotalItems     int
	CompletedItems int
}

// CompletionRate is the completed percentage rounded to two decimals.
func (s ProgressStatistics) CompletionRate() float64 {
	if s.TotalItems <= 0 {
		return 0
	}
	rate := float64(s.CompletedItems) / float64(s.TotalItems) * 100
	return math.Round(rate*100) / 100
}
