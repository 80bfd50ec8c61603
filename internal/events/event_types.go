package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered       EventType = "user_registered"
	EventDirectoryDeactivated EventType = "directory_deactivated"
	EventProgressCompleted    EventType = "progress_completed"
)

// Event is emitted by services after a state change has been persisted.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, userID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Username string `json:"username"`
}

// DirectoryDeactivatedPayload payload.
type DirectoryDeactivatedPayload struct {
	DirectoryID string `json:"directory_id"`
	Name        string `json:"name"`
}

// ProgressCompletedPayload payload.
type ProgressCompletedPayload struct {
	ProgressID string `json:"progress_id"`
	Title      string `json:"title"`
	TotalItems int    `json:"total_items"`
}
