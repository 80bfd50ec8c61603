package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/study-tracker/internal/events"
)

// ActivityService records study milestones emitted by the other services.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserRegistered, a.record)
	a.dispatcher.Subscribe(events.EventDirectoryDeactivated, a.record)
	a.dispatcher.Subscribe(events.EventProgressCompleted, a.record)
}

func (a *ActivityService) record(_ context.Context, event events.Event) error {
	a.logger.Info("activity",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("user_id", event.UserID),
		zap.Time("at", event.Timestamp),
		zap.Any("payload", event.Payload),
	)
	return nil
}
