package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/study-tracker/internal/events"
)

// publisher forwards domain events to an optional dispatcher. Handler
// failures are logged and never fail the use case that emitted the event.
type publisher struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

func newPublisher(dispatcher events.Dispatcher, logger *zap.Logger) publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return publisher{dispatcher: dispatcher, logger: logger}
}

func (p publisher) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if p.dispatcher == nil {
		return
	}
	if err := p.dispatcher.Publish(ctx, events.New(eventType, userID, payload)); err != nil {
		p.logger.Warn("event handler failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}
