package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/admin-console/internal/events"
)

// AuditService records directory and account changes in the log.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserCreated, a.record)
	a.dispatcher.Subscribe(events.EventUserUpdated, a.record)
	a.dispatcher.Subscribe(events.EventUserDeleted, a.record)
	a.dispatcher.Subscribe(events.EventPasswordChanged, a.record)
	a.dispatcher.Subscribe(events.EventSettingsUpdated, a.record)
}

func (a *AuditService) record(_ context.Context, event events.Event) error {
	a.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("subject_id", event.SubjectID),
		zap.String("actor_id", event.ActorID),
		zap.Time("at", event.Timestamp),
		zap.Any("payload", event.Payload))
	return nil
}
