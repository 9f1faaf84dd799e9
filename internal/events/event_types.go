package events

import (
	"time"

	"github.com/spec-kit/admin-console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserCreated     EventType = "user_created"
	EventUserUpdated     EventType = "user_updated"
	EventUserDeleted     EventType = "user_deleted"
	EventPasswordChanged EventType = "password_changed"
	EventSettingsUpdated EventType = "settings_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserCreatedPayload payload.
type UserCreatedPayload struct {
	Email  string            `json:"email"`
	Role   domain.Role       `json:"role"`
	Status domain.UserStatus `json:"status"`
}

// UserUpdatedPayload lists the fields a patch changed.
type UserUpdatedPayload struct {
	Fields []string `json:"fields"`
}

// UserDeletedPayload payload.
type UserDeletedPayload struct {
	Email string `json:"email"`
}

// SettingsUpdatedPayload names the settings section that was saved.
type SettingsUpdatedPayload struct {
	Section string `json:"section"`
}
