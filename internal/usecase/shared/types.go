package shared

import (
	"time"

	"github.com/google/uuid"
)

// RequestContext carries the caller identity and the request's notion of
// "now". Built once per request by the handler.
type RequestContext struct {
	CurrentUserID uuid.UUID
	Now           time.Time
}

func NewRequestContext(userID uuid.UUID, now time.Time) RequestContext {
	return RequestContext{CurrentUserID: userID, Now: now}
}

// Minimal snapshot for command read operations
type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	PasswordHash string
}

type JobStatus string

const (
	JobStatusQueued JobStatus = "queued"
	JobStatusSent   JobStatus = "sent"
	JobStatusFailed JobStatus = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
	RunAt    time.Time
}
