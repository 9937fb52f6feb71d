package events

import (
	"context"
	"time"
)

// Topic is the single stream all classroom events are published to.
const Topic = "classroom.events"

// Event types emitted by the services.
const (
	AccountCreated     = "account.created"
	StudentEnrolled    = "workspace.student_enrolled"
	SubmissionCreated  = "submission.created"
	SubmissionReviewed = "submission.reviewed"
	ChatCreated        = "chat.created"
)

// Event is the envelope published for every domain occurrence.
type Event struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload"`
}

// Publisher publishes domain events. Implementations must tolerate being
// called concurrently from request handlers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
