package service

import (
	"context"
	"time"
)

// LetterEvent is published after a submission or a reply has been committed.
type LetterEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"` // constants.EventLetterSubmitted or constants.EventLetterReplied
	LetterID    string    `json:"letter_id"`
	AuthorID    string    `json:"author_id"`
	RecipientID string    `json:"recipient_id,omitempty"`
	ParentID    string    `json:"parent_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing letter events to a message queue
type EventPublisher interface {
	// PublishLetterEvent publishes a letter event for async consumers
	PublishLetterEvent(ctx context.Context, event *LetterEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
