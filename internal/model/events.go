package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ConsentChanged is emitted after a consent transition commits.
// It carries the pseudonymous id only.
type ConsentChanged struct {
	EventID        uuid.UUID `json:"event_id"`
	HashedUserID   string    `json:"hashed_user_id"`
	ConsentGiven   bool      `json:"consent_given"`
	RecordsDeleted int64     `json:"records_deleted"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher delivers consent events to downstream consumers.
type EventPublisher interface {
	PublishConsentChanged(ctx context.Context, event ConsentChanged) error
}

// RateLimiter throttles submissions per user.
type RateLimiter interface {
	Allow(ctx context.Context, userID UserID) (bool, error)
}
