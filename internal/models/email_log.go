package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus tracks delivery state of a notification email.
type EmailStatus string

const (
	EmailQueued EmailStatus = "queued"
	EmailSent   EmailStatus = "sent"
	EmailFailed EmailStatus = "failed"
)

// EmailLog records a notification sent (or attempted) for an event review.
type EmailLog struct {
	ID        uuid.UUID   `json:"id"`
	EventID   uuid.UUID   `json:"event_id"`
	Recipient string      `json:"recipient"`
	Subject   string      `json:"subject"`
	Status    EmailStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
