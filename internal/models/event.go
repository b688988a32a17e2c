package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus is the review workflow state of an event. Events are created
// pending; an admin review moves them to approved or rejected, both terminal.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ParseApprovalStatus validates a workflow state string.
func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	switch ApprovalStatus(s) {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return ApprovalStatus(s), nil
	default:
		return "", fmt.Errorf("unknown approval status %q", s)
	}
}

// Category classifies an event for catalog filtering.
type Category string

const (
	CategoryCultural  Category = "cultural"
	CategoryMusic     Category = "music"
	CategorySports    Category = "sports"
	CategoryCulinary  Category = "culinary"
	CategoryAdventure Category = "adventure"
	CategoryBusiness  Category = "business"
	CategoryOther     Category = "other"
)

// ParseCategory validates a category string.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryCultural, CategoryMusic, CategorySports, CategoryCulinary,
		CategoryAdventure, CategoryBusiness, CategoryOther:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// TicketTier is one priced admission class of an event. Sold is maintained by
// the (separate) purchase subsystem and is display-only in this service.
type TicketTier struct {
	ID         uuid.UUID `json:"id"`
	EventID    uuid.UUID `json:"event_id"`
	Position   int       `json:"position"`
	Name       string    `json:"name"`
	PriceCents int       `json:"price_cents"`
	Quantity   int       `json:"quantity"`
	Sold       int       `json:"sold"`
}

// Event is the central workflow entity: submitted by an organizer, reviewed by
// an admin, and shown in the public catalog only once approved and published.
type Event struct {
	ID             uuid.UUID      `json:"id"`
	OrganizerID    uuid.UUID      `json:"organizer_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	StartsAt       time.Time      `json:"starts_at"`
	StartTime      string         `json:"start_time"`
	Location       string         `json:"location"`
	Category       Category       `json:"category"`
	ImageURLs      []string       `json:"image_urls"`
	Published      bool           `json:"published"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	AdminFeedback  string         `json:"admin_feedback,omitempty"`
	ReviewedAt     *time.Time     `json:"reviewed_at,omitempty"`
	ReviewedBy     *uuid.UUID     `json:"reviewed_by,omitempty"`
	Tiers          []TicketTier   `json:"ticket_tiers,omitempty"`
	OrganizerName  string         `json:"organizer_name,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Visible reports whether the event may appear in the public catalog.
// Approval gates visibility regardless of the published flag.
func (e *Event) Visible() bool {
	return e.ApprovalStatus == ApprovalApproved && e.Published
}

// PendingSummary is the minimal projection for the admin review queue.
type PendingSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	StartsAt      time.Time `json:"starts_at"`
	Location      string    `json:"location"`
	OrganizerName string    `json:"organizer_name"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
