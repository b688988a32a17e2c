// Package review implements the admin approval workflow: pending events are
// moved to approved or rejected exactly once, rejections carry feedback, and
// the decision fans out to the catalog cache and organizer notifications.
package review

import (
	"strings"

	"github.com/eventra/backend/internal/models"
	"github.com/eventra/backend/pkg/response"
)

// Request is the body for PUT /admin/events/:id/review. The canonical fields
// are approval_status and admin_feedback; status and review_notes are
// accepted as aliases for older clients.
type Request struct {
	ApprovalStatus string `json:"approval_status"`
	AdminFeedback  string `json:"admin_feedback"`
	Status         string `json:"status"`
	ReviewNotes    string `json:"review_notes"`
}

// Normalize resolves the alias fields into the canonical ones.
func (r *Request) Normalize() (status, feedback string) {
	status = r.ApprovalStatus
	if status == "" {
		status = r.Status
	}
	feedback = r.AdminFeedback
	if feedback == "" {
		feedback = r.ReviewNotes
	}
	return status, strings.TrimSpace(feedback)
}

// Validate checks the review request before anything touches the database.
// The target must be approved or rejected (pending is not a target, and
// re-review is not exposed), and a rejection without feedback is invalid.
func Validate(status, feedback string) (models.ApprovalStatus, []response.FieldError) {
	target, err := models.ParseApprovalStatus(status)
	if err != nil || target == models.ApprovalPending {
		return "", []response.FieldError{{Param: "approval_status", Msg: "must be approved or rejected"}}
	}
	if target == models.ApprovalRejected && feedback == "" {
		return "", []response.FieldError{{Param: "admin_feedback", Msg: "is required when rejecting an event"}}
	}
	return target, nil
}
