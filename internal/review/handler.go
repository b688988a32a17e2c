package review

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eventra/backend/internal/auth"
	"github.com/eventra/backend/internal/catalog"
	"github.com/eventra/backend/internal/middleware"
	"github.com/eventra/backend/internal/models"
	"github.com/eventra/backend/pkg/queue"
	"github.com/eventra/backend/pkg/response"
)

// Handler handles the admin review endpoints.
type Handler struct {
	repo     *Repository
	authRepo *auth.Repository
	cache    *catalog.Cache
	jobs     *queue.Queue
	logger   *zap.Logger
}

// NewHandler creates a review handler.
func NewHandler(repo *Repository, authRepo *auth.Repository, cache *catalog.Cache, jobs *queue.Queue, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, authRepo: authRepo, cache: cache, jobs: jobs, logger: logger}
}

// ListPending handles GET /admin/events/pending.
func (h *Handler) ListPending(c *gin.Context) {
	list, err := h.repo.ListPending(c.Request.Context())
	if err != nil {
		response.Internal(c, "failed to load pending events")
		return
	}
	response.OK(c, list)
}

// GetDetail handles GET /admin/events/:id. Returns the full event with the
// organizer's profile for the review screen.
func (h *Handler) GetDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	event, profile, err := h.repo.GetDetail(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "event not found")
		return
	}
	if err != nil {
		response.Internal(c, "failed to load event")
		return
	}
	response.OK(c, gin.H{"event": event, "organizer": profile})
}

// Review handles PUT /admin/events/:id/review. Transitions a pending event to
// approved or rejected. A rejection requires feedback (422 before any query),
// and a repeated review is a 409 rather than a silent second success.
func (h *Handler) Review(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	status, feedback := req.Normalize()
	target, fieldErrs := Validate(status, feedback)
	if len(fieldErrs) > 0 {
		response.ValidationFailed(c, fieldErrs)
		return
	}

	reviewer := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	event, err := h.repo.Review(c.Request.Context(), id, target, feedback, reviewer)
	if errors.Is(err, ErrAlreadyReviewed) {
		response.Conflict(c, "event has already been reviewed")
		return
	}
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "event not found")
		return
	}
	if err != nil {
		h.logger.Error("review event", zap.Error(err))
		response.Internal(c, "failed to review event")
		return
	}

	// The decision is acknowledged; only now does the catalog cache drop its
	// copy and the organizer get notified.
	if event.Published {
		h.cache.Invalidate(c.Request.Context())
	}
	h.notifyOrganizer(c, event)

	h.logger.Info("event reviewed",
		zap.String("event_id", event.ID.String()),
		zap.String("status", string(event.ApprovalStatus)),
		zap.String("reviewer", reviewer.String()))
	response.OK(c, event)
}

func (h *Handler) notifyOrganizer(c *gin.Context, event *models.Event) {
	organizer, err := h.authRepo.GetByID(c.Request.Context(), event.OrganizerID)
	if err != nil {
		h.logger.Warn("organizer lookup for notification failed",
			zap.String("event_id", event.ID.String()), zap.Error(err))
		return
	}
	err = h.jobs.EnqueueReviewNotification(c.Request.Context(), queue.ReviewNotificationPayload{
		EventID:        event.ID,
		EventTitle:     event.Title,
		OrganizerEmail: organizer.Email,
		ApprovalStatus: string(event.ApprovalStatus),
		AdminFeedback:  event.AdminFeedback,
	})
	if err != nil {
		h.logger.Warn("enqueue review notification failed",
			zap.String("event_id", event.ID.String()), zap.Error(err))
	}
}

// Dashboard handles GET /admin/dashboard.
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.repo.DashboardCounts(c.Request.Context())
	if err != nil {
		response.Internal(c, "failed to load dashboard stats")
		return
	}
	response.OK(c, stats)
}
