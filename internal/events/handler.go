package events

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eventra/backend/internal/catalog"
	"github.com/eventra/backend/internal/middleware"
	"github.com/eventra/backend/internal/models"
	"github.com/eventra/backend/pkg/response"
)

// Store is the persistence surface the handler needs. *Repository implements it.
type Store interface {
	Create(ctx context.Context, e *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]models.Event, error)
	Update(ctx context.Context, e *models.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handler handles organizer-facing event endpoints.
type Handler struct {
	repo   Store
	cache  *catalog.Cache
	logger *zap.Logger
}

// NewHandler creates an events handler.
func NewHandler(repo Store, cache *catalog.Cache, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, cache: cache, logger: logger}
}

// Create handles POST /events (organizer only). The event is stored in
// pending approval state; published is whatever the submitter chose and has
// no effect on catalog visibility until an admin approves.
func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	organizerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	category, _ := models.ParseCategory(req.Category)

	e := &models.Event{
		OrganizerID: organizerID,
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt(),
		StartTime:   req.Time,
		Location:    req.Location,
		Category:    category,
		ImageURLs:   req.ImageURLs,
		Published:   req.Published,
		Tiers:       SanitizeTiers(req.Tiers),
	}
	if e.ImageURLs == nil {
		e.ImageURLs = []string{}
	}
	if err := h.repo.Create(c.Request.Context(), e); err != nil {
		h.logger.Error("create event", zap.Error(err))
		response.Internal(c, "failed to create event")
		return
	}

	h.logger.Info("event submitted for review",
		zap.String("event_id", e.ID.String()), zap.String("organizer_id", organizerID.String()))
	response.Created(c, e)
}

// ListMine handles GET /events/mine. Returns the organizer's own events with
// their approval status and feedback.
func (h *Handler) ListMine(c *gin.Context) {
	organizerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	list, err := h.repo.ListByOrganizer(c.Request.Context(), organizerID)
	if err != nil {
		response.Internal(c, "failed to list events")
		return
	}
	response.OK(c, list)
}

// Update handles PATCH /events/:id (owner only, pending events only). Once an
// event has been reviewed it is no longer editable.
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	organizerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "event not found")
		return
	}
	if err != nil {
		response.Internal(c, "failed to load event")
		return
	}
	if existing.OrganizerID != organizerID {
		response.Forbidden(c, "only the owning organizer can update this event")
		return
	}
	if existing.ApprovalStatus != models.ApprovalPending {
		response.Conflict(c, "event has already been reviewed and can no longer be edited")
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	category, _ := models.ParseCategory(req.Category)
	existing.Title = req.Title
	existing.Description = req.Description
	existing.StartsAt = req.StartsAt()
	existing.StartTime = req.Time
	existing.Location = req.Location
	existing.Category = category
	existing.ImageURLs = req.ImageURLs
	if existing.ImageURLs == nil {
		existing.ImageURLs = []string{}
	}
	existing.Published = req.Published
	existing.Tiers = SanitizeTiers(req.Tiers)

	err = h.repo.Update(c.Request.Context(), existing)
	// A review can land between the read above and this write; the repository
	// guards the write on the pending state, so that race still surfaces here.
	if errors.Is(err, ErrReviewed) {
		response.Conflict(c, "event has already been reviewed and can no longer be edited")
		return
	}
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "event not found")
		return
	}
	if err != nil {
		h.logger.Error("update event", zap.Error(err))
		response.Internal(c, "failed to update event")
		return
	}
	response.OK(c, existing)
}

// Delete handles DELETE /events/:id (owner only, any approval state).
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	organizerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "event not found")
		return
	}
	if err != nil {
		response.Internal(c, "failed to load event")
		return
	}
	if existing.OrganizerID != organizerID {
		response.Forbidden(c, "only the owning organizer can delete this event")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Internal(c, "failed to delete event")
		return
	}
	// Deleting an approved event changes the public catalog.
	if existing.Visible() {
		h.cache.Invalidate(c.Request.Context())
	}
	response.NoContent(c)
}
