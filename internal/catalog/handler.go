package catalog

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eventra/backend/pkg/response"
)

// Handler handles public catalog endpoints.
type Handler struct {
	repo  *Repository
	cache *Cache
}

// NewHandler creates a catalog handler.
func NewHandler(repo *Repository, cache *Cache) *Handler {
	return &Handler{repo: repo, cache: cache}
}

// List handles GET /events. Supports ?search= (case-insensitive substring
// over title, description, location, organizer name) and ?category= (exact
// or "all"); the two compose with AND. The unfiltered approved list is
// served through the cache; filters always run against the full set.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	list, ok := h.cache.GetList(ctx)
	if !ok {
		var err error
		list, err = h.repo.ListApproved(ctx)
		if err != nil {
			response.Internal(c, "failed to load events")
			return
		}
		h.cache.SetList(ctx, list)
	}
	filtered := Filter(list, c.Query("search"), c.Query("category"))
	response.OK(c, filtered)
}

// GetByID handles GET /events/:id. Anything not approved and published is a 404.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	e, err := h.repo.GetApproved(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "event not found")
		return
	}
	if err != nil {
		response.Internal(c, "failed to load event")
		return
	}
	response.OK(c, e)
}
