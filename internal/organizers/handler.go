package organizers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eventra/backend/internal/middleware"
	"github.com/eventra/backend/internal/models"
	"github.com/eventra/backend/pkg/response"
)

// Handler handles organizer profile endpoints.
type Handler struct {
	repo *Repository
}

// NewHandler creates an organizers handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// UpdateProfileRequest is the body for PATCH /organizers/me. Omitted fields
// keep their current value.
type UpdateProfileRequest struct {
	Name               *string `json:"name"`
	Position           *string `json:"position"`
	Bio                *string `json:"bio"`
	CompanyName        *string `json:"company_name"`
	RegistrationNumber *string `json:"registration_number"`
	BusinessType       *string `json:"business_type"`
	Address            *string `json:"address"`
	Phone              *string `json:"phone"`
	Website            *string `json:"website"`
}

// VerifyRequest is the body for PUT /admin/organizers/:id/verify.
type VerifyRequest struct {
	Verified bool `json:"verified"`
}

// GetMe handles GET /organizers/me.
func (h *Handler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	profile, err := h.repo.GetByUserID(c.Request.Context(), userID)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "organizer profile not found")
		return
	}
	if err != nil {
		response.Internal(c, "failed to load profile")
		return
	}
	response.OK(c, profile)
}

// UpdateMe handles PATCH /organizers/me.
func (h *Handler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	profile, err := h.repo.GetByUserID(c.Request.Context(), userID)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "organizer profile not found")
		return
	}
	if err != nil {
		response.Internal(c, "failed to load profile")
		return
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Position != nil {
		profile.Position = *req.Position
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.RegistrationNumber != nil {
		profile.RegistrationNumber = *req.RegistrationNumber
	}
	if req.BusinessType != nil {
		bt, err := models.ParseBusinessType(*req.BusinessType)
		if err != nil {
			response.ValidationFailed(c, []response.FieldError{{Param: "business_type", Msg: "must be one of pt, cv, firma, koperasi, individual, other"}})
			return
		}
		profile.BusinessType = bt
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}

	if err := h.repo.Update(c.Request.Context(), profile); err != nil {
		response.Internal(c, "failed to update profile")
		return
	}
	response.OK(c, profile)
}

// Verify handles PUT /admin/organizers/:id/verify (admin only). The staff
// verification flag is independent of any event review.
func (h *Handler) Verify(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid organizer id")
		return
	}
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	profile, err := h.repo.SetVerified(c.Request.Context(), profileID, req.Verified)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "organizer profile not found")
		return
	}
	if err != nil {
		response.Internal(c, "failed to update verification")
		return
	}
	response.OK(c, profile)
}
