package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eventra/backend/internal/models"
	"github.com/eventra/backend/pkg/response"
	"github.com/eventra/backend/pkg/utils"
)

// SigninRequest is the body for POST /auth/signin. RememberMe selects the
// long-lived token so the client can persist the session durably.
type SigninRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// SignupRequest is the body for POST /auth/signup and POST /auth/doctor/signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

// OrganizerSignupRequest is the body for POST /auth/organizer/signup. It
// carries the company profile created alongside the account.
type OrganizerSignupRequest struct {
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=6"`
	FullName           string `json:"full_name" binding:"required"`
	Position           string `json:"position"`
	Bio                string `json:"bio"`
	CompanyName        string `json:"company_name" binding:"required"`
	RegistrationNumber string `json:"registration_number"`
	BusinessType       string `json:"business_type" binding:"required"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Website            string `json:"website"`
}

// TokenResponse is the auth response with JWT.
type TokenResponse struct {
	Token string            `json:"token"`
	User  models.UserPublic `json:"user"`
}

// Handler handles auth HTTP endpoints.
type Handler struct {
	repo   *Repository
	jwt    *JWTService
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(repo *Repository, jwt *JWTService, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, jwt: jwt, logger: logger}
}

// Signin handles POST /auth/signin.
func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err)
		return
	}

	user, err := h.repo.GetByEmail(c.Request.Context(), strings.ToLower(req.Email))
	if err != nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email, string(user.Role), req.RememberMe)
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}

	response.OK(c, TokenResponse{Token: token, User: user.ToPublic()})
}

// Signup handles POST /auth/signup. Accounts created here get the user role.
func (h *Handler) Signup(c *gin.Context) {
	h.signupWithRole(c, models.RoleUser)
}

// DoctorSignup handles POST /auth/doctor/signup.
func (h *Handler) DoctorSignup(c *gin.Context) {
	h.signupWithRole(c, models.RoleDoctor)
}

func (h *Handler) signupWithRole(c *gin.Context, role models.Role) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := h.repo.GetByEmail(c.Request.Context(), email); err == nil {
		response.BadRequest(c, "email already registered")
		return
	} else if !errors.Is(err, ErrNotFound) {
		response.Internal(c, "failed to check email")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "failed to hash password")
		return
	}

	user, err := h.repo.Create(c.Request.Context(), email, hash, req.FullName, role)
	if err != nil {
		response.Internal(c, "failed to create user")
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email, string(user.Role), false)
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}

	h.logger.Info("user registered", zap.String("user_id", user.ID.String()), zap.String("role", string(role)))
	response.Created(c, TokenResponse{Token: token, User: user.ToPublic()})
}

// OrganizerSignup handles POST /auth/organizer/signup. Creates the account
// and its company profile together; the profile starts unverified.
func (h *Handler) OrganizerSignup(c *gin.Context) {
	var req OrganizerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err)
		return
	}

	businessType, err := models.ParseBusinessType(req.BusinessType)
	if err != nil {
		response.ValidationFailed(c, []response.FieldError{{Param: "business_type", Msg: "must be one of pt, cv, firma, koperasi, individual, other"}})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := h.repo.GetByEmail(c.Request.Context(), email); err == nil {
		response.BadRequest(c, "email already registered")
		return
	} else if !errors.Is(err, ErrNotFound) {
		response.Internal(c, "failed to check email")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "failed to hash password")
		return
	}

	profile := &models.OrganizerProfile{
		Name:               req.FullName,
		Position:           req.Position,
		Bio:                req.Bio,
		CompanyName:        req.CompanyName,
		RegistrationNumber: req.RegistrationNumber,
		BusinessType:       businessType,
		Address:            req.Address,
		Phone:              req.Phone,
		Website:            req.Website,
	}
	user, err := h.repo.CreateOrganizer(c.Request.Context(), email, hash, req.FullName, profile)
	if err != nil {
		response.Internal(c, "failed to create organizer")
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email, string(user.Role), false)
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}

	h.logger.Info("organizer registered", zap.String("user_id", user.ID.String()), zap.String("company", req.CompanyName))
	response.Created(c, TokenResponse{Token: token, User: user.ToPublic()})
}
