package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventra/backend/internal/auth"
)

func jwtRouter(svc *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWT(svc), func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		c.String(http.StatusOK, role)
	})
	return r
}

func TestJWTMissingHeader(t *testing.T) {
	r := jwtRouter(auth.NewJWTService("test-secret", 12, 720))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTBadScheme(t *testing.T) {
	r := jwtRouter(auth.NewJWTService("test-secret", 12, 720))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTInvalidToken(t *testing.T) {
	r := jwtRouter(auth.NewJWTService("test-secret", 12, 720))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer nope")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTValidTokenSetsClaims(t *testing.T) {
	svc := auth.NewJWTService("test-secret", 12, 720)
	token, err := svc.Generate(uuid.New(), "maya@example.com", "organizer", false)
	require.NoError(t, err)

	r := jwtRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "organizer", w.Body.String())
}
