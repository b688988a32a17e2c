package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", 12, 720)
	userID := uuid.New()

	token, err := svc.Generate(userID, "maya@example.com", "organizer", false)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "maya@example.com", claims.Email)
	assert.Equal(t, "organizer", claims.Role)
}

func TestRememberExtendsExpiry(t *testing.T) {
	svc := NewJWTService("test-secret", 12, 720)
	userID := uuid.New()

	short, err := svc.Generate(userID, "a@example.com", "user", false)
	require.NoError(t, err)
	long, err := svc.Generate(userID, "a@example.com", "user", true)
	require.NoError(t, err)

	shortClaims, err := svc.Validate(short)
	require.NoError(t, err)
	longClaims, err := svc.Validate(long)
	require.NoError(t, err)

	diff := longClaims.ExpiresAt.Sub(shortClaims.ExpiresAt.Time)
	assert.InDelta(t, (720-12)*time.Hour, diff, float64(time.Minute))
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", 12, 720)
	other := NewJWTService("secret-b", 12, 720)

	token, err := svc.Generate(uuid.New(), "a@example.com", "admin", false)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 12, 720)
	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
