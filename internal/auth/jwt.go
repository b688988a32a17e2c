package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Claims holds JWT claims including user ID and role.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles token generation and validation. Two lifetimes are
// supported: the session default, and the longer remember-me lifetime chosen
// at sign-in.
type JWTService struct {
	secret        []byte
	sessionHours  int
	rememberHours int
}

// NewJWTService creates a JWT service.
func NewJWTService(secret string, sessionHours, rememberHours int) *JWTService {
	return &JWTService{
		secret:        []byte(secret),
		sessionHours:  sessionHours,
		rememberHours: rememberHours,
	}
}

// Generate creates a new JWT for the user. remember selects the long-lived
// expiry instead of the session default.
func (s *JWTService) Generate(userID uuid.UUID, email, role string, remember bool) (string, error) {
	hours := s.sessionHours
	if remember {
		hours = s.rememberHours
	}
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(hours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and validates a JWT, returning claims or error.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
