package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role represents user role in the platform. The set is closed; every
// authorization check switches exhaustively over it.
type Role string

const (
	RoleUser          Role = "user"
	RoleOrganizer     Role = "organizer"
	RoleAdmin         Role = "admin"
	RoleDoctor        Role = "doctor"
	RolePropertyOwner Role = "property_owner"
)

// ParseRole validates a role string against the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleOrganizer, RoleAdmin, RoleDoctor, RolePropertyOwner:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User represents a platform user.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPublic is User without sensitive fields for API responses.
type UserPublic struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPublic converts User to UserPublic.
func (u *User) ToPublic() UserPublic {
	return UserPublic{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
