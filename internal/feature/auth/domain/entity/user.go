// Package entity defines the domain entities for the auth feature.
package entity

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	// RoleAdmin may curate categories, courses and videos.
	RoleAdmin Role = "admin"
	// RoleStudent is the default role ("aluno").
	RoleStudent Role = "aluno"
)

// ErrInvalidRole is returned by ParseRole for any value outside the enum.
var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts raw input into a Role.
// An empty value defaults to RoleStudent.
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case "":
		return RoleStudent, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStudent:
		return RoleStudent, nil
	}
	return "", ErrInvalidRole
}

// IsAdmin reports whether r grants catalog write access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents a registered user in the system.
// Courses reference users through their teacher id.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the display name shown as a course's teacher.
	Username string `gorm:"size:120;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:120;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role is re-read on every authorized request, never cached in tokens.
	Role Role `gorm:"size:5;not null;default:aluno"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
