// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the identity a shopper or administrator signs in with.
type User struct {
	ID           uuid.UUID // Immutable identifier, assigned by the database.
	Name         string    // Display name.
	Email        string    // Normalized login email. Unique across users.
	Phone        string    // Contact phone number.
	PasswordHash string    // bcrypt hash. Never leaves the service.
	Role         Role      // Authorization role.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail lower-cases and trims an email address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
