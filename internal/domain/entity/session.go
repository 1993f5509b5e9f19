package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenPair is the credential pair handed to a client after signup, login or
// password reset.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// PasswordResetGrant is a single-use authorization to replace a user's password.
type PasswordResetGrant struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// IsExpired reports whether the grant can no longer be redeemed at now.
func (g *PasswordResetGrant) IsExpired(now time.Time) bool {
	return !now.Before(g.ExpiresAt)
}
