package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrRefreshTokenNotFound is returned when the user has no stored refresh token.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")

	// ErrResetGrantNotFound is returned when a password reset token is unknown.
	ErrResetGrantNotFound = errors.New("password reset grant not found")
)

// SessionRepository is the key-value registry of refresh tokens and password
// reset grants. Each user has at most one stored refresh token; storing a new
// one replaces the previous value.
type SessionRepository interface {
	// StoreRefreshToken records token as the only valid refresh token of the user.
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error

	// GetRefreshToken returns the user's stored refresh token.
	GetRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)

	// DeleteRefreshToken removes the user's stored refresh token. Missing keys are ignored.
	DeleteRefreshToken(ctx context.Context, userID uuid.UUID) error

	// SaveResetGrant stores a password reset grant keyed by its token.
	SaveResetGrant(ctx context.Context, grant *entity.PasswordResetGrant, ttl time.Duration) error

	// GetResetGrant returns the grant stored under token.
	GetResetGrant(ctx context.Context, token string) (*entity.PasswordResetGrant, error)

	// DeleteResetGrant removes the grant stored under token. Missing keys are ignored.
	DeleteResetGrant(ctx context.Context, token string) error
}
