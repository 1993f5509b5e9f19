package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies session credentials. Implementations are
// pure and never touch storage.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token for the user.
	GenerateTokens(userID uuid.UUID) (*entity.TokenPair, error)

	// GenerateAccessToken creates a new access token only.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken verifies signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies signature, expiry and type of a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the lifetime of access tokens.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the lifetime of refresh tokens.
	RefreshTokenTTL() time.Duration
}
