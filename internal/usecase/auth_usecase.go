// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     entity.Role // Ignored unless auth.allowRoleOnSignup is set.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput carries a reset token and the replacement password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput is returned by every flow that issues a fresh session pair.
type AuthOutput struct {
	User   *entity.User
	Tokens *entity.TokenPair
}

// AuthUsecase defines the session lifecycle: signup, login, refresh, logout and password reset.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout revokes the stored refresh token when refreshToken is valid. It never fails.
	Logout(ctx context.Context, refreshToken string)

	// RefreshToken mints a new access token for a refresh token that matches the registry.
	RefreshToken(ctx context.Context, refreshToken string) (string, error)

	Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) (*AuthOutput, error)
}
