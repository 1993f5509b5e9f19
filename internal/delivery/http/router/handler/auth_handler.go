// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC       usecase.AuthUsecase
	ProfileUC    usecase.ProfileUsecase
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthHandler serves the /api/auth routes.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	profileUC usecase.ProfileUsecase
	cookies   cookieWriter
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		profileUC: params.ProfileUC,
		cookies: cookieWriter{
			secure:     params.Config.IsProduction(),
			accessTTL:  params.TokenService.AccessTokenTTL(),
			refreshTTL: params.TokenService.RefreshTokenTTL(),
		},
		logger: params.Logger,
	}
}

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Phone    string      `json:"phone" validate:"required"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the body of PUT /api/auth/reset-password.
type ResetPasswordRequest struct {
	ResetToken  string `json:"resetToken" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UpdateProfileRequest is the body of PUT /api/auth/update-user-profile.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// UserProfileResponse is the account page payload.
type UserProfileResponse struct {
	User   *UserResponse   `json:"user"`
	Orders []OrderResponse `json:"orders"`
}

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	return errors.WithStack(c.Validate(req))
}

// Signup creates an account and starts its session.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	h.cookies.setTokens(c, output.Tokens)

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login verifies credentials and sets the session cookies.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	h.cookies.setTokens(c, output.Tokens)

	return response.OK(c, toUserResponse(output.User), "Login successful")
}

// Logout revokes the refresh token and clears both cookies. It always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.authUC.Logout(c.Request().Context(), cookieValue(c, middleware.RefreshTokenCookie))
	h.cookies.clear(c)

	return response.OK(c, nil, "Logged out successfully")
}

// RefreshToken replaces the access cookie using the refresh cookie.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	accessToken, err := h.authUC.RefreshToken(c.Request().Context(), cookieValue(c, middleware.RefreshTokenCookie))
	if err != nil {
		return errors.WithStack(err)
	}
	h.cookies.setAccess(c, accessToken)

	return response.OK(c, nil, "Token refreshed successfully")
}

// Profile returns the signed-in user.
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	user, err := h.authUC.Profile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toUserResponse(user), "Profile retrieved successfully")
}

// ForgotPassword emails a reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Password reset email sent")
}

// ResetPassword redeems a reset token and signs the user in.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.ResetToken,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	h.cookies.setTokens(c, output.Tokens)

	return response.OK(c, toUserResponse(output.User), "Password reset successful")
}

// GetUserProfile returns the user with their order history.
func (h *AuthHandler) GetUserProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	output, err := h.profileUC.GetUserProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &UserProfileResponse{
		User:   toUserResponse(output.User),
		Orders: toOrderResponses(output.Orders),
	}, "User profile retrieved successfully")
}

// UpdateUserProfile replaces the contact fields of the signed-in user.
func (h *AuthHandler) UpdateUserProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateUserProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toUserResponse(user), "User profile updated successfully")
}
