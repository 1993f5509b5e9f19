// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	authEventSignup         = "signup"
	authEventLogin          = "login"
	authEventLogout         = "logout"
	authEventRefresh        = "refresh"
	authEventForgotPassword = "forgot_password"
	authEventResetPassword  = "reset_password"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo          repository.UserRepository
	sessionRepo       repository.SessionRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	codeGenerator     service.CodeGenerator
	mailer            service.Mailer
	metrics           service.MetricsRecorder
	clientURL         string
	resetTokenTTL     time.Duration
	minPasswordLength int
	allowRoleOnSignup bool
	logger            *slog.Logger
	now               func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	SessionRepo   repository.SessionRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	CodeGenerator service.CodeGenerator
	Mailer        service.Mailer
	Metrics       service.MetricsRecorder
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		userRepo:      params.UserRepo,
		sessionRepo:   params.SessionRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		codeGenerator: params.CodeGenerator,
		mailer:        params.Mailer,
		metrics:       params.Metrics,
		logger:        params.Logger,
		now:           time.Now,
	}

	if params.Config != nil {
		if params.Config.Auth != nil {
			srv.resetTokenTTL = params.Config.Auth.ResetTokenTTL
			srv.minPasswordLength = params.Config.Auth.MinPasswordLength
			srv.allowRoleOnSignup = params.Config.Auth.AllowRoleOnSignup
		}
		if params.Config.Client != nil {
			srv.clientURL = params.Config.Client.URL
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a customer account and starts its first session.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	output, err := srv.signup(ctx, input, email)
	srv.recordAuthEvent(authEventSignup, err)
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", output.User.ID))

	return output, nil
}

func (srv *authService) signup(ctx context.Context, input *usecase.SignupInput, email string) (*usecase.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || email == "" || phone == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name, email, phone and password are required"))
	}
	if err := srv.validatePassword(input.Password); err != nil {
		return nil, err
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "failed to hash password")
	}

	role := entity.RoleCustomer
	if srv.allowRoleOnSignup {
		role = entity.RoleOrDefault(input.Role)
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         role,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	tokens, err := srv.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{User: user, Tokens: tokens}, nil
}

// Login verifies credentials and replaces the user's refresh token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	output, err := srv.login(ctx, email, input.Password)
	srv.recordAuthEvent(authEventLogin, err)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", output.User.ID))

	return output, nil
}

func (srv *authService) login(ctx context.Context, email, password string) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Same error as an unknown email so callers cannot probe for accounts.
	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	tokens, err := srv.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{User: user, Tokens: tokens}, nil
}

// Logout revokes the stored refresh token. Invalid or missing tokens are ignored.
func (srv *authService) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Logout with invalid refresh token", slog.Any("error", err))

		return
	}

	err = srv.sessionRepo.DeleteRefreshToken(ctx, claims.UserID)
	srv.recordAuthEvent(authEventLogout, err)
	if err != nil {
		srv.log(ctx).Warn("Failed to revoke refresh token", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("User logged out", slog.Any("userID", claims.UserID))
}

// RefreshToken mints a new access token when refreshToken is the one on record.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	accessToken, err := srv.refresh(ctx, refreshToken)
	srv.recordAuthEvent(authEventRefresh, err)
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return "", err
	}

	return accessToken, nil
}

func (srv *authService) refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", errors.WithStack(domainerrors.ErrRefreshTokenMissing)
	}

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrRefreshTokenInvalid.WithDetails(err.Error()), "failed to validate refresh token")
	}

	stored, err := srv.sessionRepo.GetRefreshToken(ctx, claims.UserID)
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return "", errors.WithStack(domainerrors.ErrRefreshTokenRevoked)
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load stored refresh token")
	}
	if stored != refreshToken {
		return "", errors.WithStack(domainerrors.ErrRefreshTokenRevoked)
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(claims.UserID)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	return accessToken, nil
}

// Profile returns the public fields of the signed-in user.
func (srv *authService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ForgotPassword stores a one-hour reset grant and emails its link.
// Unknown emails yield ErrEmailNotFound, which the storefront relies on.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)

	err := srv.forgotPassword(ctx, email)
	srv.recordAuthEvent(authEventForgotPassword, err)
	if err != nil {
		srv.log(ctx).Warn("Forgot password failed", slog.String("email", email), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset email sent", slog.String("email", email))

	return nil
}

func (srv *authService) forgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.WithStack(domainerrors.ErrEmailNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by email")
	}

	token, err := srv.codeGenerator.ResetToken()
	if err != nil {
		return errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to generate reset token")
	}

	grant := &entity.PasswordResetGrant{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: srv.now().Add(srv.resetTokenTTL),
	}
	if err := srv.sessionRepo.SaveResetGrant(ctx, grant, srv.resetTokenTTL); err != nil {
		return errors.Wrap(err, "failed to save reset grant")
	}

	mail := &service.PasswordResetMail{
		To:       user.Email,
		Name:     user.Name,
		ResetURL: srv.clientURL + "/reset-password?token=" + url.QueryEscape(token),
	}
	if err := srv.mailer.SendPasswordReset(ctx, mail); err != nil {
		return errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to send password reset email")
	}

	return nil
}

// ResetPassword redeems a reset grant, replaces the password and starts a new session.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (*usecase.AuthOutput, error) {
	output, err := srv.resetPassword(ctx, input)
	srv.recordAuthEvent(authEventResetPassword, err)
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Password reset", slog.Any("userID", output.User.ID))

	return output, nil
}

func (srv *authService) resetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (*usecase.AuthOutput, error) {
	if input.Token == "" {
		return nil, errors.WithStack(domainerrors.ErrResetTokenInvalid)
	}

	grant, err := srv.sessionRepo.GetResetGrant(ctx, input.Token)
	if errors.Is(err, repository.ErrResetGrantNotFound) {
		return nil, errors.WithStack(domainerrors.ErrResetTokenInvalid)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reset grant")
	}

	if grant.IsExpired(srv.now()) {
		if err := srv.sessionRepo.DeleteResetGrant(ctx, input.Token); err != nil {
			srv.log(ctx).Warn("Failed to delete expired reset grant", slog.Any("error", err))
		}

		return nil, errors.WithStack(domainerrors.ErrResetTokenExpired)
	}

	if err := srv.validatePassword(input.NewPassword); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, grant.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrResetTokenInvalid)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if err := srv.sessionRepo.DeleteRefreshToken(ctx, user.ID); err != nil {
		return nil, errors.Wrap(err, "failed to revoke refresh token")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "failed to hash password")
	}
	if err := srv.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return nil, errors.Wrap(err, "failed to update password")
	}
	user.PasswordHash = hash

	tokens, err := srv.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if err := srv.sessionRepo.DeleteResetGrant(ctx, input.Token); err != nil {
		return nil, errors.Wrap(err, "failed to delete reset grant")
	}

	return &usecase.AuthOutput{User: user, Tokens: tokens}, nil
}

// issueSession signs a new pair and records its refresh token as the only valid one.
func (srv *authService) issueSession(ctx context.Context, userID uuid.UUID) (*entity.TokenPair, error) {
	tokens, err := srv.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.sessionRepo.StoreRefreshToken(ctx, userID, tokens.RefreshToken, srv.tokenService.RefreshTokenTTL()); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return tokens, nil
}

func (srv *authService) validatePassword(password string) error {
	if utf8.RuneCountInString(password) < srv.minPasswordLength {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("password is too short"))
	}

	return nil
}

func (srv *authService) recordAuthEvent(event string, err error) {
	outcome := service.OutcomeSuccess
	if err != nil {
		outcome = service.OutcomeFailure
	}
	srv.metrics.AuthEvent(event, outcome)
}
