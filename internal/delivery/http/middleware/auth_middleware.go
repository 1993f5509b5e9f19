package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// Cookie names carrying the session credentials.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

const (
	contextKeyUserID = "userID"
	contextKeyUser   = "user"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// AuthMiddleware authenticates requests from the access token cookie.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// Authenticate validates the access token cookie and loads the caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(AccessTokenCookie)
		if err != nil || cookie.Value == "" {
			return errors.WithStack(domainerrors.ErrAccessTokenMissing)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(cookie.Value)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Access token rejected", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrAccessTokenInvalid.WithDetails("user not found"))
		}
		if err != nil {
			return errors.Wrap(err, "failed to load authenticated user")
		}

		c.Set(contextKeyUserID, user.ID)
		c.Set(contextKeyUser, user)
		slogecho.AddCustomAttributes(c, slog.String("user_id", user.ID.String()))

		ctx := deliverycontext.WithUserID(c.Request().Context(), user.ID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole rejects callers without the given role. It must run after Authenticate.
// No route mounts it yet; it guards admin routes.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := GetUser(c)
			if !ok || user.Role != role {
				return errors.WithStack(domainerrors.ErrForbidden.WithDetails("requires " + role.String() + " role"))
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetUser returns the authenticated user set by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}
