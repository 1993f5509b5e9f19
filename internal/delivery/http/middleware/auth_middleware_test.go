package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(cookie *http.Cookie) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleCustomer}

	t.Run("loads the caller", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: user.ID}, nil)
		userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, UserRepo: userRepo, Logger: newDiscardLogger()})
		c := newAuthContext(&http.Cookie{Name: AccessTokenCookie, Value: "good"})

		var called bool
		err := m.Authenticate(func(c echo.Context) error {
			called = true
			id, ok := GetUserID(c)
			assert.True(t, ok)
			assert.Equal(t, user.ID, id)
			got, ok := GetUser(c)
			assert.True(t, ok)
			assert.Same(t, user, got)
			ctxID, ok := deliverycontext.GetUserIDFromContext(c.Request().Context())
			assert.True(t, ok)
			assert.Equal(t, user.ID, ctxID)

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	tests := []struct {
		name    string
		cookie  *http.Cookie
		setup   func(tokenSvc *mockSvc.MockTokenService, userRepo *mockRepo.MockUserRepository)
		wantErr error
	}{
		{
			name:    "missing cookie",
			wantErr: domainerrors.ErrAccessTokenMissing,
		},
		{
			name:    "empty cookie",
			cookie:  &http.Cookie{Name: AccessTokenCookie, Value: ""},
			wantErr: domainerrors.ErrAccessTokenMissing,
		},
		{
			name:   "rejected token",
			cookie: &http.Cookie{Name: AccessTokenCookie, Value: "expired"},
			setup: func(tokenSvc *mockSvc.MockTokenService, _ *mockRepo.MockUserRepository) {
				tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantErr: domainerrors.ErrAccessTokenInvalid,
		},
		{
			name:   "deleted user",
			cookie: &http.Cookie{Name: AccessTokenCookie, Value: "orphan"},
			setup: func(tokenSvc *mockSvc.MockTokenService, userRepo *mockRepo.MockUserRepository) {
				tokenSvc.EXPECT().ValidateAccessToken("orphan").Return(&service.Claims{UserID: user.ID}, nil)
				userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrAccessTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			if tt.setup != nil {
				tt.setup(tokenSvc, userRepo)
			}

			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, UserRepo: userRepo, Logger: newDiscardLogger()})
			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next must not run")

				return nil
			})(newAuthContext(tt.cookie))

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("repository failure is not an auth error", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: user.ID}, nil)
		userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(nil, errors.New("connection refused"))

		m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, UserRepo: userRepo, Logger: newDiscardLogger()})
		err := m.Authenticate(func(echo.Context) error { return nil })(newAuthContext(&http.Cookie{Name: AccessTokenCookie, Value: "good"}))

		require.Error(t, err)
		var appErr domainerrors.AppError
		assert.False(t, errors.As(err, &appErr))
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{Logger: newDiscardLogger()})
	handler := m.RequireRole(entity.RoleAdmin)(func(echo.Context) error { return nil })

	tests := []struct {
		name    string
		user    *entity.User
		wantErr bool
	}{
		{name: "admin passes", user: &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}},
		{name: "customer rejected", user: &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}, wantErr: true},
		{name: "anonymous rejected", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newAuthContext(nil)
			if tt.user != nil {
				c.Set(contextKeyUser, tt.user)
			}

			err := handler(c)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
