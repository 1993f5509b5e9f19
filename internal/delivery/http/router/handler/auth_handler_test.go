package handler

import (
	"net/http"
	"testing"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthHandler(t *testing.T) (*testEnv, *mockUC.MockAuthUsecase, *mockUC.MockProfileUsecase) {
	t.Helper()

	env := newTestEnv(t)
	authUC := mockUC.NewMockAuthUsecase(t)
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC:       authUC,
		ProfileUC:    profileUC,
		TokenService: env.tokenSvc,
		Config:       env.config(),
		Logger:       env.logger,
	})

	g := env.e.Group("/api/auth")
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.POST("/refresh-token", h.RefreshToken)
	g.POST("/forgot-password", h.ForgotPassword)
	g.PUT("/reset-password", h.ResetPassword)
	g.GET("/profile", h.Profile, env.auth.Authenticate)
	g.GET("/user-profile", h.GetUserProfile, env.auth.Authenticate)
	g.PUT("/update-user-profile", h.UpdateUserProfile, env.auth.Authenticate)

	return env, authUC, profileUC
}

func TestAuthHandler_SignupSetsSessionCookies(t *testing.T) {
	env, authUC, _ := setupAuthHandler(t)

	authUC.EXPECT().Signup(mock.Anything, &usecase.SignupInput{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "555-0100",
		Password: "secret1",
	}).Return(&usecase.AuthOutput{
		User:   env.user,
		Tokens: &entity.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"},
	}, nil)

	rec := env.do(http.MethodPost, "/api/auth/signup",
		`{"name":"Ada Lovelace","email":"ada@example.com","phone":"555-0100","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeResponse(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "ada@example.com", dataMap(t, body)["email"])
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	cookies := responseCookies(rec)
	require.Contains(t, cookies, middleware.AccessTokenCookie)
	require.Contains(t, cookies, middleware.RefreshTokenCookie)
	assert.Equal(t, "access-1", cookies[middleware.AccessTokenCookie].Value)
	assert.Equal(t, "refresh-1", cookies[middleware.RefreshTokenCookie].Value)
	for _, cookie := range cookies {
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.Equal(t, "/", cookie.Path)
		assert.False(t, cookie.Secure)
	}
	assert.Equal(t, 15*60, cookies[middleware.AccessTokenCookie].MaxAge)
	assert.Equal(t, 7*24*60*60, cookies[middleware.RefreshTokenCookie].MaxAge)
}

func TestAuthHandler_SignupValidation(t *testing.T) {
	env, _, _ := setupAuthHandler(t)

	rec := env.do(http.MethodPost, "/api/auth/signup", `{"name":"","email":"not-an-email","phone":"1","password":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Details, "name is required")
	assert.Contains(t, body.Error.Details, "email must be a valid email")
	assert.Empty(t, responseCookies(rec))
}

func TestAuthHandler_SignupDuplicateEmail(t *testing.T) {
	env, authUC, _ := setupAuthHandler(t)

	authUC.EXPECT().Signup(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrUserAlreadyExists))

	rec := env.do(http.MethodPost, "/api/auth/signup",
		`{"name":"Ada","email":"ada@example.com","phone":"555","password":"secret1"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decodeResponse(t, rec).Error.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env, authUC, _ := setupAuthHandler(t)

		authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "secret1"}).
			Return(&usecase.AuthOutput{
				User:   env.user,
				Tokens: &entity.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"},
			}, nil)

		rec := env.do(http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"secret1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Login successful", decodeResponse(t, rec).Message)
		cookies := responseCookies(rec)
		assert.Equal(t, "access-2", cookies[middleware.AccessTokenCookie].Value)
		assert.Equal(t, "refresh-2", cookies[middleware.RefreshTokenCookie].Value)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		env, authUC, _ := setupAuthHandler(t)

		authUC.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

		rec := env.do(http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeResponse(t, rec).Error.Code)
		assert.Empty(t, responseCookies(rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		env, _, _ := setupAuthHandler(t)

		rec := env.do(http.MethodPost, "/api/auth/login", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeResponse(t, rec).Error.Code)
	})
}

func TestAuthHandler_LogoutClearsCookies(t *testing.T) {
	env, authUC, _ := setupAuthHandler(t)

	authUC.EXPECT().Logout(mock.Anything, "refresh-3").Return()

	rec := env.do(http.MethodPost, "/api/auth/logout", "",
		&http.Cookie{Name: middleware.RefreshTokenCookie, Value: "refresh-3"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decodeResponse(t, rec).Message)
	cookies := responseCookies(rec)
	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		require.Contains(t, cookies, name)
		assert.Empty(t, cookies[name].Value)
		assert.Equal(t, -1, cookies[name].MaxAge)
	}
}

func TestAuthHandler_LogoutWithoutCookieStillSucceeds(t *testing.T) {
	env, authUC, _ := setupAuthHandler(t)

	authUC.EXPECT().Logout(mock.Anything, "").Return()

	rec := env.do(http.MethodPost, "/api/auth/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Run("replaces only the access cookie", func(t *testing.T) {
		env, authUC, _ := setupAuthHandler(t)

		authUC.EXPECT().RefreshToken(mock.Anything, "refresh-4").Return("access-4", nil)

		rec := env.do(http.MethodPost, "/api/auth/refresh-token", "",
			&http.Cookie{Name: middleware.RefreshTokenCookie, Value: "refresh-4"})

		assert.Equal(t, http.StatusOK, rec.Code)
		cookies := responseCookies(rec)
		assert.Equal(t, "access-4", cookies[middleware.AccessTokenCookie].Value)
		assert.NotContains(t, cookies, middleware.RefreshTokenCookie)
	})

	t.Run("missing cookie", func(t *testing.T) {
		env, authUC, _ := setupAuthHandler(t)

		authUC.EXPECT().RefreshToken(mock.Anything, "").
			Return("", errors.WithStack(domainerrors.ErrRefreshTokenMissing))

		rec := env.do(http.MethodPost, "/api/auth/refresh-token", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "REFRESH_TOKEN_MISSING", decodeResponse(t, rec).Error.Code)
	})
}

func TestAuthHandler_Profile(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		env, authUC, _ := setupAuthHandler(t)

		authUC.EXPECT().Profile(mock.Anything, env.user.ID).Return(env.user, nil)

		rec := env.doAuthed(http.MethodGet, "/api/auth/profile", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, decodeResponse(t, rec))
		assert.Equal(t, env.user.ID.String(), data["id"])
		assert.Equal(t, "customer", data["role"])
	})

	t.Run("no cookie", func(t *testing.T) {
		env, _, _ := setupAuthHandler(t)

		rec := env.do(http.MethodGet, "/api/auth/profile", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "ACCESS_TOKEN_MISSING", decodeResponse(t, rec).Error.Code)
	})

	t.Run("invalid cookie", func(t *testing.T) {
		env, _, _ := setupAuthHandler(t)

		rec := env.do(http.MethodGet, "/api/auth/profile", "",
			&http.Cookie{Name: middleware.AccessTokenCookie, Value: "forged"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "ACCESS_TOKEN_INVALID", decodeResponse(t, rec).Error.Code)
	})
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	env, authUC, _ := setupAuthHandler(t)

	authUC.EXPECT().ForgotPassword(mock.Anything, "ada@example.com").Return(nil)

	rec := env.do(http.MethodPost, "/api/auth/forgot-password", `{"email":"ada@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password reset email sent", decodeResponse(t, rec).Message)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	t.Run("signs the user in", func(t *testing.T) {
		env, authUC, _ := setupAuthHandler(t)

		authUC.EXPECT().ResetPassword(mock.Anything, &usecase.ResetPasswordInput{Token: "reset-1", NewPassword: "newsecret"}).
			Return(&usecase.AuthOutput{
				User:   env.user,
				Tokens: &entity.TokenPair{AccessToken: "access-5", RefreshToken: "refresh-5"},
			}, nil)

		rec := env.do(http.MethodPut, "/api/auth/reset-password", `{"resetToken":"reset-1","newPassword":"newsecret"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "access-5", responseCookies(rec)[middleware.AccessTokenCookie].Value)
	})

	t.Run("expired token", func(t *testing.T) {
		env, authUC, _ := setupAuthHandler(t)

		authUC.EXPECT().ResetPassword(mock.Anything, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrResetTokenExpired))

		rec := env.do(http.MethodPut, "/api/auth/reset-password", `{"resetToken":"old","newPassword":"newsecret"}`)

		assert.Equal(t, "RESET_TOKEN_EXPIRED", decodeResponse(t, rec).Error.Code)
		assert.Empty(t, responseCookies(rec))
	})
}

func TestAuthHandler_GetUserProfile(t *testing.T) {
	env, _, profileUC := setupAuthHandler(t)

	profileUC.EXPECT().GetUserProfile(mock.Anything, env.user.ID).Return(&usecase.UserProfileOutput{
		User: env.user,
		Orders: []*entity.Order{{
			TotalCents: 12345,
			Status:     entity.OrderStatusDelivered,
			Items:      []*entity.OrderItem{{ProductID: 7, Quantity: 2, UnitPriceCents: 500}},
		}},
	}, nil)

	rec := env.doAuthed(http.MethodGet, "/api/auth/user-profile", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := dataMap(t, decodeResponse(t, rec))
	orders, ok := data["orders"].([]any)
	require.True(t, ok)
	require.Len(t, orders, 1)
	order := orders[0].(map[string]any)
	assert.InDelta(t, 123.45, order["totalAmount"], 0.0001)
	items := order["items"].([]any)
	assert.InDelta(t, 5.0, items[0].(map[string]any)["price"], 0.0001)
}

func TestAuthHandler_UpdateUserProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env, _, profileUC := setupAuthHandler(t)

		updated := *env.user
		updated.Name = "Ada King"
		profileUC.EXPECT().UpdateUserProfile(mock.Anything, &usecase.UpdateProfileInput{
			UserID: env.user.ID,
			Name:   "Ada King",
			Email:  "ada@example.com",
			Phone:  "555-0199",
		}).Return(&updated, nil)

		rec := env.doAuthed(http.MethodPut, "/api/auth/update-user-profile",
			`{"name":"Ada King","email":"ada@example.com","phone":"555-0199"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Ada King", dataMap(t, decodeResponse(t, rec))["name"])
	})

	t.Run("missing phone", func(t *testing.T) {
		env, _, _ := setupAuthHandler(t)

		rec := env.doAuthed(http.MethodPut, "/api/auth/update-user-profile",
			`{"name":"Ada King","email":"ada@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeResponse(t, rec).Error.Details, "phone is required")
	})
}
