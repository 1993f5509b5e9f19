package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validAccessToken = "valid-access-token"

// testEnv is an echo instance wired with the production error handler,
// validator and cookie authentication for one signed-in user.
type testEnv struct {
	e        *echo.Echo
	auth     *middleware.AuthMiddleware
	tokenSvc *mockSvc.MockTokenService
	user     *entity.User
	logger   *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	user := &entity.User{
		ID:        uuid.New(),
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Role:      entity.RoleCustomer,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken(validAccessToken).
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeAccess}, nil).Maybe()
	tokenSvc.EXPECT().ValidateAccessToken(mock.MatchedBy(func(token string) bool { return token != validAccessToken })).
		Return(nil, errors.New("token is malformed")).Maybe()
	tokenSvc.EXPECT().AccessTokenTTL().Return(15 * time.Minute).Maybe()
	tokenSvc.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour).Maybe()

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return &testEnv{
		e: e,
		auth: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: tokenSvc,
			UserRepo:     userRepo,
			Logger:       logger,
		}),
		tokenSvc: tokenSvc,
		user:     user,
		logger:   logger,
	}
}

func (env *testEnv) config() *config.Config {
	return &config.Config{}
}

// do serves a request through the echo instance. A non-empty body is sent as JSON.
func (env *testEnv) do(method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	return rec
}

// doAuthed is do with a valid access cookie.
func (env *testEnv) doAuthed(method, target, body string) *httptest.ResponseRecorder {
	return env.do(method, target, body, &http.Cookie{Name: middleware.AccessTokenCookie, Value: validAccessToken})
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func dataMap(t *testing.T, body response.Response) map[string]any {
	t.Helper()

	data, ok := body.Data.(map[string]any)
	require.True(t, ok, "data should be an object, got %T", body.Data)

	return data
}

func responseCookies(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie)
	for _, cookie := range rec.Result().Cookies() {
		out[cookie.Name] = cookie
	}

	return out
}
