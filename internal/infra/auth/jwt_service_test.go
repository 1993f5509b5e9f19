package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtSvc := newTestJWTService(t)
	userID := uuid.New()

	pair, err := jwtSvc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	accessClaims, err := jwtSvc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtSvc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TokensAreNotInterchangeable(t *testing.T) {
	jwtSvc := newTestJWTService(t)

	pair, err := jwtSvc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = jwtSvc.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)

	_, err = jwtSvc.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_SameSecondTokensDiffer(t *testing.T) {
	jwtSvc := newTestJWTService(t)
	fixed := time.Now()
	jwtSvc.now = func() time.Time { return fixed }
	userID := uuid.New()

	first, err := jwtSvc.GenerateTokens(userID)
	require.NoError(t, err)
	second, err := jwtSvc.GenerateTokens(userID)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtSvc := newTestJWTService(t)
	jwtSvc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := jwtSvc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	jwtSvc.now = time.Now
	claims, err := jwtSvc.ValidateAccessToken(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsNonHMAC(t *testing.T) {
	jwtSvc := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtSvc.ValidateAccessToken(signed)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtSvc := newTestJWTService(t)

	claims, err := jwtSvc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_SecretsValidation(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.ErrorContains(t, err, "jwt secrets must be provided")

	cfg := newTestJWTConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewJWTService(cfg)
	assert.ErrorContains(t, err, "must differ")
}

func TestJWTService_TTLs(t *testing.T) {
	jwtSvc := newTestJWTService(t)
	assert.Equal(t, 15*time.Minute, jwtSvc.AccessTokenTTL())
	assert.Equal(t, 7*24*time.Hour, jwtSvc.RefreshTokenTTL())

	cfg := newTestJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}
	custom, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, custom.AccessTokenTTL())
	assert.Equal(t, time.Hour, custom.RefreshTokenTTL())
}
