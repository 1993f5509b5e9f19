package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: production
  serviceName: storefront
http:
  port: 5000
secretKey:
  access: a
  refresh: r
stripe:
  currency: usd
client:
  url: https://shop.example.com/
auth:
  minPasswordLength: 8
`

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("STRIPE_CURRENCY", "eur")
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "eur", cfg.Stripe.Currency)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "a", cfg.SecretKey.Access)
	assert.True(t, cfg.IsProduction())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Client: &ClientConfig{URL: "https://shop.example.com/"},
		Auth:   &AuthConfig{MinPasswordLength: 8},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 8, cfg.Auth.MinPasswordLength)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, time.Hour, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, "https://shop.example.com", cfg.Client.URL)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, int64(20000), cfg.Checkout.LoyaltyThresholdCents)
	assert.Equal(t, 10, cfg.Checkout.LoyaltyDiscountPercent)
	assert.Equal(t, 30, cfg.Checkout.LoyaltyValidDays)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Nil(t, cfg.Metrics)
}
