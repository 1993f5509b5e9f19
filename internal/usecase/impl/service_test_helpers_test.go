package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
)

const testClientURL = "http://localhost:5173"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			AccessTokenTTL:    15 * time.Minute,
			RefreshTokenTTL:   7 * 24 * time.Hour,
			ResetTokenTTL:     time.Hour,
			MinPasswordLength: 6,
		},
		Client: &config.ClientConfig{URL: testClientURL},
		Checkout: &config.CheckoutConfig{
			LoyaltyThresholdCents:  20000,
			LoyaltyDiscountPercent: 10,
			LoyaltyValidDays:       30,
		},
	}
}

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
