package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is a percentage discount granted to one user.
type Coupon struct {
	ID                 uuid.UUID
	Code               string
	UserID             uuid.UUID
	DiscountPercentage int
	ExpiresAt          time.Time
	UsageLimit         int
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsExpired reports whether the coupon's expiry has passed at now.
func (c *Coupon) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// ApplyTo returns totalCents reduced by the coupon percentage, rounded to the
// nearest cent.
func (c *Coupon) ApplyTo(totalCents int64) int64 {
	return totalCents - PercentOf(totalCents, c.DiscountPercentage)
}

// PercentOf returns round(amount * pct / 100) using half-up rounding.
func PercentOf(amount int64, pct int) int64 {
	return (amount*int64(pct) + 50) / 100
}
