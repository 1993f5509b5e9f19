package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCouponNotFound is returned when no matching coupon exists.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository persists per-user discount grants.
type CouponRepository interface {
	// FindActiveByUser returns one active coupon owned by the user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Coupon, error)

	// FindActiveByCode returns the active coupon with the given code owned by the user.
	// Expiry is not checked.
	FindActiveByCode(ctx context.Context, code string, userID uuid.UUID) (*entity.Coupon, error)

	// FindRedeemable returns the active coupon with the given code owned by the
	// user whose expiry is after now.
	FindRedeemable(ctx context.Context, code string, userID uuid.UUID, now time.Time) (*entity.Coupon, error)

	// Create persists a new coupon.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// Deactivate marks the user's coupon with the given code as inactive.
	// Deactivating an already inactive or missing coupon is not an error.
	Deactivate(ctx context.Context, code string, userID uuid.UUID) error
}
