package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CouponUsecase exposes the user's discount grants.
type CouponUsecase interface {
	// ActiveCoupon returns the user's active coupon, or nil when there is none.
	ActiveCoupon(ctx context.Context, userID uuid.UUID) (*entity.Coupon, error)

	// ValidateCoupon checks that code is an active, unexpired coupon of the user.
	// An expired coupon is deactivated as a side effect.
	ValidateCoupon(ctx context.Context, userID uuid.UUID, code string) (*entity.Coupon, error)
}
