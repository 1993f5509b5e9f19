package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutProductInput is one cart line as submitted by the storefront.
// Price is in currency units; Quantity must be a positive whole number.
type CheckoutProductInput struct {
	ID       int64
	Name     string
	Image    string
	Price    float64
	Quantity float64
}

// CreateCheckoutSessionInput defines the data required to start a payment.
type CreateCheckoutSessionInput struct {
	UserID     uuid.UUID
	Products   []CheckoutProductInput
	CouponCode string
}

// CheckoutSessionOutput identifies the created payment session.
type CheckoutSessionOutput struct {
	SessionID  string
	TotalCents int64 // After the coupon discount, if any.
}

// CheckoutSuccessOutput identifies the order created for a completed session.
type CheckoutSuccessOutput struct {
	OrderID          uuid.UUID
	AlreadyConfirmed bool
}

// CheckoutUsecase drives the hosted checkout flow from session creation to order materialization.
type CheckoutUsecase interface {
	CreateCheckoutSession(ctx context.Context, input *CreateCheckoutSessionInput) (*CheckoutSessionOutput, error)
	CheckoutSuccess(ctx context.Context, userID uuid.UUID, sessionID string) (*CheckoutSuccessOutput, error)
}
