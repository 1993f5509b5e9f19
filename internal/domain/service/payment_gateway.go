package service

import "context"

// Checkout session statuses reported by the gateway.
const (
	CheckoutSessionStatusOpen     = "open"
	CheckoutSessionStatusComplete = "complete"
	CheckoutSessionStatusExpired  = "expired"
)

// CheckoutLineItem is one priced line shown on the hosted payment page.
type CheckoutLineItem struct {
	Name            string
	ImageURL        string
	UnitAmountCents int64
	Quantity        int64
}

// CheckoutSessionRequest describes a hosted checkout session to create.
type CheckoutSessionRequest struct {
	LineItems  []CheckoutLineItem
	DiscountID string // Gateway-side discount to apply, empty for none.
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// CheckoutSession is the gateway's view of a checkout session.
type CheckoutSession struct {
	ID               string
	Status           string
	AmountTotalCents int64
	PaymentMethod    string
	Metadata         map[string]string
}

// PaymentGateway is the external payment provider.
type PaymentGateway interface {
	// CreateDiscount registers a once-only percentage discount and returns its gateway ID.
	CreateDiscount(ctx context.Context, percentOff int) (string, error)

	// CreateCheckoutSession creates a hosted checkout session.
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSession, error)

	// GetCheckoutSession retrieves a checkout session by ID.
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
