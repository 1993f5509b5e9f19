// Package stripe adapts the Stripe hosted checkout API to the domain PaymentGateway.
package stripe

import (
	"context"
	"log/slog"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/fx"
)

const paymentMethodCard = "card"

// sessionAPI is the subset of the checkout session client in use.
type sessionAPI interface {
	New(params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
	Get(id string, params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error)
}

// couponAPI is the subset of the coupon client in use.
type couponAPI interface {
	New(params *stripego.CouponParams) (*stripego.Coupon, error)
}

type gateway struct {
	sessions sessionAPI
	coupons  couponAPI
	currency string
	logger   *slog.Logger
}

// GatewayParams holds dependencies for the Stripe gateway, injected by Fx
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGateway creates a PaymentGateway backed by the Stripe API.
func NewGateway(params GatewayParams) (service.PaymentGateway, error) {
	cfg := params.Config.Stripe
	if cfg == nil || cfg.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)

	return newGateway(sc.CheckoutSessions, sc.Coupons, cfg.Currency, params.Logger), nil
}

func newGateway(sessions sessionAPI, coupons couponAPI, currency string, logger *slog.Logger) *gateway {
	return &gateway{
		sessions: sessions,
		coupons:  coupons,
		currency: currency,
		logger:   logger.With(slog.String("component", "stripe")),
	}
}

// CreateDiscount registers a percentage coupon that applies to a single payment.
func (g *gateway) CreateDiscount(ctx context.Context, percentOff int) (string, error) {
	params := &stripego.CouponParams{
		Params:     stripego.Params{Context: ctx},
		PercentOff: stripego.Float64(float64(percentOff)),
		Duration:   stripego.String(string(stripego.CouponDurationOnce)),
	}

	coupon, err := g.coupons.New(params)
	if err != nil {
		return "", g.wrap(ctx, err, "failed to create stripe coupon")
	}

	return coupon.ID, nil
}

// CreateCheckoutSession creates a card payment session for the given lines.
func (g *gateway) CreateCheckoutSession(ctx context.Context, req *service.CheckoutSessionRequest) (*service.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{
		Params:             stripego.Params{Context: ctx},
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripego.StringSlice([]string{paymentMethodCard}),
		LineItems:          g.lineItems(req.LineItems),
		SuccessURL:         stripego.String(req.SuccessURL),
		CancelURL:          stripego.String(req.CancelURL),
	}
	if req.DiscountID != "" {
		params.Discounts = []*stripego.CheckoutSessionDiscountParams{
			{Coupon: stripego.String(req.DiscountID)},
		}
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	session, err := g.sessions.New(params)
	if err != nil {
		return nil, g.wrap(ctx, err, "failed to create stripe checkout session")
	}

	return toCheckoutSession(session), nil
}

// GetCheckoutSession retrieves a checkout session by ID.
func (g *gateway) GetCheckoutSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	session, err := g.sessions.Get(sessionID, &stripego.CheckoutSessionParams{
		Params: stripego.Params{Context: ctx},
	})
	if err != nil {
		return nil, g.wrap(ctx, err, "failed to retrieve stripe checkout session")
	}

	return toCheckoutSession(session), nil
}

func (g *gateway) lineItems(lines []service.CheckoutLineItem) []*stripego.CheckoutSessionLineItemParams {
	items := make([]*stripego.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		productData := &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripego.String(line.Name),
		}
		if line.ImageURL != "" {
			productData.Images = stripego.StringSlice([]string{line.ImageURL})
		}

		items = append(items, &stripego.CheckoutSessionLineItemParams{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripego.String(g.currency),
				ProductData: productData,
				UnitAmount:  stripego.Int64(line.UnitAmountCents),
			},
			Quantity: stripego.Int64(line.Quantity),
		})
	}

	return items
}

// wrap converts Stripe API failures into the gateway AppError, keeping the
// Stripe message as details.
func (g *gateway) wrap(ctx context.Context, err error, msg string) error {
	attrs := []any{slog.String("error", err.Error())}

	var stripeErr *stripego.Error
	if errors.As(err, &stripeErr) {
		attrs = append(attrs,
			slog.String("type", string(stripeErr.Type)),
			slog.String("code", string(stripeErr.Code)),
			slog.String("request_id", stripeErr.RequestID),
		)
	}
	g.logger.ErrorContext(ctx, msg, attrs...)

	return errors.Wrap(domainerrors.ErrPaymentGatewayFailed.WithDetails(err.Error()), msg)
}

func toCheckoutSession(session *stripego.CheckoutSession) *service.CheckoutSession {
	out := &service.CheckoutSession{
		ID:               session.ID,
		Status:           string(session.Status),
		AmountTotalCents: session.AmountTotal,
		Metadata:         session.Metadata,
	}
	if len(session.PaymentMethodTypes) > 0 {
		out.PaymentMethod = session.PaymentMethodTypes[0]
	}

	return out
}
