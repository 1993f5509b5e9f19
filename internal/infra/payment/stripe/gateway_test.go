package stripe

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripego "github.com/stripe/stripe-go/v76"
)

type fakeSessions struct {
	created *stripego.CheckoutSessionParams
	gotID   string
	session *stripego.CheckoutSession
	err     error
}

func (f *fakeSessions) New(params *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error) {
	f.created = params

	return f.session, f.err
}

func (f *fakeSessions) Get(id string, _ *stripego.CheckoutSessionParams) (*stripego.CheckoutSession, error) {
	f.gotID = id

	return f.session, f.err
}

type fakeCoupons struct {
	params *stripego.CouponParams
	err    error
}

func (f *fakeCoupons) New(params *stripego.CouponParams) (*stripego.Coupon, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}

	return &stripego.Coupon{ID: "co_123"}, nil
}

func newTestGateway(sessions *fakeSessions, coupons *fakeCoupons) *gateway {
	return newGateway(sessions, coupons, "usd", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewGateway_RequiresSecretKey(t *testing.T) {
	_, err := NewGateway(GatewayParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}

func TestGateway_CreateDiscount(t *testing.T) {
	coupons := &fakeCoupons{}
	g := newTestGateway(&fakeSessions{}, coupons)

	id, err := g.CreateDiscount(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "co_123", id)
	assert.InDelta(t, 10.0, *coupons.params.PercentOff, 0)
	assert.Equal(t, "once", *coupons.params.Duration)
}

func TestGateway_CreateCheckoutSession(t *testing.T) {
	sessions := &fakeSessions{session: &stripego.CheckoutSession{ID: "cs_test_1", Status: stripego.CheckoutSessionStatusOpen, AmountTotal: 4500}}
	g := newTestGateway(sessions, &fakeCoupons{})

	out, err := g.CreateCheckoutSession(context.Background(), &service.CheckoutSessionRequest{
		LineItems: []service.CheckoutLineItem{
			{Name: "Shirt", ImageURL: "https://img/shirt.png", UnitAmountCents: 2500, Quantity: 2},
		},
		DiscountID: "co_123",
		SuccessURL: "https://shop/purchase-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "https://shop/purchase-cancel",
		Metadata:   map[string]string{"userId": "u1", "couponCode": ""},
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", out.ID)
	assert.Equal(t, service.CheckoutSessionStatusOpen, out.Status)

	params := sessions.created
	require.NotNil(t, params)
	assert.Equal(t, "payment", *params.Mode)
	require.Len(t, params.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *params.PaymentMethodTypes[0])
	require.Len(t, params.LineItems, 1)
	assert.Equal(t, int64(2500), *params.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, int64(2), *params.LineItems[0].Quantity)
	assert.Equal(t, "usd", *params.LineItems[0].PriceData.Currency)
	assert.Equal(t, "Shirt", *params.LineItems[0].PriceData.ProductData.Name)
	require.Len(t, params.Discounts, 1)
	assert.Equal(t, "co_123", *params.Discounts[0].Coupon)
	assert.Equal(t, "u1", params.Metadata["userId"])
}

func TestGateway_CreateCheckoutSession_NoDiscount(t *testing.T) {
	sessions := &fakeSessions{session: &stripego.CheckoutSession{ID: "cs_test_2"}}
	g := newTestGateway(sessions, &fakeCoupons{})

	_, err := g.CreateCheckoutSession(context.Background(), &service.CheckoutSessionRequest{
		LineItems: []service.CheckoutLineItem{{Name: "Hat", UnitAmountCents: 1000, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Empty(t, sessions.created.Discounts)
	assert.Empty(t, sessions.created.LineItems[0].PriceData.ProductData.Images)
}

func TestGateway_GetCheckoutSession(t *testing.T) {
	sessions := &fakeSessions{session: &stripego.CheckoutSession{
		ID:                 "cs_test_1",
		Status:             stripego.CheckoutSessionStatusComplete,
		AmountTotal:        5000,
		Metadata:           map[string]string{"userId": "u1"},
		PaymentMethodTypes: []string{"card"},
	}}
	g := newTestGateway(sessions, &fakeCoupons{})

	out, err := g.GetCheckoutSession(context.Background(), "cs_test_1")

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", sessions.gotID)
	assert.Equal(t, service.CheckoutSessionStatusComplete, out.Status)
	assert.Equal(t, int64(5000), out.AmountTotalCents)
	assert.Equal(t, "card", out.PaymentMethod)
	assert.Equal(t, "u1", out.Metadata["userId"])
}

func TestGateway_ErrorsMapToGatewayFailure(t *testing.T) {
	stripeErr := &stripego.Error{Type: stripego.ErrorTypeInvalidRequest, Msg: "No such checkout.session"}
	g := newTestGateway(&fakeSessions{err: stripeErr}, &fakeCoupons{err: errors.New("network down")})

	_, err := g.GetCheckoutSession(context.Background(), "cs_missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentGatewayFailed)

	_, err = g.CreateDiscount(context.Background(), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentGatewayFailed)
}
