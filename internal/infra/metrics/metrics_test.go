package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()

	r.AuthEvent("login", service.OutcomeSuccess)
	r.AuthEvent("login", service.OutcomeSuccess)
	r.AuthEvent("login", service.OutcomeFailure)
	r.CheckoutSessionCreated(true)
	r.CheckoutSessionCreated(false)
	r.CheckoutSessionCreated(false)
	r.OrderConfirmed(12500)
	r.LoyaltyCouponIssued()
	r.EmailDelivery("sent")

	assert.InDelta(t, 2, testutil.ToFloat64(r.authEvents.WithLabelValues("login", service.OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.authEvents.WithLabelValues("login", service.OutcomeFailure)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.checkoutSessions.WithLabelValues("applied")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(r.checkoutSessions.WithLabelValues("none")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.ordersConfirmed), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.loyaltyCoupons), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.emailDeliveries.WithLabelValues("sent")), 0)
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.OrderConfirmed(4200)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "storefront_orders_confirmed_total 1")
	assert.Contains(t, rec.Body.String(), "storefront_order_amount_dollars_sum 42")
}

func TestEnabled(t *testing.T) {
	assert.False(t, Enabled(&config.Config{}))
	assert.False(t, Enabled(&config.Config{Metrics: &config.MetricsConfig{}}))
	assert.True(t, Enabled(&config.Config{Metrics: &config.MetricsConfig{Enabled: true}}))
}
