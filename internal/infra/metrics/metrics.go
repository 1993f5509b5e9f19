// Package metrics exposes storefront business counters to Prometheus.
package metrics

import (
	"net/http"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "storefront"

// Recorder implements service.MetricsRecorder on a dedicated registry.
type Recorder struct {
	registry *prometheus.Registry

	authEvents       *prometheus.CounterVec
	checkoutSessions *prometheus.CounterVec
	ordersConfirmed  prometheus.Counter
	orderAmount      prometheus.Histogram
	loyaltyCoupons   prometheus.Counter
	emailDeliveries  *prometheus.CounterVec
}

// NewRecorder registers the storefront collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_events_total",
			Help:      "Authentication flow steps by event and outcome.",
		}, []string{"event", "outcome"}),
		checkoutSessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_sessions_created_total",
			Help:      "Hosted checkout sessions created.",
		}, []string{"coupon"}),
		ordersConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_confirmed_total",
			Help:      "Orders materialized from completed payments.",
		}),
		orderAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_amount_dollars",
			Help:      "Amount of confirmed orders.",
			Buckets:   []float64{10, 25, 50, 100, 200, 500, 1000},
		}),
		loyaltyCoupons: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loyalty_coupons_issued_total",
			Help:      "Coupons issued for large carts.",
		}),
		emailDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirmation_emails_total",
			Help:      "Order confirmation emails by delivery status.",
		}, []string{"status"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.authEvents,
		r.checkoutSessions,
		r.ordersConfirmed,
		r.orderAmount,
		r.loyaltyCoupons,
		r.emailDeliveries,
	)

	return r
}

func (r *Recorder) AuthEvent(event, outcome string) {
	r.authEvents.WithLabelValues(event, outcome).Inc()
}

func (r *Recorder) CheckoutSessionCreated(couponApplied bool) {
	label := "none"
	if couponApplied {
		label = "applied"
	}
	r.checkoutSessions.WithLabelValues(label).Inc()
}

func (r *Recorder) OrderConfirmed(totalCents int64) {
	r.ordersConfirmed.Inc()
	r.orderAmount.Observe(float64(totalCents) / 100)
}

func (r *Recorder) LoyaltyCouponIssued() {
	r.loyaltyCoupons.Inc()
}

func (r *Recorder) EmailDelivery(status string) {
	r.emailDeliveries.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Enabled reports whether the scrape endpoint should be mounted.
func Enabled(cfg *config.Config) bool {
	return cfg.Metrics != nil && cfg.Metrics.Enabled
}

// Module provides the recorder both as itself and as the domain interface.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRecorder,
		func(r *Recorder) service.MetricsRecorder { return r },
	),
)
