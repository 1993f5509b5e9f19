package service

// Outcome labels shared by metric recorders.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// MetricsRecorder records business counters.
type MetricsRecorder interface {
	// AuthEvent counts an auth flow step such as "login" or "refresh".
	AuthEvent(event, outcome string)

	// CheckoutSessionCreated counts a created checkout session and whether a coupon applied.
	CheckoutSessionCreated(couponApplied bool)

	// OrderConfirmed counts a materialized order and its amount.
	OrderConfirmed(totalCents int64)

	// LoyaltyCouponIssued counts an automatically issued coupon.
	LoyaltyCouponIssued()

	// EmailDelivery counts a confirmation email outcome.
	EmailDelivery(status string)
}
