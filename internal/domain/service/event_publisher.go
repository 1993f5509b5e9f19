package service

import (
	"context"
	"time"
)

// OrderCompletedEventType is the event type attribute of OrderCompletedEvent.
const OrderCompletedEventType = "order.completed"

// OrderEventItem is one line of a completed order.
type OrderEventItem struct {
	ProductID  int64 `json:"product_id"`
	Quantity   int   `json:"quantity"`
	PriceCents int64 `json:"price_cents"`
}

// OrderCompletedEvent is emitted after an order has been materialized.
type OrderCompletedEvent struct {
	RequestID   string           `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string           `json:"order_id"`
	UserID      string           `json:"user_id"`
	SessionID   string           `json:"session_id"`
	TotalCents  int64            `json:"total_cents"`
	CouponCode  string           `json:"coupon_code,omitempty"`
	Items       []OrderEventItem `json:"items"`
	CompletedAt time.Time        `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCompleted publishes an order completion event for downstream consumers.
	PublishOrderCompleted(ctx context.Context, event *OrderCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
