package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus is the settlement state of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Order is a confirmed purchase created from a completed checkout session.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TotalCents      int64
	Status          OrderStatus
	StripeSessionID string
	Items           []*OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is one purchased product within an order.
type OrderItem struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	ProductID      int64
	ProductName    string // Filled on reads that join the catalog.
	Quantity       int
	UnitPriceCents int64
}

// Payment records how an order was paid.
type Payment struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	Method      string
	Status      PaymentStatus
	AmountCents int64
	CreatedAt   time.Time
}
