package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order lookup has no match.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderAlreadyExists is returned when an order for the payment session was already recorded.
	ErrOrderAlreadyExists = errors.New("order already exists for payment session")
)

// OrderRepository persists orders with their line items and payments.
type OrderRepository interface {
	// CreateOrder persists the order and all of its items.
	// Returns ErrOrderAlreadyExists when the payment session already has an order.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreatePayment persists the payment record of an order.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindBySessionID retrieves the order created for a payment session.
	FindBySessionID(ctx context.Context, sessionID string) (*entity.Order, error)

	// ListByUser returns the user's orders, newest first, with items and product names.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
