package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when the product is not in the user's cart.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists cart lines keyed by (user, product).
type CartRepository interface {
	// ListLines returns the user's cart joined with product details.
	ListLines(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)

	// AddOne inserts the product with quantity 1, or increments an existing line.
	AddOne(ctx context.Context, userID uuid.UUID, productID int64) error

	// SetQuantity overwrites the quantity of an existing line.
	// Returns ErrCartItemNotFound when the line does not exist.
	SetQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error

	// Remove deletes a single line.
	// Returns ErrCartItemNotFound when the line does not exist.
	Remove(ctx context.Context, userID uuid.UUID, productID int64) error

	// Clear deletes every line of the user's cart.
	Clear(ctx context.Context, userID uuid.UUID) error
}
