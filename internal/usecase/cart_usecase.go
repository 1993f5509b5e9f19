package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the persisted cart. Every mutation returns the resulting cart.
type CartUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)
	Add(ctx context.Context, userID uuid.UUID, productID int64) ([]*entity.CartLine, error)

	// Remove deletes one line, or clears the cart when productID is nil.
	Remove(ctx context.Context, userID uuid.UUID, productID *int64) ([]*entity.CartLine, error)

	// UpdateQuantity overwrites a line's quantity; zero removes the line.
	UpdateQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int) ([]*entity.CartLine, error)
}
