package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when a catalog product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository reads the catalog. Catalog writes are owned elsewhere.
type ProductRepository interface {
	// FindByID retrieves a product by its catalog ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
}
