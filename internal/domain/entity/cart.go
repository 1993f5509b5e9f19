package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is the read-only catalog view used to price cart lines.
type Product struct {
	ID            int64
	Name          string
	Description   string
	PriceCents    int64
	StockQuantity int
	ImageURL      string
}

// CartItem is a persisted (user, product) pair with a positive quantity.
type CartItem struct {
	UserID    uuid.UUID
	ProductID int64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartLine is a cart item joined with its product.
type CartLine struct {
	Product  Product
	Quantity int
}

// SubtotalCents returns the line price in cents.
func (l *CartLine) SubtotalCents() int64 {
	return l.Product.PriceCents * int64(l.Quantity)
}
