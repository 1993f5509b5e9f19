package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table keyed by (user_id, product_id).
type CartItemModel struct {
	UserID    uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ProductID int64         `gorm:"primaryKey"`
	Quantity  int           `gorm:"not null;check:quantity > 0"`
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
