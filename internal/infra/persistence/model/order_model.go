package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. One order exists per payment session.
type OrderModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	TotalCents      int64            `gorm:"not null"`
	Status          string           `gorm:"type:varchar(20);not null"`
	StripeSessionID string           `gorm:"type:varchar(255);not null;unique"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	ProductID  int64         `gorm:"not null"`
	Quantity   int           `gorm:"not null"`
	PriceCents int64         `gorm:"not null"`
	Product    *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;unique"`
	Method      string    `gorm:"type:varchar(50);not null"`
	Status      string    `gorm:"type:varchar(20);not null"`
	AmountCents int64     `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
