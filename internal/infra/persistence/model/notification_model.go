package model

import (
	"time"

	"github.com/google/uuid"
)

// EmailNotificationModel mirrors the 'email_notifications' table.
type EmailNotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null"`
	EmailStatus string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailNotificationModel) TableName() string {
	return "email_notifications"
}
