package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus tracks delivery of the order confirmation email.
type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

// EmailNotification records the confirmation email sent for an order.
type EmailNotification struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	CustomerID uuid.UUID
	Status     EmailStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
