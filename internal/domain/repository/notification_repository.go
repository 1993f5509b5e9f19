package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when an email notification record is missing.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository persists order confirmation email records.
type NotificationRepository interface {
	// Create persists a new notification record.
	Create(ctx context.Context, notification *entity.EmailNotification) error

	// UpdateStatus sets the delivery status of a notification.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EmailStatus) error
}
