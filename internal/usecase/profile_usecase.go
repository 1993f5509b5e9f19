package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the editable user fields.
type UpdateProfileInput struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Phone  string
}

// UserProfileOutput is the account page view: the user and their order history.
type UserProfileOutput struct {
	User   *entity.User
	Orders []*entity.Order
}

// ProfileUsecase defines the account page operations.
type ProfileUsecase interface {
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*UserProfileOutput, error)
	UpdateUserProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// ReceiptQR renders a PNG QR code for one of the user's orders.
	ReceiptQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
}
