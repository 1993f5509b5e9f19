package service

import (
	"storefront/internal/domain/entity"
)

// QRCodeService renders scannable codes for orders.
type QRCodeService interface {
	// GenerateReceiptQR returns a PNG QR code that encodes the order receipt.
	GenerateReceiptQR(order *entity.Order) ([]byte, error)
}
