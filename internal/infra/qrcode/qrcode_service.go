package qrcode

import (
	"encoding/json"
	"fmt"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	receiptType = "receipt"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData is the payload encoded in a receipt QR code.
type ReceiptData struct {
	OrderID string `json:"order_id"`
	Total   string `json:"total"`
	Items   int    `json:"items"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateReceiptQR renders the order receipt as a PNG QR code.
func (s *qrcodeService) GenerateReceiptQR(order *entity.Order) ([]byte, error) {
	if order == nil {
		return nil, errors.New("order is required")
	}

	jsonData, err := json.Marshal(newReceiptData(order))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal receipt data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func newReceiptData(order *entity.Order) ReceiptData {
	items := 0
	for _, item := range order.Items {
		items += item.Quantity
	}

	return ReceiptData{
		OrderID: order.ID.String(),
		Total:   fmt.Sprintf("%d.%02d", order.TotalCents/100, order.TotalCents%100),
		Items:   items,
		Type:    receiptType,
	}
}

// ParseReceiptQR decodes a scanned receipt payload into the order ID.
func ParseReceiptQR(qrData string) (uuid.UUID, error) {
	var data ReceiptData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != receiptType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse order ID")
	}

	return orderID, nil
}
