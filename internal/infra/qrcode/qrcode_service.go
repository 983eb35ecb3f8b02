package qrcode

import (
	"encoding/json"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const linkTypeOrderStatus = "order_status"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateOrderStatusQR encodes a link to the order-status view as a PNG
func (s *qrcodeService) GenerateOrderStatusQR(orderID string) ([]byte, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, errors.New("order id is required")
	}

	jsonData, err := json.Marshal(service.OrderStatusLink{
		OrderID: orderID,
		URL:     s.baseURL + "/" + orderID,
		Type:    linkTypeOrderStatus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
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

// ParseOrderStatusQR decodes scanned QR content back into an order link
func (s *qrcodeService) ParseOrderStatusQR(qrData string) (*service.OrderStatusLink, error) {
	var link service.OrderStatusLink
	if err := json.Unmarshal([]byte(qrData), &link); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if link.Type != linkTypeOrderStatus {
		return nil, errors.Errorf("invalid QR code type: %s", link.Type)
	}
	if link.OrderID == "" {
		return nil, errors.New("QR code carries no order id")
	}

	return &link, nil
}
