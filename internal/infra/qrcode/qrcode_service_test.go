package qrcode

import (
	"encoding/json"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	cfg := &config.Config{API: &config.APIConfig{}}
	cfg.ApplyDefaults()

	svc := NewQRCodeService(cfg)
	assert.NotNil(t, svc)
}

func TestQRCodeService_GenerateOrderStatusQR(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		level string
	}{
		{"Small low", 128, "L"},
		{"Medium default", 256, "M"},
		{"Large highest", 512, "H"},
		{"Unknown level", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(tt.size, tt.level, "/order-status")

			qrBytes, err := svc.GenerateOrderStatusQR("order-42")
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_GenerateOrderStatusQR_RequiresOrderID(t *testing.T) {
	svc := newQRCodeService(256, "M", "/order-status")

	_, err := svc.GenerateOrderStatusQR("  ")
	assert.Error(t, err)
}

func TestQRCodeService_ParseOrderStatusQR(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://shop.example/order-status/")

	jsonData, err := json.Marshal(service.OrderStatusLink{
		OrderID: "order-42",
		URL:     "https://shop.example/order-status/order-42",
		Type:    linkTypeOrderStatus,
	})
	require.NoError(t, err)

	link, err := svc.ParseOrderStatusQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "order-42", link.OrderID)
	assert.Equal(t, "https://shop.example/order-status/order-42", link.URL)
}

func TestQRCodeService_ParseOrderStatusQR_Invalid(t *testing.T) {
	svc := newQRCodeService(256, "M", "/order-status")

	tests := []struct {
		name    string
		data    string
		errPart string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"order_id":"o1","type":"subscription"}`, "invalid QR code type"},
		{"missing order", `{"type":"order_status"}`, "no order id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseOrderStatusQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}
