package service

// OrderStatusLink is what an order-status QR code encodes.
type OrderStatusLink struct {
	OrderID string `json:"order_id"`
	URL     string `json:"url"`
	Type    string `json:"type"`
}

// QRCodeService defines the interface for order-status QR code generation and parsing
type QRCodeService interface {
	// GenerateOrderStatusQR generates a PNG QR code linking to the order's status view
	GenerateOrderStatusQR(orderID string) ([]byte, error)

	// ParseOrderStatusQR parses QR code data and returns the order link
	ParseOrderStatusQR(qrData string) (*OrderStatusLink, error)
}
