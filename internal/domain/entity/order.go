package entity

import (
	"strings"
	"time"
)

// OrderStatus is the fulfilment status of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentStatus only moves through the remote payment service.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// Order is a placed order as listed on the profile page.
type Order struct {
	ID            string        `json:"_id"`
	OrderID       string        `json:"orderId"`
	TotalAmount   float64       `json:"totalAmount"`
	OrderStatus   OrderStatus   `json:"orderStatus"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt,omitzero"`
}

// Ref returns the identifier used in order routes.
func (o *Order) Ref() string {
	if o.ID != "" {
		return o.ID
	}

	return o.OrderID
}

// CanRetryPayment reports whether the order still awaits payment.
func (o *Order) CanRetryPayment() bool {
	return o.PaymentStatus != PaymentSuccess && o.OrderStatus != OrderCancelled
}

// DeliveryDetails are collected before an order is created.
type DeliveryDetails struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
}

// Normalize trims fields and lowercases the email.
func (d DeliveryDetails) Normalize() DeliveryDetails {
	return DeliveryDetails{
		Name:       strings.TrimSpace(d.Name),
		Email:      strings.ToLower(strings.TrimSpace(d.Email)),
		Phone:      strings.TrimSpace(d.Phone),
		Address:    strings.TrimSpace(d.Address),
		City:       strings.TrimSpace(d.City),
		PostalCode: strings.TrimSpace(d.PostalCode),
	}
}

// PaymentOrder is the gateway order handed to the payment widget.
type PaymentOrder struct {
	RazorpayOrderID string  `json:"razorpayOrderId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency,omitempty"`
}

// PaymentConfirmation is what the widget's success callback yields.
type PaymentConfirmation struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

// PaymentPrefill is the contact info shown in the widget.
type PaymentPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// PaymentRequest opens the widget.
type PaymentRequest struct {
	Order   PaymentOrder   `json:"order"`
	Prefill PaymentPrefill `json:"prefill"`
}
