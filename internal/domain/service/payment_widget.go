package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PaymentCallbacks is the widget's callback contract.
type PaymentCallbacks struct {
	OnSuccess func(ctx context.Context, confirmation entity.PaymentConfirmation)
	OnDismiss func(ctx context.Context)
}

// PaymentWidget is the external payment UI. It is opaque: the only thing the
// checkout relies on is that exactly one callback eventually fires.
type PaymentWidget interface {
	Open(ctx context.Context, checkoutID string, request entity.PaymentRequest, callbacks PaymentCallbacks) error
}
