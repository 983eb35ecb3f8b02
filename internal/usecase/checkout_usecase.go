// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutUsecase drives the checkout state machine from delivery details to
// a verified payment.
type CheckoutUsecase interface {
	// Start opens a new checkout in Idle.
	Start(ctx context.Context) (*entity.Checkout, error)
	// CollectDetails validates delivery details: Idle -> DetailsCollected.
	CollectDetails(ctx context.Context, checkoutID string, details entity.DeliveryDetails, notes string) (*entity.Checkout, error)
	// CreateOrder places the order remotely: DetailsCollected -> OrderCreated.
	CreateOrder(ctx context.Context, checkoutID string) (*entity.Checkout, error)
	// RequestPayment opens the payment widget: OrderCreated -> PaymentPending.
	RequestPayment(ctx context.Context, checkoutID string) (*entity.Checkout, error)
	// ConfirmPayment handles the widget's success callback.
	ConfirmPayment(ctx context.Context, checkoutID string, confirmation entity.PaymentConfirmation) (*entity.Checkout, error)
	// Dismiss handles the widget being closed without paying.
	Dismiss(ctx context.Context, checkoutID string) (*entity.Checkout, error)
	// RetryPayment enters OrderCreated directly for an already placed order.
	RetryPayment(ctx context.Context, orderID string) (*entity.Checkout, error)
	Get(ctx context.Context, checkoutID string) (*entity.Checkout, error)
}
