// Package payment hands payment orders to the external payment widget running
// in the UI and routes its callbacks back to the checkout.
package payment

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// PendingPayment is what the UI needs to open the widget for a checkout.
type PendingPayment struct {
	CheckoutID   string                `json:"checkoutId"`
	KeyID        string                `json:"key"`
	MerchantName string                `json:"name"`
	Currency     string                `json:"currency"`
	Request      entity.PaymentRequest `json:"request"`
	OpenedAt     time.Time             `json:"openedAt"`
}

type pendingEntry struct {
	payment   PendingPayment
	callbacks service.PaymentCallbacks
	timer     *time.Timer
}

// Widget is a PaymentWidget whose UI side polls for pending payments and
// reports the outcome back. Each opened payment fires exactly one callback:
// the first of success, dismissal or the callback timeout.
type Widget struct {
	mu      sync.Mutex
	pending map[string]*pendingEntry

	cfg    *config.PaymentConfig
	now    func() time.Time
	logger *slog.Logger
}

var _ service.PaymentWidget = (*Widget)(nil)

// NewWidget creates the payment widget bridge.
func NewWidget(cfg *config.Config, logger *slog.Logger) *Widget {
	return &Widget{
		pending: make(map[string]*pendingEntry),
		cfg:     cfg.Payment,
		now:     time.Now,
		logger:  logger,
	}
}

// Open registers the payment so the UI can pick it up.
func (w *Widget) Open(ctx context.Context, checkoutID string, request entity.PaymentRequest, callbacks service.PaymentCallbacks) error {
	if checkoutID == "" {
		return errors.New("checkout id is required")
	}
	if callbacks.OnSuccess == nil || callbacks.OnDismiss == nil {
		return errors.New("both payment callbacks are required")
	}

	currency := request.Order.Currency
	if currency == "" {
		currency = w.cfg.Currency
		request.Order.Currency = currency
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.pending[checkoutID]; ok {
		return errors.Errorf("payment for checkout %s is already open", checkoutID)
	}

	entry := &pendingEntry{
		payment: PendingPayment{
			CheckoutID:   checkoutID,
			KeyID:        w.cfg.KeyID,
			MerchantName: w.cfg.MerchantName,
			Currency:     currency,
			Request:      request,
			OpenedAt:     w.now(),
		},
		callbacks: callbacks,
	}
	entry.timer = time.AfterFunc(w.cfg.CallbackTimeout, func() {
		w.expire(checkoutID)
	})
	w.pending[checkoutID] = entry

	w.logger.Debug("Payment widget opened",
		slog.String("checkout_id", checkoutID),
		slog.String("payment_order_id", request.Order.RazorpayOrderID),
	)

	return nil
}

// Pending returns the open payment for a checkout.
func (w *Widget) Pending(checkoutID string) (PendingPayment, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	entry, ok := w.pending[checkoutID]
	if !ok {
		return PendingPayment{}, false
	}

	return entry.payment, true
}

// Succeed reports a completed payment.
func (w *Widget) Succeed(ctx context.Context, checkoutID string, confirmation entity.PaymentConfirmation) error {
	entry, err := w.take(checkoutID)
	if err != nil {
		return err
	}

	entry.callbacks.OnSuccess(ctx, confirmation)

	return nil
}

// Dismiss reports that the user closed the widget.
func (w *Widget) Dismiss(ctx context.Context, checkoutID string) error {
	entry, err := w.take(checkoutID)
	if err != nil {
		return err
	}

	entry.callbacks.OnDismiss(ctx)

	return nil
}

// Close drops every open payment without firing callbacks.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, entry := range w.pending {
		entry.timer.Stop()
		delete(w.pending, id)
	}
}

func (w *Widget) expire(checkoutID string) {
	entry, err := w.take(checkoutID)
	if err != nil {
		return
	}

	w.logger.Info("Payment widget timed out, dismissing", slog.String("checkout_id", checkoutID))
	entry.callbacks.OnDismiss(context.Background())
}

// take removes the entry so that only one callback ever fires.
func (w *Widget) take(checkoutID string) (*pendingEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	entry, ok := w.pending[checkoutID]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails("no open payment for checkout " + checkoutID))
	}
	entry.timer.Stop()
	delete(w.pending, checkoutID)

	return entry, nil
}
