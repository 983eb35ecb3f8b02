package payment

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWidget(timeout time.Duration) *Widget {
	cfg := &config.Config{
		API:     &config.APIConfig{BaseURL: "http://localhost"},
		Payment: &config.PaymentConfig{KeyID: "rzp_test", MerchantName: "Storefront", CallbackTimeout: timeout},
	}
	cfg.ApplyDefaults()

	return NewWidget(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type callbackCounter struct {
	succeeded atomic.Int32
	dismissed atomic.Int32
}

func (c *callbackCounter) callbacks() service.PaymentCallbacks {
	return service.PaymentCallbacks{
		OnSuccess: func(context.Context, entity.PaymentConfirmation) { c.succeeded.Add(1) },
		OnDismiss: func(context.Context) { c.dismissed.Add(1) },
	}
}

func request() entity.PaymentRequest {
	return entity.PaymentRequest{Order: entity.PaymentOrder{RazorpayOrderID: "order_1", Amount: 200}}
}

func TestWidget_OpenExposesPendingPayment(t *testing.T) {
	w := newTestWidget(time.Minute)
	defer w.Close()
	counter := &callbackCounter{}

	require.NoError(t, w.Open(context.Background(), "c1", request(), counter.callbacks()))

	pending, ok := w.Pending("c1")
	require.True(t, ok)
	assert.Equal(t, "rzp_test", pending.KeyID)
	assert.Equal(t, "INR", pending.Currency)
	assert.Equal(t, "INR", pending.Request.Order.Currency)
	assert.Equal(t, "order_1", pending.Request.Order.RazorpayOrderID)

	assert.Error(t, w.Open(context.Background(), "c1", request(), counter.callbacks()), "already open")
}

func TestWidget_ExactlyOneCallback(t *testing.T) {
	w := newTestWidget(time.Minute)
	defer w.Close()
	counter := &callbackCounter{}
	ctx := context.Background()

	require.NoError(t, w.Open(ctx, "c1", request(), counter.callbacks()))

	require.NoError(t, w.Succeed(ctx, "c1", entity.PaymentConfirmation{RazorpayPaymentID: "pay_1"}))
	err := w.Dismiss(ctx, "c1")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, int32(1), counter.succeeded.Load())
	assert.Equal(t, int32(0), counter.dismissed.Load())
	_, ok := w.Pending("c1")
	assert.False(t, ok)
}

func TestWidget_TimeoutDismisses(t *testing.T) {
	w := newTestWidget(10 * time.Millisecond)
	defer w.Close()
	counter := &callbackCounter{}

	require.NoError(t, w.Open(context.Background(), "c1", request(), counter.callbacks()))

	assert.Eventually(t, func() bool { return counter.dismissed.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, w.Succeed(context.Background(), "c1", entity.PaymentConfirmation{}), domainerrors.ErrNotFound)
	assert.Equal(t, int32(0), counter.succeeded.Load())
}

func TestWidget_OpenRequiresCallbacks(t *testing.T) {
	w := newTestWidget(time.Minute)

	assert.Error(t, w.Open(context.Background(), "c1", request(), service.PaymentCallbacks{}))
	assert.Error(t, w.Open(context.Background(), "", request(), (&callbackCounter{}).callbacks()))
}
