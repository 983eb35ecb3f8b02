package handler

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/payment"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCheckout keeps a single checkout whose state the widget callbacks move.
type fakeCheckout struct {
	mu       sync.Mutex
	checkout entity.Checkout
	notes    string
}

var _ usecase.CheckoutUsecase = (*fakeCheckout)(nil)

func (f *fakeCheckout) snapshot() *entity.Checkout {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := f.checkout

	return &c
}

func (f *fakeCheckout) setState(state entity.CheckoutState, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.checkout.State = state
	f.checkout.FailureMsg = msg
}

func (f *fakeCheckout) Start(context.Context) (*entity.Checkout, error) { return f.snapshot(), nil }

func (f *fakeCheckout) CollectDetails(_ context.Context, _ string, details entity.DeliveryDetails, notes string) (*entity.Checkout, error) {
	f.mu.Lock()
	f.checkout.Details = details
	f.notes = notes
	f.mu.Unlock()
	f.setState(entity.CheckoutDetailsCollected, "")

	return f.snapshot(), nil
}

func (f *fakeCheckout) CreateOrder(context.Context, string) (*entity.Checkout, error) {
	return f.snapshot(), nil
}

func (f *fakeCheckout) RequestPayment(context.Context, string) (*entity.Checkout, error) {
	return f.snapshot(), nil
}

func (f *fakeCheckout) ConfirmPayment(context.Context, string, entity.PaymentConfirmation) (*entity.Checkout, error) {
	return f.snapshot(), nil
}

func (f *fakeCheckout) Dismiss(context.Context, string) (*entity.Checkout, error) {
	return f.snapshot(), nil
}

func (f *fakeCheckout) RetryPayment(context.Context, string) (*entity.Checkout, error) {
	return f.snapshot(), nil
}

func (f *fakeCheckout) Get(context.Context, string) (*entity.Checkout, error) { return f.snapshot(), nil }

type checkoutHandlerFixtures struct {
	checkouts *fakeCheckout
	widget    *payment.Widget
	echo      *echo.Echo
}

func createTestCheckoutHandler(t *testing.T) *checkoutHandlerFixtures {
	cfg := &config.Config{
		API:     &config.APIConfig{BaseURL: "http://localhost"},
		Payment: &config.PaymentConfig{KeyID: "rzp_test", MerchantName: "Storefront", CallbackTimeout: time.Minute},
	}
	cfg.ApplyDefaults()

	widget := payment.NewWidget(cfg, newDiscardLogger())
	t.Cleanup(widget.Close)

	checkouts := &fakeCheckout{checkout: entity.Checkout{ID: "c1", State: entity.CheckoutPaymentPending}}
	h := NewCheckoutHandler(checkouts, widget, newDiscardLogger())

	e := newTestEcho()
	e.PUT("/checkout/:id/details", h.CollectDetails)
	e.GET("/checkout/:id/payment", h.PendingPayment)
	e.POST("/checkout/:id/payment/success", h.PaymentSucceeded)
	e.POST("/checkout/:id/payment/dismiss", h.PaymentDismissed)

	return &checkoutHandlerFixtures{checkouts: checkouts, widget: widget, echo: e}
}

func (fx *checkoutHandlerFixtures) open(t *testing.T) {
	t.Helper()

	err := fx.widget.Open(context.Background(), "c1", entity.PaymentRequest{
		Order: entity.PaymentOrder{RazorpayOrderID: "order_1", Amount: 200},
	}, service.PaymentCallbacks{
		OnSuccess: func(context.Context, entity.PaymentConfirmation) {
			fx.checkouts.setState(entity.CheckoutPaymentSucceeded, "")
		},
		OnDismiss: func(context.Context) {
			fx.checkouts.setState(entity.CheckoutPaymentCancelled, "Payment was cancelled")
		},
	})
	require.NoError(t, err)
}

func TestCheckoutHandler_CollectDetails(t *testing.T) {
	fx := createTestCheckoutHandler(t)

	rec := serve(fx.echo, http.MethodPut, "/checkout/c1/details",
		`{"name":"Asha","phone":"9999999999","address":"1 Main St","notes":"ring twice"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ring twice", fx.checkouts.notes)
	assert.Equal(t, "Asha", fx.checkouts.snapshot().Details.Name)
}

func TestCheckoutHandler_PendingPayment(t *testing.T) {
	fx := createTestCheckoutHandler(t)

	rec := serve(fx.echo, http.MethodGet, "/checkout/c1/payment", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	fx.open(t)

	rec = serve(fx.echo, http.MethodGet, "/checkout/c1/payment", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rzp_test")
	assert.Contains(t, rec.Body.String(), "order_1")
}

func TestCheckoutHandler_PaymentSucceeded(t *testing.T) {
	fx := createTestCheckoutHandler(t)
	fx.open(t)

	rec := serve(fx.echo, http.MethodPost, "/checkout/c1/payment/success",
		`{"razorpayOrderId":"order_1","razorpayPaymentId":"pay_1","razorpaySignature":"sig"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Payment successful", decode(t, rec).Message)
	assert.Equal(t, entity.CheckoutPaymentSucceeded, fx.checkouts.snapshot().State)

	// the widget already reported; a second report is refused
	rec = serve(fx.echo, http.MethodPost, "/checkout/c1/payment/dismiss", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, entity.CheckoutPaymentSucceeded, fx.checkouts.snapshot().State)
}

func TestCheckoutHandler_PaymentDismissed(t *testing.T) {
	fx := createTestCheckoutHandler(t)
	fx.open(t)

	rec := serve(fx.echo, http.MethodPost, "/checkout/c1/payment/dismiss", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Payment was cancelled", env.Message)
}
