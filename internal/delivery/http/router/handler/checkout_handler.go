package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/payment"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler drives the checkout flow and relays payment widget callbacks.
type CheckoutHandler struct {
	checkouts usecase.CheckoutUsecase
	widget    *payment.Widget
	logger    *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(checkouts usecase.CheckoutUsecase, widget *payment.Widget, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkouts: checkouts, widget: widget, logger: logger}
}

type detailsRequest struct {
	entity.DeliveryDetails
	Notes string `json:"notes"`
}

func (h *CheckoutHandler) Start(c echo.Context) error {
	checkout, err := h.checkouts.Start(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, checkout, "Checkout started")
}

func (h *CheckoutHandler) Get(c echo.Context) error {
	checkout, err := h.checkouts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, checkout)
}

func (h *CheckoutHandler) CollectDetails(c echo.Context) error {
	var req detailsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid delivery details")
	}

	checkout, err := h.checkouts.CollectDetails(c.Request().Context(), c.Param("id"), req.DeliveryDetails, req.Notes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, checkout)
}

func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	checkout, err := h.checkouts.CreateOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return outcome(c, checkout)
}

func (h *CheckoutHandler) RequestPayment(c echo.Context) error {
	checkout, err := h.checkouts.RequestPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return outcome(c, checkout)
}

// PendingPayment returns what the UI needs to open the payment widget.
func (h *CheckoutHandler) PendingPayment(c echo.Context) error {
	pending, ok := h.widget.Pending(c.Param("id"))
	if !ok {
		return errors.WithStack(domainerrors.ErrNotFound.WithDetails("no open payment for checkout " + c.Param("id")))
	}

	return response.OK(c, pending)
}

// PaymentSucceeded relays the widget's success callback.
func (h *CheckoutHandler) PaymentSucceeded(c echo.Context) error {
	var confirmation entity.PaymentConfirmation
	if err := c.Bind(&confirmation); err != nil {
		return response.BindingError(c, "Invalid payment confirmation")
	}

	ctx := c.Request().Context()
	if err := h.widget.Succeed(ctx, c.Param("id"), confirmation); err != nil {
		return errors.WithStack(err)
	}

	checkout, err := h.checkouts.Get(ctx, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return outcome(c, checkout)
}

// PaymentDismissed relays the widget's dismiss callback.
func (h *CheckoutHandler) PaymentDismissed(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.widget.Dismiss(ctx, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	checkout, err := h.checkouts.Get(ctx, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return outcome(c, checkout)
}

// RetryPayment opens a new payment attempt for an unpaid order.
func (h *CheckoutHandler) RetryPayment(c echo.Context) error {
	checkout, err := h.checkouts.RetryPayment(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return outcome(c, checkout)
}

// outcome renders a checkout; failed and cancelled checkouts are still a 200
// carrying the message and the route to go back to.
func outcome(c echo.Context, checkout *entity.Checkout) error {
	switch checkout.State {
	case entity.CheckoutPaymentFailed, entity.CheckoutPaymentCancelled:
		return response.Success(c, http.StatusOK, checkout, checkout.FailureMsg)
	case entity.CheckoutPaymentSucceeded:
		return response.Success(c, http.StatusOK, checkout, "Payment successful")
	default:
		return response.OK(c, checkout)
	}
}
