package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutEntry serialises the transitions of one checkout.
type checkoutEntry struct {
	mu       sync.Mutex
	checkout *entity.Checkout
	clock    func() time.Time
	finished atomic.Int64 // unix nanos of the terminal transition, 0 while open
}

func (e *checkoutEntry) lock() *entity.Checkout {
	e.mu.Lock()

	return e.checkout
}

func (e *checkoutEntry) unlock() {
	e.markFinished()
	e.mu.Unlock()
}

func (e *checkoutEntry) markFinished() {
	if e.checkout.State.IsTerminal() {
		e.finished.CompareAndSwap(0, e.clock().UnixNano())
	}
}

// expired reports whether the checkout reached a terminal state before cutoff.
func (e *checkoutEntry) expired(cutoff time.Time) bool {
	finished := e.finished.Load()

	return finished != 0 && finished < cutoff.UnixNano()
}

// finishedCheckoutRetention keeps a finished checkout readable long enough for
// the result page to load it.
const finishedCheckoutRetention = 15 * time.Minute

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	mu        sync.RWMutex
	checkouts map[string]*checkoutEntry

	orders    service.OrderAPI
	widget    service.PaymentWidget
	cart      usecase.CartUsecase
	session   usecase.SessionUsecase
	validator service.FormValidator
	logger    *slog.Logger
	now       func() time.Time
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	orders service.OrderAPI,
	widget service.PaymentWidget,
	cart usecase.CartUsecase,
	session usecase.SessionUsecase,
	validator service.FormValidator,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		checkouts: make(map[string]*checkoutEntry),
		orders:    orders,
		widget:    widget,
		cart:      cart,
		session:   session,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start opens a checkout for the current cart.
func (srv *checkoutService) Start(ctx context.Context) (*entity.Checkout, error) {
	if srv.session.Credential() == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if srv.cart.Snapshot().Count == 0 {
		return nil, errors.WithStack(domainerrors.ErrCheckoutState.WithDetails("cart is empty"))
	}

	checkout := &entity.Checkout{
		ID:    uuid.NewString(),
		State: entity.CheckoutIdle,
	}
	srv.put(checkout)
	srv.log(ctx).Debug("Checkout started", slog.String("checkout_id", checkout.ID))

	return clone(checkout), nil
}

// CollectDetails validates and stores delivery details.
func (srv *checkoutService) CollectDetails(
	ctx context.Context,
	checkoutID string,
	details entity.DeliveryDetails,
	notes string,
) (*entity.Checkout, error) {
	entry, err := srv.entry(checkoutID)
	if err != nil {
		return nil, err
	}
	checkout := entry.lock()
	defer entry.unlock()

	if checkout.State != entity.CheckoutIdle && checkout.State != entity.CheckoutDetailsCollected {
		return clone(checkout), transitionError(checkout, "collect details")
	}

	details = details.Normalize()
	checkout.Details = details
	if err := srv.validator.Validate(&details); err != nil {
		checkout.State = entity.CheckoutIdle

		return clone(checkout), err
	}

	checkout.Notes = notes
	checkout.State = entity.CheckoutDetailsCollected

	return clone(checkout), nil
}

// CreateOrder places the order. A failure ends the checkout in PaymentFailed.
func (srv *checkoutService) CreateOrder(ctx context.Context, checkoutID string) (*entity.Checkout, error) {
	ctx = deliverycontext.Detach(ctx)

	entry, err := srv.entry(checkoutID)
	if err != nil {
		return nil, err
	}
	checkout := entry.lock()
	defer entry.unlock()

	if checkout.State != entity.CheckoutDetailsCollected {
		return clone(checkout), transitionError(checkout, "create order")
	}

	order, err := srv.orders.Create(ctx, srv.session.Credential(), &service.CreateOrderInput{
		DeliveryDetails: checkout.Details,
		Notes:           checkout.Notes,
	})
	if err != nil {
		srv.fail(ctx, checkout, domainerrors.ErrOrderCreationFailed, err)

		return clone(checkout), nil
	}

	checkout.Payment = order
	checkout.State = entity.CheckoutOrderCreated
	srv.log(ctx).Info("Order created",
		slog.String("checkout_id", checkout.ID),
		slog.String("payment_order_id", order.RazorpayOrderID),
		slog.Float64("amount", order.Amount),
	)

	return clone(checkout), nil
}

// RequestPayment hands the payment order to the widget.
func (srv *checkoutService) RequestPayment(ctx context.Context, checkoutID string) (*entity.Checkout, error) {
	entry, err := srv.entry(checkoutID)
	if err != nil {
		return nil, err
	}

	checkout := entry.lock()
	if checkout.State != entity.CheckoutOrderCreated || checkout.Payment == nil {
		defer entry.unlock()

		return clone(checkout), transitionError(checkout, "request payment")
	}
	checkout.State = entity.CheckoutPaymentPending
	request := entity.PaymentRequest{
		Order:   *checkout.Payment,
		Prefill: srv.prefill(checkout),
	}
	entry.unlock()

	// unlocked: the widget may call back before Open returns
	callbacks := service.PaymentCallbacks{
		OnSuccess: func(ctx context.Context, confirmation entity.PaymentConfirmation) {
			if _, err := srv.ConfirmPayment(ctx, checkoutID, confirmation); err != nil {
				srv.log(ctx).Warn("Payment confirmation rejected", slog.String("checkout_id", checkoutID), slog.Any("error", err))
			}
		},
		OnDismiss: func(ctx context.Context) {
			if _, err := srv.Dismiss(ctx, checkoutID); err != nil {
				srv.log(ctx).Warn("Payment dismissal rejected", slog.String("checkout_id", checkoutID), slog.Any("error", err))
			}
		},
	}

	if err := srv.widget.Open(ctx, checkoutID, request, callbacks); err != nil {
		checkout := entry.lock()
		defer entry.unlock()

		if checkout.State == entity.CheckoutPaymentPending {
			srv.fail(ctx, checkout, domainerrors.ErrPaymentFailed, err)
		}

		return clone(checkout), nil
	}

	return srv.Get(ctx, checkoutID)
}

// ConfirmPayment verifies the payment remotely.
func (srv *checkoutService) ConfirmPayment(
	ctx context.Context,
	checkoutID string,
	confirmation entity.PaymentConfirmation,
) (*entity.Checkout, error) {
	ctx = deliverycontext.Detach(ctx)

	entry, err := srv.entry(checkoutID)
	if err != nil {
		return nil, err
	}
	checkout := entry.lock()
	defer entry.unlock()

	if checkout.State != entity.CheckoutPaymentPending {
		return clone(checkout), transitionError(checkout, "confirm payment")
	}

	if confirmation.RazorpayOrderID == "" {
		confirmation.RazorpayOrderID = checkout.Payment.RazorpayOrderID
	}
	if confirmation.RazorpayOrderID != checkout.Payment.RazorpayOrderID {
		srv.fail(ctx, checkout, domainerrors.ErrPaymentFailed, errors.Errorf(
			"confirmation for payment order %s does not match %s",
			confirmation.RazorpayOrderID, checkout.Payment.RazorpayOrderID,
		))

		return clone(checkout), nil
	}

	if err := srv.orders.VerifyPayment(ctx, srv.session.Credential(), &confirmation); err != nil {
		srv.fail(ctx, checkout, domainerrors.ErrPaymentFailed, err)

		return clone(checkout), nil
	}

	checkout.State = entity.CheckoutPaymentSucceeded
	checkout.Next = entity.RouteOrderStatus

	if !checkout.IsRetry() {
		// fresh order: start over with an empty cart, no notice
		if _, err := srv.cart.ClearCart(ctx); err != nil {
			srv.log(ctx).Warn("Failed to clear cart after payment", slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Payment verified",
		slog.String("checkout_id", checkout.ID),
		slog.String("payment_id", confirmation.RazorpayPaymentID),
		slog.Bool("retry", checkout.IsRetry()),
	)

	return clone(checkout), nil
}

// Dismiss cancels a pending payment without touching the cart.
func (srv *checkoutService) Dismiss(ctx context.Context, checkoutID string) (*entity.Checkout, error) {
	entry, err := srv.entry(checkoutID)
	if err != nil {
		return nil, err
	}
	checkout := entry.lock()
	defer entry.unlock()

	if checkout.State != entity.CheckoutPaymentPending {
		return clone(checkout), transitionError(checkout, "dismiss payment")
	}

	checkout.State = entity.CheckoutPaymentCancelled
	checkout.Next = checkout.FallbackRoute()
	checkout.FailureMsg = domainerrors.ErrPaymentCancelled.Message()
	srv.log(ctx).Info("Payment dismissed", slog.String("checkout_id", checkout.ID))

	return clone(checkout), nil
}

// RetryPayment starts a checkout at OrderCreated for an existing order.
func (srv *checkoutService) RetryPayment(ctx context.Context, orderID string) (*entity.Checkout, error) {
	ctx = deliverycontext.Detach(ctx)

	credential := srv.session.Credential()
	if credential == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if orderID == "" {
		return nil, domainerrors.NewValidationError(map[string]string{"orderId": "Order is required"})
	}

	order, err := srv.orders.RetryPayment(ctx, credential, orderID)

	checkout := &entity.Checkout{
		ID:           uuid.NewString(),
		State:        entity.CheckoutOrderCreated,
		RetryOrderID: orderID,
		Payment:      order,
	}
	if err != nil {
		srv.fail(ctx, checkout, domainerrors.ErrPaymentFailed, err)
	} else {
		srv.log(ctx).Info("Payment retry prepared",
			slog.String("checkout_id", checkout.ID),
			slog.String("order_id", orderID),
		)
	}
	srv.put(checkout)

	return clone(checkout), nil
}

// Get returns a checkout by id.
func (srv *checkoutService) Get(_ context.Context, checkoutID string) (*entity.Checkout, error) {
	entry, err := srv.entry(checkoutID)
	if err != nil {
		return nil, err
	}
	checkout := entry.lock()
	defer entry.unlock()

	return clone(checkout), nil
}

func (srv *checkoutService) fail(ctx context.Context, checkout *entity.Checkout, kind *domainerrors.BaseError, cause error) {
	checkout.State = entity.CheckoutPaymentFailed
	checkout.Next = checkout.FallbackRoute()
	checkout.FailureMsg = kind.Message()
	if remote, ok := domainerrors.AsRemote(cause); ok && remote.ServerMessage != "" {
		checkout.FailureMsg = remote.ServerMessage
	} else if domainerrors.IsTransport(cause) {
		checkout.FailureMsg = domainerrors.UserMessage(cause)
	}

	srv.log(ctx).Warn("Checkout failed",
		slog.String("checkout_id", checkout.ID),
		slog.String("code", kind.ErrorCode()),
		slog.String("next", string(checkout.Next)),
		slog.Any("error", cause),
	)
}

func (srv *checkoutService) prefill(checkout *entity.Checkout) entity.PaymentPrefill {
	if !checkout.IsRetry() {
		return entity.PaymentPrefill{
			Name:    checkout.Details.Name,
			Email:   checkout.Details.Email,
			Contact: checkout.Details.Phone,
		}
	}

	user := srv.session.Session().User
	if user == nil {
		return entity.PaymentPrefill{}
	}

	return entity.PaymentPrefill{Name: user.Name, Email: user.Email, Contact: user.Phone}
}

// put stores a new checkout and evicts those finished longer than the retention.
func (srv *checkoutService) put(checkout *entity.Checkout) {
	entry := &checkoutEntry{checkout: checkout, clock: srv.now}
	entry.markFinished()
	cutoff := srv.now().Add(-finishedCheckoutRetention)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for id, e := range srv.checkouts {
		if e.expired(cutoff) {
			delete(srv.checkouts, id)
		}
	}
	srv.checkouts[checkout.ID] = entry
}

func (srv *checkoutService) entry(checkoutID string) (*checkoutEntry, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	entry, ok := srv.checkouts[checkoutID]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails("checkout " + checkoutID))
	}

	return entry, nil
}

func transitionError(checkout *entity.Checkout, step string) error {
	return errors.WithStack(domainerrors.ErrCheckoutState.WithDetails(
		"cannot " + step + " while checkout is " + string(checkout.State),
	))
}

func clone(checkout *entity.Checkout) *entity.Checkout {
	c := *checkout
	if checkout.Payment != nil {
		payment := *checkout.Payment
		c.Payment = &payment
	}

	return &c
}
