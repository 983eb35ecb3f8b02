package entity

// CheckoutState is a step of the checkout state machine.
type CheckoutState string

const (
	CheckoutIdle             CheckoutState = "idle"
	CheckoutDetailsCollected CheckoutState = "details_collected"
	CheckoutOrderCreated     CheckoutState = "order_created"
	CheckoutPaymentPending   CheckoutState = "payment_pending"
	CheckoutPaymentSucceeded CheckoutState = "payment_succeeded"
	CheckoutPaymentFailed    CheckoutState = "payment_failed"
	CheckoutPaymentCancelled CheckoutState = "payment_cancelled"
)

// IsTerminal reports whether no further transition is possible.
func (s CheckoutState) IsTerminal() bool {
	switch s {
	case CheckoutPaymentSucceeded, CheckoutPaymentFailed, CheckoutPaymentCancelled:
		return true
	default:
		return false
	}
}

// Route is the screen the UI should move to after a checkout step.
type Route string

const (
	RouteNone        Route = ""
	RouteLogin       Route = "/login"
	RouteHome        Route = "/"
	RouteAdmin       Route = "/admin"
	RouteCart        Route = "/cart"
	RouteProfile     Route = "/profile"
	RouteOrderStatus Route = "/order-status"
)

// Checkout tracks one payment attempt: a new order from the cart, or a retry
// of an existing order (which skips delivery details and never touches the cart).
type Checkout struct {
	ID           string          `json:"id"`
	State        CheckoutState   `json:"state"`
	Details      DeliveryDetails `json:"details"`
	Notes        string          `json:"notes,omitempty"`
	RetryOrderID string          `json:"retryOrderId,omitempty"`
	Payment      *PaymentOrder   `json:"payment,omitempty"`
	Next         Route           `json:"next,omitempty"`
	FailureMsg   string          `json:"failure,omitempty"`
}

// IsRetry reports whether the checkout re-enters payment for a placed order.
func (c *Checkout) IsRetry() bool {
	return c.RetryOrderID != ""
}

// FallbackRoute is where failures and cancellations return to.
func (c *Checkout) FallbackRoute() Route {
	if c.IsRetry() {
		return RouteProfile
	}

	return RouteCart
}
