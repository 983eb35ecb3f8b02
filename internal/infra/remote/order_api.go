package remote

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

type orderAPI struct {
	client *Client
}

// NewOrderAPI creates the remote order and payment adapter.
func NewOrderAPI(client *Client) service.OrderAPI {
	return &orderAPI{client: client}
}

type paymentOrderEnvelope struct {
	Order *entity.PaymentOrder `json:"order"`
}

// Create places an order and returns the gateway payment order.
func (a *orderAPI) Create(ctx context.Context, credential string, input *service.CreateOrderInput) (*entity.PaymentOrder, error) {
	var out paymentOrderEnvelope
	if err := a.client.do(ctx, request{
		method:     http.MethodPost,
		path:       "/orders/create",
		credential: credential,
		body:       input,
	}, &out); err != nil {
		return nil, err
	}
	if out.Order == nil || out.Order.RazorpayOrderID == "" {
		return nil, errors.New("order response carries no payment order")
	}

	return out.Order, nil
}

// RetryPayment issues a fresh payment order for an existing order.
func (a *orderAPI) RetryPayment(ctx context.Context, credential, orderID string) (*entity.PaymentOrder, error) {
	var out paymentOrderEnvelope
	if err := a.client.do(ctx, request{
		method:     http.MethodPost,
		path:       "/orders/" + url.PathEscape(orderID) + "/retry-payment",
		credential: credential,
	}, &out); err != nil {
		return nil, err
	}
	if out.Order == nil || out.Order.RazorpayOrderID == "" {
		return nil, errors.New("retry response carries no payment order")
	}

	return out.Order, nil
}

// VerifyPayment confirms the widget's payment identifiers with the backend.
func (a *orderAPI) VerifyPayment(ctx context.Context, credential string, confirmation *entity.PaymentConfirmation) error {
	return a.client.do(ctx, request{
		method:     http.MethodPost,
		path:       "/orders/verify-payment",
		credential: credential,
		body:       confirmation,
	}, nil)
}
