package remote

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type cartAPI struct {
	client *Client
}

// NewCartAPI creates the remote cart adapter.
func NewCartAPI(client *Client) service.CartAPI {
	return &cartAPI{client: client}
}

// GetItems fetches the raw cart payload, dangling lines included.
func (a *cartAPI) GetItems(ctx context.Context, credential string) (*entity.CartPayload, error) {
	out := entity.EmptyCartPayload()
	if err := a.client.do(ctx, request{
		method:     http.MethodGet,
		path:       "/cart/getItems",
		credential: credential,
	}, &out); err != nil {
		return nil, err
	}
	if out.Data.FoodItems == nil {
		out.Data.FoodItems = []entity.CartLine{}
	}

	return &out, nil
}

func (a *cartAPI) AddItem(ctx context.Context, credential string, input *entity.AddItemInput) error {
	return a.client.do(ctx, request{
		method:     http.MethodPost,
		path:       "/cart/addItem",
		credential: credential,
		body:       input,
	}, nil)
}

func (a *cartAPI) UpdateQuantity(ctx context.Context, credential, itemID string, action entity.QuantityAction) error {
	return a.client.do(ctx, request{
		method:     http.MethodPut,
		path:       "/cart/update/" + url.PathEscape(itemID),
		credential: credential,
		body:       map[string]entity.QuantityAction{"action": action},
	}, nil)
}

func (a *cartAPI) DeleteItem(ctx context.Context, credential, itemID string) error {
	return a.client.do(ctx, request{
		method:     http.MethodDelete,
		path:       "/cart/deleteItem/" + url.PathEscape(itemID),
		credential: credential,
	}, nil)
}

func (a *cartAPI) Clear(ctx context.Context, credential string) error {
	return a.client.do(ctx, request{
		method:     http.MethodDelete,
		path:       "/cart/clear",
		credential: credential,
	}, nil)
}
