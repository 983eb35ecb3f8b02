package remote

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

type foodListEnvelope struct {
	Food []*entity.CatalogItem `json:"food"`
}

type foodEnvelope struct {
	Message string              `json:"message"`
	Food    *entity.CatalogItem `json:"food"`
}

type menuAPI struct {
	client *Client
}

// NewMenuAPI creates the public menu adapter.
func NewMenuAPI(client *Client) service.MenuAPI {
	return &menuAPI{client: client}
}

// Filter lists items of a category ("all" when empty) with optional type and search.
func (a *menuAPI) Filter(ctx context.Context, filter entity.MenuFilter) ([]*entity.CatalogItem, error) {
	category := strings.TrimSpace(filter.Category)
	if category == "" {
		category = "all"
	}

	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var out foodListEnvelope
	if err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/foodItems/filter/" + url.PathEscape(category),
		query:  query,
	}, &out); err != nil {
		return nil, err
	}

	return out.Food, nil
}

func (a *menuAPI) Popular(ctx context.Context) ([]*entity.CatalogItem, error) {
	var out foodListEnvelope
	if err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/foodItems/popular/get",
	}, &out); err != nil {
		return nil, err
	}

	return out.Food, nil
}

func (a *menuAPI) GetByID(ctx context.Context, id string) (*entity.CatalogItem, error) {
	var out foodEnvelope
	if err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/foodItems/getItemId/" + url.PathEscape(id),
	}, &out); err != nil {
		return nil, err
	}
	if out.Food == nil {
		return nil, errors.Errorf("item %s missing from response", id)
	}

	return out.Food, nil
}

type adminCatalogAPI struct {
	client *Client
}

// NewAdminCatalogAPI creates the admin menu CRUD adapter.
func NewAdminCatalogAPI(client *Client) service.AdminCatalogAPI {
	return &adminCatalogAPI{client: client}
}

func (a *adminCatalogAPI) ListAll(ctx context.Context, credential string) ([]*entity.CatalogItem, error) {
	var out foodListEnvelope
	if err := a.client.do(ctx, request{
		method:     http.MethodGet,
		path:       "/foodItems/admin/all",
		credential: credential,
	}, &out); err != nil {
		return nil, err
	}

	return out.Food, nil
}

func (a *adminCatalogAPI) Create(ctx context.Context, credential string, input *entity.CatalogItemInput) (*entity.CatalogItem, error) {
	var out foodEnvelope
	if err := a.client.do(ctx, request{
		method:     http.MethodPost,
		path:       "/foodItems/admin/create",
		credential: credential,
		body:       input,
	}, &out); err != nil {
		return nil, err
	}

	return out.Food, nil
}

func (a *adminCatalogAPI) Update(ctx context.Context, credential, id string, input *entity.CatalogItemInput) (*entity.CatalogItem, error) {
	var out foodEnvelope
	if err := a.client.do(ctx, request{
		method:     http.MethodPut,
		path:       "/foodItems/admin/update/" + url.PathEscape(id),
		credential: credential,
		body:       input,
	}, &out); err != nil {
		return nil, err
	}

	return out.Food, nil
}

func (a *adminCatalogAPI) Delete(ctx context.Context, credential, id string) error {
	return a.client.do(ctx, request{
		method:     http.MethodDelete,
		path:       "/foodItems/admin/delete/" + url.PathEscape(id),
		credential: credential,
	}, nil)
}

func (a *adminCatalogAPI) Deactivate(ctx context.Context, credential, id string) error {
	return a.client.do(ctx, request{
		method:     http.MethodPatch,
		path:       "/foodItems/admin/deactivate/" + url.PathEscape(id),
		credential: credential,
	}, nil)
}

func (a *adminCatalogAPI) Reactivate(ctx context.Context, credential, id string) error {
	return a.client.do(ctx, request{
		method:     http.MethodPatch,
		path:       "/foodItems/admin/reactivate/" + url.PathEscape(id),
		credential: credential,
	}, nil)
}
