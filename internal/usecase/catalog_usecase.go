// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase is the admin catalog manager.
type CatalogUsecase interface {
	// List fetches every item and applies the query client-side.
	List(ctx context.Context, query entity.CatalogQuery) ([]*entity.CatalogItem, error)
	Create(ctx context.Context, input *entity.CatalogItemInput) (*entity.CatalogItem, error)
	Update(ctx context.Context, id string, input *entity.CatalogItemInput) (*entity.CatalogItem, error)
	// Delete is permanent and is refused unless confirmed is true.
	Delete(ctx context.Context, id string, confirmed bool) error
	Deactivate(ctx context.Context, id string) error
	Reactivate(ctx context.Context, id string) error
	// ValidateField checks a single form field; "" means valid.
	ValidateField(field string, input *entity.CatalogItemInput) string
}

// MenuUsecase is the public menu browser.
type MenuUsecase interface {
	Browse(ctx context.Context, filter entity.MenuFilter) ([]*entity.CatalogItem, error)
	Popular(ctx context.Context) ([]*entity.CatalogItem, error)
	Item(ctx context.Context, id string) (*entity.CatalogItem, error)
}
