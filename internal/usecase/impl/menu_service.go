package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	api    service.MenuAPI
	logger *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(api service.MenuAPI, logger *slog.Logger) usecase.MenuUsecase {
	return &menuService{api: api, logger: logger}
}

// Browse lists menu items matching the filter. The backend only serves active items.
func (srv *menuService) Browse(ctx context.Context, filter entity.MenuFilter) ([]*entity.CatalogItem, error) {
	items, err := srv.api.Filter(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu")
	}

	return items, nil
}

func (srv *menuService) Popular(ctx context.Context) ([]*entity.CatalogItem, error) {
	items, err := srv.api.Popular(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load popular items")
	}

	return items, nil
}

func (srv *menuService) Item(ctx context.Context, id string) (*entity.CatalogItem, error) {
	item, err := srv.api.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to load menu item")
	}

	return item, nil
}
