package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	api       service.AdminCatalogAPI
	session   usecase.SessionUsecase
	validator service.FormValidator
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	api service.AdminCatalogAPI,
	session usecase.SessionUsecase,
	validator service.FormValidator,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		api:       api,
		session:   session,
		validator: validator,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List fetches every item and filters, searches and sorts locally.
func (srv *catalogService) List(ctx context.Context, query entity.CatalogQuery) ([]*entity.CatalogItem, error) {
	credential, err := srv.adminCredential()
	if err != nil {
		return nil, err
	}

	items, err := srv.api.ListAll(ctx, credential)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog items")
	}

	return query.Apply(items), nil
}

// Create validates the form locally and creates the item.
func (srv *catalogService) Create(ctx context.Context, input *entity.CatalogItemInput) (*entity.CatalogItem, error) {
	credential, err := srv.adminCredential()
	if err != nil {
		return nil, err
	}
	if err := srv.validator.ValidateCatalogItem(input); err != nil {
		return nil, err
	}

	item, err := srv.api.Create(ctx, credential, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog item")
	}

	srv.log(ctx).Info("Catalog item created", slog.String("item_id", item.ID), slog.String("name", item.Name))

	return item, nil
}

// Update validates the form locally and updates the item.
func (srv *catalogService) Update(ctx context.Context, id string, input *entity.CatalogItemInput) (*entity.CatalogItem, error) {
	credential, err := srv.adminCredential()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, errors.WithStack(domainerrors.ErrCatalogItemNotFound)
	}
	if err := srv.validator.ValidateCatalogItem(input); err != nil {
		return nil, err
	}

	item, err := srv.api.Update(ctx, credential, id, input)
	if err != nil {
		return nil, notFoundOr(err, "failed to update catalog item")
	}

	srv.log(ctx).Info("Catalog item updated", slog.String("item_id", id))

	return item, nil
}

// Delete removes an item permanently once confirmed.
func (srv *catalogService) Delete(ctx context.Context, id string, confirmed bool) error {
	credential, err := srv.adminCredential()
	if err != nil {
		return err
	}
	if !confirmed {
		return errors.WithStack(domainerrors.ErrConfirmationRequired)
	}

	if err := srv.api.Delete(ctx, credential, id); err != nil {
		return notFoundOr(err, "failed to delete catalog item")
	}

	srv.log(ctx).Info("Catalog item deleted", slog.String("item_id", id))

	return nil
}

// Deactivate hides an item from the menu without deleting it.
func (srv *catalogService) Deactivate(ctx context.Context, id string) error {
	credential, err := srv.adminCredential()
	if err != nil {
		return err
	}

	if err := srv.api.Deactivate(ctx, credential, id); err != nil {
		return notFoundOr(err, "failed to deactivate catalog item")
	}

	srv.log(ctx).Info("Catalog item deactivated", slog.String("item_id", id))

	return nil
}

// Reactivate puts a deactivated item back on the menu.
func (srv *catalogService) Reactivate(ctx context.Context, id string) error {
	credential, err := srv.adminCredential()
	if err != nil {
		return err
	}

	if err := srv.api.Reactivate(ctx, credential, id); err != nil {
		return notFoundOr(err, "failed to reactivate catalog item")
	}

	srv.log(ctx).Info("Catalog item reactivated", slog.String("item_id", id))

	return nil
}

// ValidateField checks one form field.
func (srv *catalogService) ValidateField(field string, input *entity.CatalogItemInput) string {
	return srv.validator.ValidateCatalogField(field, input)
}

func (srv *catalogService) adminCredential() (string, error) {
	session := srv.session.Session()
	if !session.IsAuthenticated() {
		return "", errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if !session.User.IsAdmin() {
		return "", errors.WithStack(domainerrors.ErrForbidden)
	}

	return session.Credential, nil
}

func notFoundOr(err error, msg string) error {
	if remote, ok := domainerrors.AsRemote(err); ok && remote.Status == 404 {
		return errors.Wrap(domainerrors.ErrCatalogItemNotFound.WithDetails(remote.Error()), msg)
	}

	return errors.Wrap(err, msg)
}
