package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/validation"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the admin catalog manager.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

func (h *CatalogHandler) List(c echo.Context) error {
	items, err := h.catalog.List(c.Request().Context(), entity.CatalogQuery{
		Status: entity.StatusFilter(c.QueryParam("status")),
		Search: c.QueryParam("search"),
		Sort:   entity.SortOrder(c.QueryParam("sort")),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, items)
}

func (h *CatalogHandler) Create(c echo.Context) error {
	var input entity.CatalogItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid menu item input")
	}

	item, err := h.catalog.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created")
}

func (h *CatalogHandler) Update(c echo.Context) error {
	var input entity.CatalogItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid menu item input")
	}

	item, err := h.catalog.Update(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated")
}

// Delete needs ?confirm=true; deletion cannot be undone.
func (h *CatalogHandler) Delete(c echo.Context) error {
	confirmed, _ := strconv.ParseBool(c.QueryParam("confirm"))

	if err := h.catalog.Delete(c.Request().Context(), c.Param("id"), confirmed); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item deleted")
}

func (h *CatalogHandler) Deactivate(c echo.Context) error {
	if err := h.catalog.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item deactivated")
}

func (h *CatalogHandler) Reactivate(c echo.Context) error {
	if err := h.catalog.Reactivate(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item reactivated")
}

// ValidateForm returns per-field messages for the form as typed so far.
// With ?field=x only that field is checked.
func (h *CatalogHandler) ValidateForm(c echo.Context) error {
	var input entity.CatalogItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid menu item input")
	}

	fields := validation.CatalogFields
	if field := c.QueryParam("field"); field != "" {
		fields = []string{field}
	}

	messages := make(map[string]string, len(fields))
	for _, field := range fields {
		messages[field] = h.catalog.ValidateField(field, &input)
	}

	return response.OK(c, messages)
}
