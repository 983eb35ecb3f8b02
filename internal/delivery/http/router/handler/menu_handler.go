package handler

import (
	"log/slog"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler serves the public menu.
type MenuHandler struct {
	menu   usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(menu usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{menu: menu, logger: logger}
}

func (h *MenuHandler) Browse(c echo.Context) error {
	items, err := h.menu.Browse(c.Request().Context(), entity.MenuFilter{
		Category: c.QueryParam("category"),
		Type:     c.QueryParam("type"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, items)
}

func (h *MenuHandler) Popular(c echo.Context) error {
	items, err := h.menu.Popular(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, items)
}

func (h *MenuHandler) Item(c echo.Context) error {
	item, err := h.menu.Item(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, item)
}
