package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler exposes the cart synchronizer.
type CartHandler struct {
	carts  usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(carts usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{carts: carts, logger: logger}
}

type cartView struct {
	Lines      []entity.CartLine `json:"lines"`
	Count      int               `json:"count"`
	Loading    bool              `json:"loading"`
	TotalPrice float64           `json:"totalPrice"`
}

func newCartView(s cart.State) cartView {
	return cartView{
		Lines:      s.Lines,
		Count:      s.Count,
		Loading:    s.Loading,
		TotalPrice: s.TotalPrice(),
	}
}

type quantityRequest struct {
	Action entity.QuantityAction `json:"action"`
}

// GetCart returns the local cart without a network call.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.OK(c, newCartView(h.carts.Snapshot()))
}

// Refresh refetches the cart from the backend.
func (h *CartHandler) Refresh(c echo.Context) error {
	state, err := h.carts.FetchCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newCartView(state))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var input entity.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid cart item input")
	}

	result, err := h.carts.AddItem(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Quantity updated"
	if result.IsNewItem {
		message = "Item added to cart"
	}

	return response.Success(c, http.StatusOK, result, message)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req quantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quantity input")
	}

	state, err := h.carts.UpdateQuantity(c.Request().Context(), c.Param("itemId"), req.Action)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newCartView(state))
}

func (h *CartHandler) DeleteItem(c echo.Context) error {
	state, err := h.carts.DeleteItem(c.Request().Context(), c.Param("itemId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartView(state), "Item removed from cart")
}

func (h *CartHandler) Clear(c echo.Context) error {
	state, err := h.carts.ClearCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartView(state), "Cart cleared")
}
