package handler

import (
	"log/slog"
	"strconv"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the /api/cart routes.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest is the body of POST /api/cart.
type AddToCartRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

// RemoveFromCartRequest is the body of DELETE /api/cart. A missing productId clears the cart.
type RemoveFromCartRequest struct {
	ProductID *int64 `json:"productId"`
}

// UpdateQuantityRequest is the body of PUT /api/cart/:id.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

func (h *CartHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	lines, err := h.cartUC.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toCartResponse(lines), "")
}

func (h *CartHandler) Add(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lines, err := h.cartUC.Add(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toCartResponse(lines), "Product added to cart")
}

func (h *CartHandler) Remove(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	var req RemoveFromCartRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
		}
	}

	lines, err := h.cartUC.Remove(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toCartResponse(lines), "Cart updated")
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid product id"))
	}

	var req UpdateQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lines, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, productID, *req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toCartResponse(lines), "Cart updated")
}
