package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// OrderHandler serves the /api/orders routes.
type OrderHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ReceiptQR renders the receipt QR code of one of the caller's orders as PNG.
func (h *OrderHandler) ReceiptQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	png, err := h.profileUC.ReceiptQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}
