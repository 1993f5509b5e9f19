package handler

import (
	"log/slog"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CouponHandlerParams holds dependencies for CouponHandler, injected by Fx.
type CouponHandlerParams struct {
	fx.In

	CouponUC usecase.CouponUsecase
	Logger   *slog.Logger
}

// CouponHandler serves the /api/coupons routes.
type CouponHandler struct {
	couponUC usecase.CouponUsecase
	logger   *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler.
func NewCouponHandler(params CouponHandlerParams) *CouponHandler {
	return &CouponHandler{
		couponUC: params.CouponUC,
		logger:   params.Logger,
	}
}

// ValidateCouponRequest is the body of POST /api/coupons/validate.
type ValidateCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// GetCoupon returns the caller's active coupon, if any.
func (h *CouponHandler) GetCoupon(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	coupon, err := h.couponUC.ActiveCoupon(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toCouponResponse(coupon), "")
}

// ValidateCoupon checks a code against the caller's coupons.
func (h *CouponHandler) ValidateCoupon(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	var req ValidateCouponRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	coupon, err := h.couponUC.ValidateCoupon(c.Request().Context(), userID, req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toCouponResponse(coupon), "Coupon is valid")
}
