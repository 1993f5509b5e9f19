package handler

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCouponHandler(t *testing.T) (*testEnv, *mockUC.MockCouponUsecase) {
	t.Helper()

	env := newTestEnv(t)
	couponUC := mockUC.NewMockCouponUsecase(t)
	h := NewCouponHandler(CouponHandlerParams{CouponUC: couponUC, Logger: env.logger})

	g := env.e.Group("/api/coupons", env.auth.Authenticate)
	g.GET("", h.GetCoupon)
	g.POST("/validate", h.ValidateCoupon)

	return env, couponUC
}

func TestCouponHandler_GetCoupon(t *testing.T) {
	t.Run("active coupon", func(t *testing.T) {
		env, couponUC := setupCouponHandler(t)

		couponUC.EXPECT().ActiveCoupon(mock.Anything, env.user.ID).Return(&entity.Coupon{
			Code:               "GIFT1A2B3C",
			DiscountPercentage: 10,
			ExpiresAt:          time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			IsActive:           true,
		}, nil)

		rec := env.doAuthed(http.MethodGet, "/api/coupons", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, decodeResponse(t, rec))
		assert.Equal(t, "GIFT1A2B3C", data["code"])
		assert.InDelta(t, 10, data["discountPercentage"], 0)
		assert.Equal(t, "2030-01-01T00:00:00Z", data["expirationDate"])
	})

	t.Run("no coupon", func(t *testing.T) {
		env, couponUC := setupCouponHandler(t)

		couponUC.EXPECT().ActiveCoupon(mock.Anything, env.user.ID).Return(nil, nil)

		rec := env.doAuthed(http.MethodGet, "/api/coupons", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, decodeResponse(t, rec).Data)
	})
}

func TestCouponHandler_ValidateCoupon(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		env, couponUC := setupCouponHandler(t)

		couponUC.EXPECT().ValidateCoupon(mock.Anything, env.user.ID, "SAVE10").Return(&entity.Coupon{
			Code:               "SAVE10",
			DiscountPercentage: 10,
		}, nil)

		rec := env.doAuthed(http.MethodPost, "/api/coupons/validate", `{"code":"SAVE10"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Coupon is valid", decodeResponse(t, rec).Message)
	})

	t.Run("expired", func(t *testing.T) {
		env, couponUC := setupCouponHandler(t)

		couponUC.EXPECT().ValidateCoupon(mock.Anything, env.user.ID, "OLD").
			Return(nil, errors.WithStack(domainerrors.ErrCouponExpired))

		rec := env.doAuthed(http.MethodPost, "/api/coupons/validate", `{"code":"OLD"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "COUPON_EXPIRED", decodeResponse(t, rec).Error.Code)
	})

	t.Run("missing code", func(t *testing.T) {
		env, _ := setupCouponHandler(t)

		rec := env.doAuthed(http.MethodPost, "/api/coupons/validate", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)
	env.e.GET("/health", HealthCheck)

	rec := env.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
	assert.Equal(t, "ok", dataMap(t, decodeResponse(t, rec))["status"])
}
