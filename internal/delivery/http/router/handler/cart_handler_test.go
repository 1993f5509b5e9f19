package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartHandler(t *testing.T) (*testEnv, *mockUC.MockCartUsecase) {
	t.Helper()

	env := newTestEnv(t)
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: env.logger})

	g := env.e.Group("/api/cart", env.auth.Authenticate)
	g.GET("", h.List)
	g.POST("", h.Add)
	g.DELETE("", h.Remove)
	g.PUT("/:id", h.UpdateQuantity)

	return env, cartUC
}

func sampleCart() []*entity.CartLine {
	return []*entity.CartLine{{
		Product: entity.Product{
			ID:            3,
			Name:          "Canvas Tote",
			Description:   "Heavy cotton",
			PriceCents:    1999,
			StockQuantity: 12,
			ImageURL:      "https://cdn/tote.png",
		},
		Quantity: 2,
	}}
}

func TestCartHandler_List(t *testing.T) {
	env, cartUC := setupCartHandler(t)

	cartUC.EXPECT().List(mock.Anything, env.user.ID).Return(sampleCart(), nil)

	rec := env.doAuthed(http.MethodGet, "/api/cart", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	lines, ok := decodeResponse(t, rec).Data.([]any)
	require.True(t, ok)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	assert.InDelta(t, 3, line["product_id"], 0)
	assert.Equal(t, "Canvas Tote", line["product_name"])
	assert.InDelta(t, 19.99, line["price"], 0.0001)
	assert.InDelta(t, 2, line["quantity"], 0)
}

func TestCartHandler_ListEmptyIsArray(t *testing.T) {
	env, cartUC := setupCartHandler(t)

	cartUC.EXPECT().List(mock.Anything, env.user.ID).Return(nil, nil)

	rec := env.doAuthed(http.MethodGet, "/api/cart", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestCartHandler_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env, cartUC := setupCartHandler(t)

		cartUC.EXPECT().Add(mock.Anything, env.user.ID, int64(3)).Return(sampleCart(), nil)

		rec := env.doAuthed(http.MethodPost, "/api/cart", `{"productId":3}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Product added to cart", decodeResponse(t, rec).Message)
	})

	t.Run("invalid product id", func(t *testing.T) {
		env, _ := setupCartHandler(t)

		rec := env.doAuthed(http.MethodPost, "/api/cart", `{"productId":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeResponse(t, rec).Error.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		env, cartUC := setupCartHandler(t)

		cartUC.EXPECT().Add(mock.Anything, env.user.ID, int64(99)).
			Return(nil, errors.WithStack(domainerrors.ErrProductNotFound))

		rec := env.doAuthed(http.MethodPost, "/api/cart", `{"productId":99}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeResponse(t, rec).Error.Code)
	})
}

func TestCartHandler_Remove(t *testing.T) {
	t.Run("without body clears the cart", func(t *testing.T) {
		env, cartUC := setupCartHandler(t)

		cartUC.EXPECT().Remove(mock.Anything, env.user.ID, (*int64)(nil)).Return(nil, nil)

		rec := env.doAuthed(http.MethodDelete, "/api/cart", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("with product id removes one line", func(t *testing.T) {
		env, cartUC := setupCartHandler(t)

		cartUC.EXPECT().Remove(mock.Anything, env.user.ID, mock.MatchedBy(func(productID *int64) bool {
			return productID != nil && *productID == 3
		})).Return(nil, nil)

		rec := env.doAuthed(http.MethodDelete, "/api/cart", `{"productId":3}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	t.Run("zero removes the line", func(t *testing.T) {
		env, cartUC := setupCartHandler(t)

		cartUC.EXPECT().UpdateQuantity(mock.Anything, env.user.ID, int64(3), 0).Return(nil, nil)

		rec := env.doAuthed(http.MethodPut, "/api/cart/3", `{"quantity":0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("sets quantity", func(t *testing.T) {
		env, cartUC := setupCartHandler(t)

		cartUC.EXPECT().UpdateQuantity(mock.Anything, env.user.ID, int64(3), 5).Return(sampleCart(), nil)

		rec := env.doAuthed(http.MethodPut, "/api/cart/3", `{"quantity":5}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name   string
		target string
		body   string
	}{
		{name: "missing quantity", target: "/api/cart/3", body: `{}`},
		{name: "negative quantity", target: "/api/cart/3", body: `{"quantity":-1}`},
		{name: "non numeric id", target: "/api/cart/abc", body: `{"quantity":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _ := setupCartHandler(t)

			rec := env.doAuthed(http.MethodPut, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeResponse(t, rec).Error.Code)
		})
	}

	t.Run("line not in cart", func(t *testing.T) {
		env, cartUC := setupCartHandler(t)

		cartUC.EXPECT().UpdateQuantity(mock.Anything, env.user.ID, int64(8), 1).
			Return(nil, errors.WithStack(domainerrors.ErrCartItemNotFound))

		rec := env.doAuthed(http.MethodPut, "/api/cart/8", `{"quantity":1}`)

		assert.Equal(t, "CART_ITEM_NOT_FOUND", decodeResponse(t, rec).Error.Code)
	})
}
