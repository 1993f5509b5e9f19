package handler

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves the /api/payments routes.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler.
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutProductRequest is one cart line submitted for payment. Fields are
// checked by the checkout flow so malformed lines report ErrInvalidProducts.
type CheckoutProductRequest struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
}

// CreateCheckoutSessionRequest is the body of POST /api/payments/create-checkout-session.
type CreateCheckoutSessionRequest struct {
	UserID     string                   `json:"userId"`
	Products   []CheckoutProductRequest `json:"products"`
	CouponCode string                   `json:"couponCode"`
}

// CheckoutSessionResponse identifies the hosted payment page.
type CheckoutSessionResponse struct {
	ID          string  `json:"id"`
	TotalAmount float64 `json:"totalAmount"`
}

// CheckoutSuccessRequest is the body of POST /api/payments/checkout-success.
type CheckoutSuccessRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// CheckoutSuccessResponse points at the confirmed order.
type CheckoutSuccessResponse struct {
	OrderID string `json:"orderId"`
}

// CreateCheckoutSession opens a payment session for the caller's cart.
func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	var req CreateCheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidProducts.WithDetails("malformed request body"))
	}
	// The body may name a user, but only the caller can be charged.
	if req.UserID != "" && !strings.EqualFold(req.UserID, userID.String()) {
		return errors.WithStack(domainerrors.ErrForbidden.WithDetails("userId does not match the signed-in user"))
	}

	products := make([]usecase.CheckoutProductInput, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, usecase.CheckoutProductInput{
			ID:       p.ProductID,
			Name:     p.ProductName,
			Image:    p.ImageURL,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}

	output, err := h.checkoutUC.CreateCheckoutSession(c.Request().Context(), &usecase.CreateCheckoutSessionInput{
		UserID:     userID,
		Products:   products,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, &CheckoutSessionResponse{
		ID:          output.SessionID,
		TotalAmount: toDollars(output.TotalCents),
	}, "Checkout session created")
}

// CheckoutSuccess confirms a paid session and returns its order.
func (h *CheckoutHandler) CheckoutSuccess(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	var req CheckoutSuccessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.checkoutUC.CheckoutSuccess(c.Request().Context(), userID, req.SessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Payment successful, order created, and coupon deactivated if used."
	if output.AlreadyConfirmed {
		message = "Order already confirmed"
	}

	return response.OK(c, &CheckoutSuccessResponse{OrderID: output.OrderID.String()}, message)
}
