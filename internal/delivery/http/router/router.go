// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CheckoutHandler *handler.CheckoutHandler
	CouponHandler   *handler.CouponHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Recorder
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	checkoutHandler *handler.CheckoutHandler
	couponHandler   *handler.CouponHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Recorder
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		checkoutHandler: params.CheckoutHandler,
		couponHandler:   params.CouponHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if metrics.Enabled(r.config) && r.metrics != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api")
	authenticate := r.authMiddleware.Authenticate

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.PUT("/reset-password", r.authHandler.ResetPassword)

		authGroup.GET("/profile", r.authHandler.Profile, authenticate)
		authGroup.GET("/user-profile", r.authHandler.GetUserProfile, authenticate)
		authGroup.PUT("/update-user-profile", r.authHandler.UpdateUserProfile, authenticate)
	}

	paymentsGroup := api.Group("/payments", authenticate)
	{
		paymentsGroup.POST("/create-checkout-session", r.checkoutHandler.CreateCheckoutSession)
		paymentsGroup.POST("/checkout-success", r.checkoutHandler.CheckoutSuccess)
	}

	ordersGroup := api.Group("/orders", authenticate)
	{
		ordersGroup.GET("/:id/receipt-qr", r.orderHandler.ReceiptQR)
	}

	couponsGroup := api.Group("/coupons", authenticate)
	{
		couponsGroup.GET("", r.couponHandler.GetCoupon)
		couponsGroup.POST("/validate", r.couponHandler.ValidateCoupon)
	}

	cartGroup := api.Group("/cart", authenticate)
	{
		cartGroup.GET("", r.cartHandler.List)
		cartGroup.POST("", r.cartHandler.Add)
		cartGroup.DELETE("", r.cartHandler.Remove)
		cartGroup.PUT("/:id", r.cartHandler.UpdateQuantity)
	}
}
