package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/interfaces/http/handlers"
	"github.com/localshop/storefront/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	RateLimiter    *middleware.RateLimiter
}

// SetupPaymentRoutes configures payment creation and the two VNPay callbacks.
// The callbacks are authenticated by their signature only.
func SetupPaymentRoutes(engine *gin.Engine, api *gin.RouterGroup, cfg *PaymentRouteConfig) {
	api.POST("/payments/vnpay", cfg.RateLimiter.Limit("payment"), cfg.PaymentHandler.CreateVNPayPayment)
	api.GET("/vnpay/ipn", cfg.PaymentHandler.VNPayIPN)

	engine.GET("/payment/vnpay-return", cfg.PaymentHandler.VNPayReturn)
}
