package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/interfaces/http/handlers"
	"github.com/localshop/storefront/internal/interfaces/http/middleware"
)

// OrderRouteConfig holds dependencies for order routes.
type OrderRouteConfig struct {
	OrderHandler   *handlers.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupOrderRoutes configures checkout and order lookup routes.
func SetupOrderRoutes(api *gin.RouterGroup, cfg *OrderRouteConfig) {
	orders := api.Group("/orders")
	{
		// Guests may check out; a valid token links the order to the user.
		orders.POST("", cfg.RateLimiter.Limit("checkout"), cfg.AuthMiddleware.OptionalAuth(), cfg.OrderHandler.CreateOrder)
		orders.GET("", cfg.AuthMiddleware.RequireAuth(), cfg.OrderHandler.ListMyOrders)
		orders.GET("/:id", cfg.OrderHandler.GetOrder)
	}
}
