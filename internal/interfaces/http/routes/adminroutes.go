package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/interfaces/http/handlers"
	"github.com/localshop/storefront/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin routes.
type AdminRouteConfig struct {
	CatalogHandler       *handlers.CatalogHandler
	OrderHandler         *handlers.OrderHandler
	PromotionHandler     *handlers.PromotionHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures back-office routes. Every route requires a
// session whose subject the policy enforcer allows for the path and method.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.RequirePolicy())
	{
		categories := admin.Group("/categories")
		{
			categories.POST("", cfg.CatalogHandler.CreateCategory)
			categories.POST("/reorder", cfg.CatalogHandler.ReorderCategories)
		}

		admin.POST("/products", cfg.CatalogHandler.CreateProduct)
		admin.POST("/orders/update-status", cfg.OrderHandler.UpdateOrderStatus)

		promotions := admin.Group("/promotions")
		{
			promotions.GET("", cfg.PromotionHandler.ListPromotions)
			promotions.POST("", cfg.PromotionHandler.CreatePromotion)
		}
	}
}
