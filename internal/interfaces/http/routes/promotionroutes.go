package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/interfaces/http/handlers"
)

// PromotionRouteConfig holds dependencies for public promotion routes.
type PromotionRouteConfig struct {
	PromotionHandler *handlers.PromotionHandler
}

// SetupPromotionRoutes configures promotion code validation.
func SetupPromotionRoutes(api *gin.RouterGroup, cfg *PromotionRouteConfig) {
	api.POST("/promotions/validate", cfg.PromotionHandler.ValidatePromotion)
}
