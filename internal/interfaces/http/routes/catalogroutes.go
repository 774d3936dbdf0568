package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/interfaces/http/handlers"
)

// CatalogRouteConfig holds dependencies for public catalog routes.
type CatalogRouteConfig struct {
	CatalogHandler *handlers.CatalogHandler
}

// SetupCatalogRoutes configures category and product browsing routes.
func SetupCatalogRoutes(api *gin.RouterGroup, cfg *CatalogRouteConfig) {
	api.GET("/categories", cfg.CatalogHandler.ListCategories)

	products := api.Group("/products")
	{
		products.GET("", cfg.CatalogHandler.ListProducts)
		products.GET("/:id", cfg.CatalogHandler.GetProduct)
	}
}
