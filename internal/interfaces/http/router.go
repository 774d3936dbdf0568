package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/localshop/storefront/docs"
	"github.com/localshop/storefront/internal/infrastructure/config"
	"github.com/localshop/storefront/internal/interfaces/http/middleware"
	"github.com/localshop/storefront/internal/interfaces/http/routes"
	"github.com/localshop/storefront/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: container}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Metrics(r.metrics.HTTP()))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(append([]string{cfg.Payment.FrontendURL}, cfg.Server.AllowedOrigins...)...))

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	if cfg.Server.Mode != gin.ReleaseMode {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupCatalogRoutes(api, &routes.CatalogRouteConfig{
		CatalogHandler: r.hdlrs.catalogHandler,
	})

	routes.SetupOrderRoutes(api, &routes.OrderRouteConfig{
		OrderHandler:   r.hdlrs.orderHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupPromotionRoutes(api, &routes.PromotionRouteConfig{
		PromotionHandler: r.hdlrs.promotionHandler,
	})

	routes.SetupPaymentRoutes(r.engine, api, &routes.PaymentRouteConfig{
		PaymentHandler: r.hdlrs.paymentHandler,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		CatalogHandler:       r.hdlrs.catalogHandler,
		OrderHandler:         r.hdlrs.orderHandler,
		PromotionHandler:     r.hdlrs.promotionHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// StartScheduler starts the background jobs registered on the container.
func (r *Router) StartScheduler() {
	r.schedulerManager.Start()
}
