package http

import (
	"github.com/localshop/storefront/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler      *handlers.AuthHandler
	catalogHandler   *handlers.CatalogHandler
	orderHandler     *handlers.OrderHandler
	promotionHandler *handlers.PromotionHandler
	paymentHandler   *handlers.PaymentHandler
	healthHandler    *handlers.HealthHandler
}
