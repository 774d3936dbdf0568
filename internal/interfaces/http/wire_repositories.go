package http

import (
	"gorm.io/gorm"

	"github.com/localshop/storefront/internal/domain/catalog"
	"github.com/localshop/storefront/internal/domain/order"
	"github.com/localshop/storefront/internal/domain/payment"
	"github.com/localshop/storefront/internal/domain/promotion"
	"github.com/localshop/storefront/internal/domain/user"
	"github.com/localshop/storefront/internal/infrastructure/repository"
	"github.com/localshop/storefront/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo           user.Repository
	categoryRepo       catalog.CategoryRepository
	productRepo        catalog.ProductRepository
	orderRepo          order.Repository
	promotionRepo      promotion.Repository
	paymentRepo        payment.PaymentRepository
	paymentHistoryRepo payment.HistoryRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:           repository.NewUserRepository(db, log),
		categoryRepo:       repository.NewCategoryRepository(db),
		productRepo:        repository.NewProductRepository(db),
		orderRepo:          repository.NewOrderRepository(db),
		promotionRepo:      repository.NewPromotionRepository(db),
		paymentRepo:        repository.NewPaymentRepository(db),
		paymentHistoryRepo: repository.NewPaymentHistoryRepository(db),
	}
}
