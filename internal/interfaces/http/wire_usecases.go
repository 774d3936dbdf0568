package http

import (
	catalogUsecases "github.com/localshop/storefront/internal/application/catalog/usecases"
	orderUsecases "github.com/localshop/storefront/internal/application/order/usecases"
	paymentUsecases "github.com/localshop/storefront/internal/application/payment/usecases"
	promotionUsecases "github.com/localshop/storefront/internal/application/promotion/usecases"
	userUsecases "github.com/localshop/storefront/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC *userUsecases.RegisterWithPasswordUseCase
	loginUC    *userUsecases.LoginWithPasswordUseCase
	getUserUC  *userUsecases.GetUserUseCase

	// Catalog
	listCategoriesUC    *catalogUsecases.ListCategoriesUseCase
	createCategoryUC    *catalogUsecases.CreateCategoryUseCase
	reorderCategoriesUC *catalogUsecases.ReorderCategoriesUseCase
	listProductsUC      *catalogUsecases.ListProductsUseCase
	getProductUC        *catalogUsecases.GetProductUseCase
	createProductUC     *catalogUsecases.CreateProductUseCase

	// Order
	createOrderUC       *orderUsecases.CreateOrderUseCase
	getOrderUC          *orderUsecases.GetOrderUseCase
	listUserOrdersUC    *orderUsecases.ListUserOrdersUseCase
	updateOrderStatusUC *orderUsecases.UpdateOrderStatusUseCase

	// Promotion
	validatePromotionUC *promotionUsecases.ValidatePromotionUseCase
	createPromotionUC   *promotionUsecases.CreatePromotionUseCase
	listPromotionsUC    *promotionUsecases.ListPromotionsUseCase

	// Payment
	createPaymentUC  *paymentUsecases.CreatePaymentUseCase
	handleCallbackUC *paymentUsecases.HandlePaymentCallbackUseCase
	expirePaymentsUC *paymentUsecases.ExpirePaymentsUseCase
}
