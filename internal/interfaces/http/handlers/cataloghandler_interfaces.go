package handlers

import (
	"context"

	catalogUsecases "github.com/localshop/storefront/internal/application/catalog/usecases"
	"github.com/localshop/storefront/internal/domain/catalog"
)

// Use case interfaces for CatalogHandler

type listCategoriesUseCase interface {
	Execute(ctx context.Context, activeOnly bool) ([]*catalog.Category, error)
}

type createCategoryUseCase interface {
	Execute(ctx context.Context, cmd catalogUsecases.CreateCategoryCommand) (*catalog.Category, error)
}

type reorderCategoriesUseCase interface {
	Execute(ctx context.Context, updates []catalog.DisplayOrderUpdate) ([]*catalog.Category, error)
}

type listProductsUseCase interface {
	Execute(ctx context.Context, query catalogUsecases.ListProductsQuery) (*catalogUsecases.ListProductsResult, error)
}

type getProductUseCase interface {
	Execute(ctx context.Context, idOrSlug string) (*catalogUsecases.GetProductResult, error)
}

type createProductUseCase interface {
	Execute(ctx context.Context, cmd catalogUsecases.CreateProductCommand) (*catalog.Product, error)
}
