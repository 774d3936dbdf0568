package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/domain/catalog"
	apperrors "github.com/localshop/storefront/internal/shared/errors"
	"github.com/localshop/storefront/internal/shared/logger"
	"github.com/localshop/storefront/internal/shared/utils"
)

// MarkdownRenderer turns a product description into safe HTML.
type MarkdownRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type ListProductsQuery struct {
	// Category is a category slug or ID.
	Category string
	Query    string
	Page     int
	PageSize int
}

type ListProductsResult struct {
	Products []*catalog.Product
	Total    int64
}

type ListProductsUseCase struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewListProductsUseCase(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	page := utils.ValidatePagination(query.Page, query.PageSize)
	filter := catalog.ProductFilter{
		Query:      strings.TrimSpace(query.Query),
		ActiveOnly: true,
		Offset:     page.Offset(),
		Limit:      page.PageSize,
	}

	if query.Category != "" {
		category, err := uc.categoryRepo.GetBySlug(ctx, query.Category)
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			category, err = uc.categoryRepo.GetByID(ctx, query.Category)
		}
		if err != nil {
			if errors.Is(err, catalog.ErrCategoryNotFound) {
				return &ListProductsResult{}, nil
			}
			return nil, apperrors.NewInternalError("failed to list products").WithCause(err)
		}
		filter.CategoryID = category.ID()
	}

	products, total, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, apperrors.NewInternalError("failed to list products").WithCause(err)
	}
	return &ListProductsResult{Products: products, Total: total}, nil
}

type GetProductResult struct {
	Product         *catalog.Product
	DescriptionHTML string
}

type GetProductUseCase struct {
	productRepo catalog.ProductRepository
	renderer    MarkdownRenderer
	logger      logger.Interface
}

func NewGetProductUseCase(productRepo catalog.ProductRepository, renderer MarkdownRenderer, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// Execute looks a product up by ID, falling back to its slug.
func (uc *GetProductUseCase) Execute(ctx context.Context, idOrSlug string) (*GetProductResult, error) {
	product, err := uc.productRepo.GetByID(ctx, idOrSlug)
	if errors.Is(err, catalog.ErrProductNotFound) {
		product, err = uc.productRepo.GetBySlug(ctx, idOrSlug)
	}
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		uc.logger.Errorw("failed to get product", "error", err, "product", idOrSlug)
		return nil, apperrors.NewInternalError("failed to get product").WithCause(err)
	}
	if !product.IsActive() {
		return nil, apperrors.NewNotFoundError("product not found")
	}

	html, err := uc.renderer.ToHTMLSanitized(product.Description())
	if err != nil {
		uc.logger.Warnw("failed to render product description", "error", err, "product_id", product.ID())
	}

	return &GetProductResult{Product: product, DescriptionHTML: html}, nil
}

type CreateProductCommand struct {
	CategoryID  string
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	SalePrice   *decimal.Decimal
	Stock       int
	ImageURL    string
}

type CreateProductUseCase struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewCreateProductUseCase(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*catalog.Product, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			return nil, apperrors.NewValidationError("category not found", cmd.CategoryID)
		}
		return nil, apperrors.NewInternalError("failed to create product").WithCause(err)
	}

	product, err := catalog.NewProduct(catalog.NewProductParams{
		CategoryID:  cmd.CategoryID,
		Name:        cmd.Name,
		Slug:        cmd.Slug,
		Description: cmd.Description,
		Price:       cmd.Price,
		SalePrice:   cmd.SalePrice,
		Stock:       cmd.Stock,
		ImageURL:    cmd.ImageURL,
	})
	if err != nil {
		return nil, apperrors.NewValidationError("invalid product", err.Error())
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("product slug already exists", product.Slug())
		}
		uc.logger.Errorw("failed to create product", "error", err)
		return nil, apperrors.NewInternalError("failed to create product").WithCause(err)
	}

	uc.logger.Infow("product created", "product_id", product.ID(), "slug", product.Slug())
	return product, nil
}
