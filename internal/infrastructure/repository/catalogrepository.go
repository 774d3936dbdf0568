package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/localshop/storefront/internal/domain/catalog"
	"github.com/localshop/storefront/internal/infrastructure/persistence/mappers"
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/db"
)

type CategoryRepository struct {
	db *gorm.DB
}

var _ catalog.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *catalog.Category) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.CategoryToModel(c)).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*catalog.Category, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *CategoryRepository) first(ctx context.Context, cond string, arg any) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return mappers.CategoryToDomain(&model), nil
}

func (r *CategoryRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.Category, error) {
	var categoryModels []models.CategoryModel

	query := db.GetTxFromContext(ctx, r.db).Order("display_order ASC, name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*catalog.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = mappers.CategoryToDomain(&categoryModels[i])
	}
	return categories, nil
}

func (r *CategoryRepository) UpdateDisplayOrder(ctx context.Context, id string, displayOrder int) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.CategoryModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"display_order": displayOrder,
			"updated_at":    biztime.NowUTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update display order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// MySQL reports zero affected rows for an unchanged row.
		var count int64
		if err := tx.Model(&models.CategoryModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("%s: %w", id, catalog.ErrCategoryNotFound)
		}
	}
	return nil
}

type ProductRepository struct {
	db *gorm.DB
}

var _ catalog.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.ProductToModel(p)).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *ProductRepository) first(ctx context.Context, cond string, arg any) (*catalog.Product, error) {
	var model models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return mappers.ProductToDomain(&model), nil
}

func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*catalog.Product, error) {
	result := make(map[string]*catalog.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var productModels []models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	for i := range productModels {
		result[productModels[i].ID] = mappers.ProductToDomain(&productModels[i])
	}
	return result, nil
}

func (r *ProductRepository) List(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Query != "" {
		query = query.Where("name LIKE ?", "%"+filter.Query+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var productModels []models.ProductModel
	query = query.Order("created_at DESC, id ASC").Offset(filter.Offset)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if err := query.Find(&productModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = mappers.ProductToDomain(&productModels[i])
	}
	return products, total, nil
}
