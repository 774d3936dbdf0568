package mappers

import (
	"github.com/localshop/storefront/internal/domain/catalog"
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
)

func CategoryToModel(c *catalog.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:           c.ID(),
		Name:         c.Name(),
		Slug:         c.Slug(),
		Description:  c.Description(),
		DisplayOrder: c.DisplayOrder(),
		IsActive:     c.IsActive(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func CategoryToDomain(model *models.CategoryModel) *catalog.Category {
	return catalog.ReconstructCategory(catalog.CategoryReconstructParams{
		ID:           model.ID,
		Name:         model.Name,
		Slug:         model.Slug,
		Description:  model.Description,
		DisplayOrder: model.DisplayOrder,
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
}

func ProductToModel(p *catalog.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:          p.ID(),
		CategoryID:  p.CategoryID(),
		Name:        p.Name(),
		Slug:        p.Slug(),
		Description: p.Description(),
		Price:       p.Price(),
		SalePrice:   p.SalePrice(),
		Stock:       p.Stock(),
		ImageURL:    p.ImageURL(),
		IsActive:    p.IsActive(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ProductToDomain(model *models.ProductModel) *catalog.Product {
	return catalog.ReconstructProduct(catalog.ProductReconstructParams{
		ID:          model.ID,
		CategoryID:  model.CategoryID,
		Name:        model.Name,
		Slug:        model.Slug,
		Description: model.Description,
		Price:       model.Price,
		SalePrice:   model.SalePrice,
		Stock:       model.Stock,
		ImageURL:    model.ImageURL,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	})
}
