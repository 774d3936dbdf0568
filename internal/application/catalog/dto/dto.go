package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/domain/catalog"
)

type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Slug         string `json:"slug" binding:"omitempty,max=255"`
	Description  string `json:"description" binding:"max=2000"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

type ReorderItem struct {
	ID           string `json:"id" binding:"required"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

type ReorderCategoriesRequest struct {
	Categories []ReorderItem `json:"categories" binding:"required,min=1,dive"`
}

type CreateProductRequest struct {
	CategoryID  string           `json:"category_id" binding:"required"`
	Name        string           `json:"name" binding:"required,max=255"`
	Slug        string           `json:"slug" binding:"omitempty,max=255"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	Stock       int              `json:"stock" binding:"min=0"`
	ImageURL    string           `json:"image_url" binding:"omitempty,url"`
}

type ProductResponse struct {
	ID              string           `json:"id"`
	CategoryID      string           `json:"category_id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Description     string           `json:"description,omitempty"`
	DescriptionHTML string           `json:"description_html,omitempty"`
	Price           decimal.Decimal  `json:"price"`
	SalePrice       *decimal.Decimal `json:"sale_price,omitempty"`
	EffectivePrice  decimal.Decimal  `json:"effective_price"`
	Stock           int              `json:"stock"`
	ImageURL        string           `json:"image_url,omitempty"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
}

func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Slug:         c.Slug(),
		Description:  c.Description(),
		DisplayOrder: c.DisplayOrder(),
		IsActive:     c.IsActive(),
	}
}

func ToCategoryResponses(categories []*catalog.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}

func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:             p.ID(),
		CategoryID:     p.CategoryID(),
		Name:           p.Name(),
		Slug:           p.Slug(),
		Description:    p.Description(),
		Price:          p.Price(),
		SalePrice:      p.SalePrice(),
		EffectivePrice: p.EffectivePrice(),
		Stock:          p.Stock(),
		ImageURL:       p.ImageURL(),
		IsActive:       p.IsActive(),
		CreatedAt:      p.CreatedAt(),
	}
}

func ToProductResponses(products []*catalog.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
