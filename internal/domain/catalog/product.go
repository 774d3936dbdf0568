package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/id"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrProductInactive   = errors.New("product is not available")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Product struct {
	id          string
	categoryID  string
	name        string
	slug        string
	description string
	price       decimal.Decimal
	salePrice   *decimal.Decimal
	stock       int
	imageURL    string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

type NewProductParams struct {
	CategoryID  string
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	SalePrice   *decimal.Decimal
	Stock       int
	ImageURL    string
}

func NewProduct(params NewProductParams) (*Product, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if params.CategoryID == "" {
		return nil, fmt.Errorf("category is required")
	}
	if !params.Price.IsPositive() {
		return nil, fmt.Errorf("price must be positive")
	}
	if params.SalePrice != nil && !params.SalePrice.IsPositive() {
		return nil, fmt.Errorf("sale price must be positive")
	}
	if params.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}
	slug := params.Slug
	if slug == "" {
		slug = Slugify(name)
	}

	now := biztime.NowUTC()
	return &Product{
		id:          id.NewUUID(),
		categoryID:  params.CategoryID,
		name:        name,
		slug:        slug,
		description: params.Description,
		price:       params.Price,
		salePrice:   params.SalePrice,
		stock:       params.Stock,
		imageURL:    params.ImageURL,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// EffectivePrice is the sale price when one is set below the list price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.salePrice != nil && p.salePrice.LessThan(p.price) {
		return *p.salePrice
	}
	return p.price
}

// CheckAvailability verifies the product can be ordered in the given quantity.
func (p *Product) CheckAvailability(quantity int) error {
	if !p.isActive {
		return fmt.Errorf("%s: %w", p.name, ErrProductInactive)
	}
	if quantity > p.stock {
		return fmt.Errorf("%s (requested %d, in stock %d): %w", p.name, quantity, p.stock, ErrInsufficientStock)
	}
	return nil
}

func (p *Product) ID() string {
	return p.id
}

func (p *Product) CategoryID() string {
	return p.categoryID
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Slug() string {
	return p.slug
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) SalePrice() *decimal.Decimal {
	return p.salePrice
}

func (p *Product) Stock() int {
	return p.stock
}

func (p *Product) ImageURL() string {
	return p.imageURL
}

func (p *Product) IsActive() bool {
	return p.isActive
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

type ProductReconstructParams struct {
	ID          string
	CategoryID  string
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	SalePrice   *decimal.Decimal
	Stock       int
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ReconstructProduct(params ProductReconstructParams) *Product {
	return &Product{
		id:          params.ID,
		categoryID:  params.CategoryID,
		name:        params.Name,
		slug:        params.Slug,
		description: params.Description,
		price:       params.Price,
		salePrice:   params.SalePrice,
		stock:       params.Stock,
		imageURL:    params.ImageURL,
		isActive:    params.IsActive,
		createdAt:   params.CreatedAt,
		updatedAt:   params.UpdatedAt,
	}
}
