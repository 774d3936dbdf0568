package seeds

import (
	"context"
	_ "embed"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/localshop/storefront/internal/domain/catalog"
	"github.com/localshop/storefront/internal/domain/promotion"
	"github.com/localshop/storefront/internal/infrastructure/persistence/mappers"
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// CatalogFile is the layout of a seed file. Prices are whole dong.
type CatalogFile struct {
	Categories []CategorySeed  `yaml:"categories"`
	Promotions []PromotionSeed `yaml:"promotions"`
}

type CategorySeed struct {
	Name         string        `yaml:"name"`
	Slug         string        `yaml:"slug"`
	Description  string        `yaml:"description"`
	DisplayOrder int           `yaml:"display_order"`
	Products     []ProductSeed `yaml:"products"`
}

type ProductSeed struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Price       int64  `yaml:"price"`
	SalePrice   *int64 `yaml:"sale_price"`
	Stock       int    `yaml:"stock"`
	ImageURL    string `yaml:"image_url"`
}

type PromotionSeed struct {
	Code          string `yaml:"code"`
	Description   string `yaml:"description"`
	DiscountType  string `yaml:"discount_type"`
	DiscountValue int64  `yaml:"discount_value"`
	MinPurchase   int64  `yaml:"min_purchase"`
	MaxDiscount   int64  `yaml:"max_discount"`
	UsageLimit    int    `yaml:"usage_limit"`
}

// Result counts rows inserted by a seed run. Rows that already exist are
// left untouched and not counted.
type Result struct {
	Categories int
	Products   int
	Promotions int
}

// ParseCatalog decodes a seed file.
func ParseCatalog(r io.Reader) (*CatalogFile, error) {
	var file CatalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}
	return &file, nil
}

// DefaultCatalog returns the catalog bundled with the binary.
func DefaultCatalog() (*CatalogFile, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(defaultCatalog, &file); err != nil {
		return nil, fmt.Errorf("failed to parse default catalog: %w", err)
	}
	return &file, nil
}

// SeedCatalog inserts categories, products and promotions that do not exist
// yet, matching on slug or code. It runs in a single transaction.
func SeedCatalog(ctx context.Context, db *gorm.DB, file *CatalogFile) (*Result, error) {
	result := &Result{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, cs := range file.Categories {
			categoryID, created, err := seedCategory(tx, cs)
			if err != nil {
				return err
			}
			if created {
				result.Categories++
			}

			for _, ps := range cs.Products {
				created, err := seedProduct(tx, categoryID, ps)
				if err != nil {
					return err
				}
				if created {
					result.Products++
				}
			}
		}

		for _, ps := range file.Promotions {
			created, err := seedPromotion(tx, ps)
			if err != nil {
				return err
			}
			if created {
				result.Promotions++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func seedCategory(tx *gorm.DB, cs CategorySeed) (string, bool, error) {
	category, err := catalog.NewCategory(cs.Name, cs.Slug, cs.Description, cs.DisplayOrder)
	if err != nil {
		return "", false, fmt.Errorf("category %q: %w", cs.Name, err)
	}

	model := mappers.CategoryToModel(category)
	if err := tx.Where(models.CategoryModel{Slug: model.Slug}).FirstOrCreate(model).Error; err != nil {
		return "", false, fmt.Errorf("category %q: %w", cs.Name, err)
	}
	// An existing row overwrites the model, including its ID.
	return model.ID, model.ID == category.ID(), nil
}

func seedProduct(tx *gorm.DB, categoryID string, ps ProductSeed) (bool, error) {
	var salePrice *decimal.Decimal
	if ps.SalePrice != nil {
		v := decimal.NewFromInt(*ps.SalePrice)
		salePrice = &v
	}

	product, err := catalog.NewProduct(catalog.NewProductParams{
		CategoryID:  categoryID,
		Name:        ps.Name,
		Slug:        ps.Slug,
		Description: ps.Description,
		Price:       decimal.NewFromInt(ps.Price),
		SalePrice:   salePrice,
		Stock:       ps.Stock,
		ImageURL:    ps.ImageURL,
	})
	if err != nil {
		return false, fmt.Errorf("product %q: %w", ps.Name, err)
	}

	model := mappers.ProductToModel(product)
	if err := tx.Where(models.ProductModel{Slug: model.Slug}).FirstOrCreate(model).Error; err != nil {
		return false, fmt.Errorf("product %q: %w", ps.Name, err)
	}
	return model.ID == product.ID(), nil
}

func seedPromotion(tx *gorm.DB, ps PromotionSeed) (bool, error) {
	promo, err := promotion.NewPromotion(promotion.NewPromotionParams{
		Code:          ps.Code,
		Description:   ps.Description,
		DiscountType:  promotion.DiscountType(ps.DiscountType),
		DiscountValue: decimal.NewFromInt(ps.DiscountValue),
		MinPurchase:   decimal.NewFromInt(ps.MinPurchase),
		MaxDiscount:   decimal.NewFromInt(ps.MaxDiscount),
		UsageLimit:    ps.UsageLimit,
	})
	if err != nil {
		return false, fmt.Errorf("promotion %q: %w", ps.Code, err)
	}

	model := mappers.PromotionToModel(promo)
	if err := tx.Where(models.PromotionModel{Code: model.Code}).FirstOrCreate(model).Error; err != nil {
		return false, fmt.Errorf("promotion %q: %w", ps.Code, err)
	}
	return model.ID == promo.ID(), nil
}
