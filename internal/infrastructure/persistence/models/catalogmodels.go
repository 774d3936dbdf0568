package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/localshop/storefront/internal/shared/constants"
)

type CategoryModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Name         string `gorm:"not null;size:255"`
	Slug         string `gorm:"uniqueIndex;not null;size:255"`
	Description  string `gorm:"type:text"`
	DisplayOrder int    `gorm:"not null;default:0;index"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}

type ProductModel struct {
	ID          string           `gorm:"primaryKey;size:36"`
	CategoryID  string           `gorm:"not null;size:36;index"`
	Name        string           `gorm:"not null;size:255"`
	Slug        string           `gorm:"uniqueIndex;not null;size:255"`
	Description string           `gorm:"type:text"`
	Price       decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	SalePrice   *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Stock       int              `gorm:"not null;default:0"`
	ImageURL    string           `gorm:"size:500"`
	IsActive    bool             `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}
