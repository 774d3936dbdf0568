package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/localshop/storefront/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           string  `gorm:"primaryKey;size:36"`
	Email        string  `gorm:"uniqueIndex;not null;size:255"`
	Name         string  `gorm:"not null;size:100"`
	Phone        string  `gorm:"size:20"`
	PasswordHash *string `gorm:"size:255"`
	Role         string  `gorm:"not null;default:customer;size:20"`
	Version      int     `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = "customer"
	}
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}
