package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/localshop/storefront/internal/domain/promotion"
	"github.com/localshop/storefront/internal/infrastructure/persistence/mappers"
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/db"
)

type PromotionRepository struct {
	db *gorm.DB
}

var _ promotion.Repository = (*PromotionRepository)(nil)

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.PromotionToModel(p)).Error; err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

func (r *PromotionRepository) GetByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	var model models.PromotionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, promotion.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("failed to get promotion: %w", err)
	}
	return mappers.PromotionToDomain(&model), nil
}

func (r *PromotionRepository) List(ctx context.Context, offset, limit int) ([]*promotion.Promotion, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.PromotionModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count promotions: %w", err)
	}

	var promotionModels []models.PromotionModel
	query := tx.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&promotionModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list promotions: %w", err)
	}

	promotions := make([]*promotion.Promotion, len(promotionModels))
	for i := range promotionModels {
		promotions[i] = mappers.PromotionToDomain(&promotionModels[i])
	}
	return promotions, total, nil
}

func (r *PromotionRepository) ConsumeUsage(ctx context.Context, id string) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PromotionModel{}).
		Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", id).
		Updates(map[string]any{
			"used_count": gorm.Expr("used_count + ?", 1),
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to consume promotion usage: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}
