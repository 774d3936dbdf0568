package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/localshop/storefront/internal/domain/payment"
	vo "github.com/localshop/storefront/internal/domain/payment/valueobjects"
	"github.com/localshop/storefront/internal/infrastructure/persistence/mappers"
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
	"github.com/localshop/storefront/internal/shared/db"
)

type PaymentRepository struct {
	db *gorm.DB
}

var _ payment.PaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model, err := mappers.PaymentToModel(p)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByTxnRef(ctx context.Context, txnRef string) (*payment.Payment, error) {
	var model models.VNPayTransactionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("txn_ref = ?", txnRef).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment by txn_ref: %w", err)
	}

	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) GetActiveByOrderID(ctx context.Context, orderID string, now time.Time) (*payment.Payment, error) {
	var model models.VNPayTransactionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_id = ? AND status = ? AND expired_at > ?", orderID, vo.PaymentStatusPending, now).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active payment: %w", err)
	}

	return mappers.PaymentToDomain(&model)
}

// Resolve is a compare-and-set on status: the row is only written while its
// stored status can still move to p's, so of two concurrent writers exactly
// one sees RowsAffected == 1. A paid or failed result may replace expired; an
// expired result may only replace pending.
func (r *PaymentRepository) Resolve(ctx context.Context, p *payment.Payment) (bool, error) {
	model, err := mappers.PaymentToModel(p)
	if err != nil {
		return false, err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.VNPayTransactionModel{}).
		Where("id = ? AND status IN ?", model.ID, vo.TransitionSources(p.Status())).
		Updates(map[string]any{
			"status":         model.Status,
			"transaction_no": model.TransactionNo,
			"bank_code":      model.BankCode,
			"response_code":  model.ResponseCode,
			"paid_at":        model.PaidAt,
			"metadata":       model.Metadata,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to resolve payment: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (r *PaymentRepository) GetExpiredPending(ctx context.Context, now time.Time, limit int) ([]*payment.Payment, error) {
	var paymentModels []models.VNPayTransactionModel

	query := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND expired_at < ?", vo.PaymentStatusPending, now).
		Order("expired_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get expired payments: %w", err)
	}

	payments := make([]*payment.Payment, len(paymentModels))
	for i := range paymentModels {
		p, err := mappers.PaymentToDomain(&paymentModels[i])
		if err != nil {
			return nil, err
		}
		payments[i] = p
	}

	return payments, nil
}

type PaymentHistoryRepository struct {
	db *gorm.DB
}

var _ payment.HistoryRepository = (*PaymentHistoryRepository)(nil)

func NewPaymentHistoryRepository(db *gorm.DB) *PaymentHistoryRepository {
	return &PaymentHistoryRepository{db: db}
}

func (r *PaymentHistoryRepository) Create(ctx context.Context, entry *payment.History) error {
	model, err := mappers.HistoryToModel(entry)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment history: %w", err)
	}
	return nil
}

func (r *PaymentHistoryRepository) ListByOrderID(ctx context.Context, orderID string) ([]*payment.History, error) {
	var historyModels []models.PaymentHistoryModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment history: %w", err)
	}

	entries := make([]*payment.History, len(historyModels))
	for i := range historyModels {
		h, err := mappers.HistoryToDomain(&historyModels[i])
		if err != nil {
			return nil, err
		}
		entries[i] = h
	}
	return entries, nil
}
