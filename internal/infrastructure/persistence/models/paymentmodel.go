package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/localshop/storefront/internal/shared/constants"
)

// VNPayTransactionModel is one gateway attempt. Amount is stored unscaled.
type VNPayTransactionModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	TxnRef        string          `gorm:"uniqueIndex;not null;size:64"`
	OrderID       string          `gorm:"not null;size:36;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency      string          `gorm:"size:10;not null;default:'VND'"`
	Status        string          `gorm:"size:20;not null;index:idx_vnpay_status_expired"`
	TransactionNo *string         `gorm:"size:64"`
	BankCode      *string         `gorm:"size:32"`
	ResponseCode  *string         `gorm:"size:8"`
	PaymentURL    *string         `gorm:"type:text"`
	PaidAt        *time.Time
	ExpiredAt     time.Time      `gorm:"not null;index:idx_vnpay_status_expired"`
	Metadata      datatypes.JSON `gorm:"type:json"`
	Version       int            `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (VNPayTransactionModel) TableName() string {
	return constants.TableVNPayTxns
}

// PaymentHistoryModel is the audit row for a settled transaction. TxnRef is
// unique so a settlement can only be recorded once.
type PaymentHistoryModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	OrderID       string          `gorm:"not null;size:36;index"`
	PaymentID     string          `gorm:"not null;size:36"`
	TxnRef        string          `gorm:"uniqueIndex;not null;size:64"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status        string          `gorm:"size:20;not null"`
	TransactionNo string          `gorm:"size:64"`
	PaymentMethod string          `gorm:"size:20;not null"`
	Details       datatypes.JSON  `gorm:"type:json"`
	CreatedAt     time.Time
}

func (PaymentHistoryModel) TableName() string {
	return constants.TablePaymentHistory
}
