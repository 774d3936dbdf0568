package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/localshop/storefront/internal/domain/payment"
	vo "github.com/localshop/storefront/internal/domain/payment/valueobjects"
	"github.com/localshop/storefront/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) (*models.VNPayTransactionModel, error) {
	model := &models.VNPayTransactionModel{
		ID:            p.ID(),
		TxnRef:        p.TxnRef(),
		OrderID:       p.OrderID(),
		Amount:        p.Amount().Amount(),
		Currency:      p.Amount().Currency(),
		Status:        p.Status().String(),
		TransactionNo: p.TransactionNo(),
		BankCode:      p.BankCode(),
		ResponseCode:  p.ResponseCode(),
		PaymentURL:    p.PaymentURL(),
		PaidAt:        p.PaidAt(),
		ExpiredAt:     p.ExpiredAt(),
		Version:       p.Version(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}

	if len(p.Metadata()) > 0 {
		raw, err := json.Marshal(p.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to encode payment metadata: %w", err)
		}
		model.Metadata = datatypes.JSON(raw)
	}

	return model, nil
}

func PaymentToDomain(model *models.VNPayTransactionModel) (*payment.Payment, error) {
	status, err := vo.ParsePaymentStatus(model.Status)
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]any)
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to decode payment metadata: %w", err)
		}
	}

	return payment.ReconstructPaymentWithParams(payment.PaymentReconstructParams{
		ID:            model.ID,
		TxnRef:        model.TxnRef,
		OrderID:       model.OrderID,
		Amount:        vo.NewMoney(model.Amount, model.Currency),
		Status:        status,
		TransactionNo: model.TransactionNo,
		BankCode:      model.BankCode,
		ResponseCode:  model.ResponseCode,
		PaymentURL:    model.PaymentURL,
		PaidAt:        model.PaidAt,
		ExpiredAt:     model.ExpiredAt,
		Metadata:      metadata,
		Version:       model.Version,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}), nil
}

func HistoryToModel(h *payment.History) (*models.PaymentHistoryModel, error) {
	details, err := json.Marshal(h.Details)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment details: %w", err)
	}
	return &models.PaymentHistoryModel{
		ID:            h.ID,
		OrderID:       h.OrderID,
		PaymentID:     h.PaymentID,
		TxnRef:        h.TxnRef,
		Amount:        h.Amount,
		Status:        h.Status,
		TransactionNo: h.TransactionNo,
		PaymentMethod: h.Method,
		Details:       datatypes.JSON(details),
		CreatedAt:     h.CreatedAt,
	}, nil
}

func HistoryToDomain(model *models.PaymentHistoryModel) (*payment.History, error) {
	details := make(map[string]string)
	if len(model.Details) > 0 {
		if err := json.Unmarshal(model.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to decode payment details: %w", err)
		}
	}
	return &payment.History{
		ID:            model.ID,
		OrderID:       model.OrderID,
		PaymentID:     model.PaymentID,
		TxnRef:        model.TxnRef,
		Amount:        model.Amount,
		Status:        model.Status,
		TransactionNo: model.TransactionNo,
		Method:        model.PaymentMethod,
		Details:       details,
		CreatedAt:     model.CreatedAt,
	}, nil
}
