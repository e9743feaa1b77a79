// Package paymentrepo maps payments onto the payments table.
package paymentrepo

import (
	"time"

	"havenpos/internal/core/domain/model/kernel"
	"havenpos/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Method        string          `gorm:"type:varchar(20);not null"`
	Status        string          `gorm:"type:varchar(20);not null"`
	TransactionID string          `gorm:"type:varchar(100);not null;default:''"`
	Reference     string          `gorm:"type:varchar(100);not null;default:''"`
	CardLastFour  string          `gorm:"type:varchar(4);not null;default:''"`
	ProcessedBy   string          `gorm:"type:varchar(64);not null;default:''"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	ProcessedAt   *time.Time
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p payment.Payment) PaymentDTO {
	dto := PaymentDTO{
		ID:            p.ID().Bytes(),
		OrderID:       p.OrderID().Bytes(),
		Amount:        p.Amount().Decimal(),
		Method:        p.Method().String(),
		Status:        p.Status().String(),
		TransactionID: p.Details().TransactionID,
		Reference:     p.Details().Reference,
		CardLastFour:  p.Details().CardLastFour,
		ProcessedBy:   p.ProcessedBy(),
		CreatedAt:     p.CreatedAt(),
	}
	if at := p.ProcessedAt(); !at.IsZero() {
		dto.ProcessedAt = &at
	}
	return dto
}

func toDomain(dto PaymentDTO) (payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return payment.Payment{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return payment.Payment{}, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return payment.Payment{}, err
	}
	method, err := payment.ParseMethod(dto.Method)
	if err != nil {
		return payment.Payment{}, err
	}
	status, err := payment.ParseStatus(dto.Status)
	if err != nil {
		return payment.Payment{}, err
	}

	s := payment.Snapshot{
		ID:      id,
		OrderID: orderID,
		Amount:  amount,
		Method:  method,
		Status:  status,
		Details: payment.Details{
			TransactionID: dto.TransactionID,
			Reference:     dto.Reference,
			CardLastFour:  dto.CardLastFour,
		},
		ProcessedBy: dto.ProcessedBy,
		CreatedAt:   dto.CreatedAt.UTC(),
	}
	if dto.ProcessedAt != nil {
		s.ProcessedAt = dto.ProcessedAt.UTC()
	}
	return payment.RestorePayment(s)
}
