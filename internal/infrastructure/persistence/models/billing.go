package models

import (
	"time"

	"github.com/aigym/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel is the GORM model for the payments table
type PaymentModel struct {
	BaseModel
	MemberID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ContractID    *uuid.UUID `gorm:"type:uuid;index"`
	MemberName    string
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string          `gorm:"not null"`
	PaymentDate   time.Time       `gorm:"not null;index"`
	Status        string          `gorm:"not null;default:completed;index"`
	Description   *string
	TransactionID *string
}

// TableName returns the table name for PaymentModel
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the model to a domain payment
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		BaseEntity:    m.BaseModel.ToDomain(),
		MemberID:      m.MemberID,
		ContractID:    m.ContractID,
		MemberName:    m.MemberName,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		PaymentDate:   m.PaymentDate,
		Status:        billing.PaymentStatus(m.Status),
		Description:   m.Description,
		TransactionID: m.TransactionID,
	}
}

// PaymentModelFromDomain converts a domain payment to its model
func PaymentModelFromDomain(payment *billing.Payment) *PaymentModel {
	model := &PaymentModel{
		MemberID:      payment.MemberID,
		ContractID:    payment.ContractID,
		MemberName:    payment.MemberName,
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		PaymentDate:   payment.PaymentDate,
		Status:        string(payment.Status),
		Description:   payment.Description,
		TransactionID: payment.TransactionID,
	}
	model.FromDomainBaseEntity(payment.BaseEntity)
	return model
}
