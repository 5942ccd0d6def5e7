package billing

import (
	"context"
	"time"

	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// ValidPaymentStatus reports whether s is a known payment status
func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentStatusCompleted, PaymentStatusPending, PaymentStatusFailed:
		return true
	}
	return false
}

// Payment methods accepted on recorded payments
const (
	MethodCash         = "cash"
	MethodCreditCard   = "credit_card"
	MethodBankTransfer = "bank_transfer"
)

// ValidMethod reports whether m is a known payment method
func ValidMethod(m string) bool {
	return m == MethodCash || m == MethodCreditCard || m == MethodBankTransfer
}

// Payment records money received from a member, optionally tied to a
// specific contract.
type Payment struct {
	shared.BaseEntity
	MemberID      uuid.UUID       `json:"member_id"`
	ContractID    *uuid.UUID      `json:"contract_id"`
	MemberName    string          `json:"member_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date"`
	Status        PaymentStatus   `json:"status"`
	Description   *string         `json:"description"`
	TransactionID *string         `json:"transaction_id"`
}

// PaymentRepository is the persistence port for payments
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindPage(ctx context.Context, q shared.ListQuery) ([]Payment, int64, error)
	Save(ctx context.Context, payment *Payment) error
	Count(ctx context.Context) (int64, error)
	// CompletedTotalSince sums completed payment amounts with a payment
	// date at or after the given time.
	CompletedTotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}
