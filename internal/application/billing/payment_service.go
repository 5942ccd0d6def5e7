package billing

import (
	"context"
	"strings"
	"time"

	"github.com/aigym/backend/internal/application/normalize"
	"github.com/aigym/backend/internal/domain/billing"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest carries a raw payment form submission
type CreatePaymentRequest struct {
	MemberID      string `json:"member_id"`
	ContractID    string `json:"contract_id"`
	MemberName    string `json:"member_name"`
	Amount        any    `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	PaymentDate   string `json:"payment_date"`
	Status        string `json:"status"`
	Description   string `json:"description"`
	TransactionID string `json:"transaction_id"`
}

// PaymentResponse is a payment as rendered in API responses
type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	MemberID      uuid.UUID       `json:"member_id"`
	ContractID    *uuid.UUID      `json:"contract_id"`
	MemberName    string          `json:"member_name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date"`
	Status        string          `json:"status"`
	Description   *string         `json:"description"`
	TransactionID *string         `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToPaymentResponse maps a domain payment to its API shape
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		MemberID:      p.MemberID,
		ContractID:    p.ContractID,
		MemberName:    p.MemberName,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		PaymentDate:   p.PaymentDate,
		Status:        string(p.Status),
		Description:   p.Description,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// PaymentService handles payment-related business operations
type PaymentService struct {
	paymentRepo billing.PaymentRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo billing.PaymentRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
	}
}

// Create validates and normalizes a payment submission and persists it
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	var missing []string
	if strings.TrimSpace(req.MemberID) == "" {
		missing = append(missing, "member_id")
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		missing = append(missing, "payment_method")
	}
	if len(missing) > 0 {
		return nil, shared.NewValidationErrorf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	memberID, err := uuid.Parse(strings.TrimSpace(req.MemberID))
	if err != nil {
		return nil, shared.NewValidationErrorf("Invalid member_id: %s", req.MemberID)
	}

	var contractID *uuid.UUID
	if strings.TrimSpace(req.ContractID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(req.ContractID))
		if err != nil {
			return nil, shared.NewValidationErrorf("Invalid contract_id: %s", req.ContractID)
		}
		contractID = &id
	}

	if !billing.ValidMethod(req.PaymentMethod) {
		return nil, shared.NewValidationErrorf("Invalid payment_method: %s", req.PaymentMethod)
	}

	amount := normalize.Money(req.Amount)
	if amount == nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Invalid amount: must be a positive number")
	}

	status := normalize.TextOr(req.Status, string(billing.PaymentStatusCompleted))
	if !billing.ValidPaymentStatus(status) {
		return nil, shared.NewValidationErrorf("Invalid status: %s", status)
	}

	paymentDate := time.Now()
	if d := normalize.Date(req.PaymentDate); d != nil {
		paymentDate = *d
	}

	payment := &billing.Payment{
		BaseEntity:    shared.NewBaseEntity(),
		MemberID:      memberID,
		ContractID:    contractID,
		MemberName:    strings.TrimSpace(req.MemberName),
		Amount:        *amount,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   paymentDate,
		Status:        billing.PaymentStatus(status),
		Description:   normalize.Text(req.Description),
		TransactionID: normalize.Text(req.TransactionID),
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// List retrieves a filtered page of payments
func (s *PaymentService) List(ctx context.Context, q shared.ListQuery) (*shared.Paginated[PaymentResponse], error) {
	q = q.Normalize()
	payments, total, err := s.paymentRepo.FindPage(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, ToPaymentResponse(&payments[i]))
	}
	page := shared.NewPaginated(items, total, q)
	return &page, nil
}

// GetByID retrieves a single payment
func (s *PaymentService) GetByID(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToPaymentResponse(payment)
	return &resp, nil
}
