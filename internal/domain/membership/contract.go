package membership

import (
	"context"
	"time"

	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractStatus represents the contract lifecycle state
type ContractStatus string

const (
	ContractStatusActive   ContractStatus = "active"
	ContractStatusPending  ContractStatus = "pending"
	ContractStatusExpired  ContractStatus = "expired"
	ContractStatusInactive ContractStatus = "inactive"
)

// ValidContractStatus reports whether s is a known contract status
func ValidContractStatus(s string) bool {
	switch ContractStatus(s) {
	case ContractStatusActive, ContractStatusPending, ContractStatusExpired, ContractStatusInactive:
		return true
	}
	return false
}

// Contract is a membership contract. MemberID is nil for contracts created
// from CRM webhooks before they are linked to a member.
type Contract struct {
	shared.BaseEntity
	MondayContractID string           `json:"monday_contract_id"`
	MemberID         *uuid.UUID       `json:"member_id"`
	ContractType     string           `json:"contract_type"`
	StartDate        *time.Time       `json:"start_date"`
	EndDate          *time.Time       `json:"end_date"`
	MonthlyFee       *decimal.Decimal `json:"monthly_fee"`
	Status           ContractStatus   `json:"status"`

	// Member is populated on detail lookups only.
	Member *Member `json:"member,omitempty"`
}

// ContractRepository is the persistence port for contracts
type ContractRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Contract, error)
	FindPage(ctx context.Context, q shared.ListQuery) ([]Contract, int64, error)
	Save(ctx context.Context, contract *Contract) error
	// UpdateByMondayID writes the given column values (plus updated_at) to
	// the contract with the given external id. Returns shared.ErrNotFound
	// when no row matches.
	UpdateByMondayID(ctx context.Context, mondayID string, values map[string]any) error
	Count(ctx context.Context) (int64, error)
}
