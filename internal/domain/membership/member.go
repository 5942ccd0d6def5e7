package membership

import (
	"context"
	"time"

	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberStatus represents the membership lifecycle state
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusPending  MemberStatus = "pending"
)

// ValidMemberStatus reports whether s is a known member status
func ValidMemberStatus(s string) bool {
	switch MemberStatus(s) {
	case MemberStatusActive, MemberStatusInactive, MemberStatusPending:
		return true
	}
	return false
}

// Member is a gym member. MondayMemberID is the external CRM identifier
// (the pulse id when the record originated from a webhook, a generated id
// otherwise) and is never empty.
type Member struct {
	shared.BaseEntity
	MondayMemberID        string           `json:"monday_member_id"`
	Name                  string           `json:"name"`
	FirstName             *string          `json:"first_name"`
	PaternalLastName      *string          `json:"paternal_last_name"`
	MaternalLastName      *string          `json:"maternal_last_name"`
	Person                *string          `json:"person"`
	Status                MemberStatus     `json:"status"`
	StartDate             *time.Time       `json:"start_date"`
	DateOfBirth           *time.Time       `json:"date_of_birth"`
	Email                 *string          `json:"email"`
	Phone                 *string          `json:"phone"`
	PrimaryPhone          *string          `json:"primary_phone"`
	SecondaryPhone        *string          `json:"secondary_phone"`
	Address1              *string          `json:"address_1"`
	City                  *string          `json:"city"`
	State                 *string          `json:"state"`
	ZipCode               *string          `json:"zip_code"`
	AccessType            *string          `json:"access_type"`
	EmergencyContactName  *string          `json:"emergency_contact_name"`
	EmergencyContactPhone *string          `json:"emergency_contact_phone"`
	ReferredMember        *string          `json:"referred_member"`
	SelectedPlan          *string          `json:"selected_plan"`
	Employee              *string          `json:"employee"`
	MemberID              *string          `json:"member_id"`
	MonthlyAmount         *decimal.Decimal `json:"monthly_amount"`
	ExpirationDate        *time.Time       `json:"expiration_date"`
	DirectDebit           string           `json:"direct_debit"`
	HowDidYouHear         *string          `json:"how_did_you_hear"`
	ContractLink          *string          `json:"contract_link"`
	Version               string           `json:"version"`

	// Contracts is populated on detail lookups only.
	Contracts []Contract `json:"contracts,omitempty"`
}

// MemberRepository is the persistence port for members
type MemberRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)
	FindByMondayID(ctx context.Context, mondayID string) (*Member, error)
	FindPage(ctx context.Context, q shared.ListQuery) ([]Member, int64, error)
	Save(ctx context.Context, member *Member) error
	// UpdateByMondayID writes the given column values (plus updated_at) to
	// the member with the given external id. Returns shared.ErrNotFound
	// when no row matches.
	UpdateByMondayID(ctx context.Context, mondayID string, values map[string]any) error
	Count(ctx context.Context) (int64, error)
}
