package membership

import (
	"time"

	"github.com/aigym/backend/internal/domain/membership"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Member DTOs
// =============================================================================

// CreateMemberRequest carries a raw member form submission. Money fields
// are declared as any so numbers-as-strings survive binding and can be
// coerced downstream.
type CreateMemberRequest struct {
	MondayMemberID        string `json:"monday_member_id"`
	Name                  string `json:"name"`
	FirstName             string `json:"first_name"`
	PaternalLastName      string `json:"paternal_last_name"`
	MaternalLastName      string `json:"maternal_last_name"`
	Person                string `json:"person"`
	Status                string `json:"status"`
	StartDate             string `json:"start_date"`
	DateOfBirth           string `json:"date_of_birth"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	PrimaryPhone          string `json:"primary_phone"`
	SecondaryPhone        string `json:"secondary_phone"`
	Address1              string `json:"address_1"`
	City                  string `json:"city"`
	State                 string `json:"state"`
	ZipCode               string `json:"zip_code"`
	AccessType            string `json:"access_type"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	ReferredMember        string `json:"referred_member"`
	SelectedPlan          string `json:"selected_plan"`
	Employee              string `json:"employee"`
	MemberID              string `json:"member_id"`
	MonthlyAmount         any    `json:"monthly_amount"`
	ExpirationDate        string `json:"expiration_date"`
	DirectDebit           string `json:"direct_debit"`
	HowDidYouHear         string `json:"how_did_you_hear"`
	ContractLink          string `json:"contract_link"`
}

// UpdateMemberRequest carries a partial member edit; nil fields are left
// untouched.
type UpdateMemberRequest struct {
	Name                  *string `json:"name"`
	FirstName             *string `json:"first_name"`
	PaternalLastName      *string `json:"paternal_last_name"`
	MaternalLastName      *string `json:"maternal_last_name"`
	Status                *string `json:"status"`
	StartDate             *string `json:"start_date"`
	DateOfBirth           *string `json:"date_of_birth"`
	Email                 *string `json:"email"`
	Phone                 *string `json:"phone"`
	PrimaryPhone          *string `json:"primary_phone"`
	SecondaryPhone        *string `json:"secondary_phone"`
	Address1              *string `json:"address_1"`
	City                  *string `json:"city"`
	State                 *string `json:"state"`
	ZipCode               *string `json:"zip_code"`
	AccessType            *string `json:"access_type"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	ReferredMember        *string `json:"referred_member"`
	SelectedPlan          *string `json:"selected_plan"`
	Employee              *string `json:"employee"`
	MonthlyAmount         any     `json:"monthly_amount"`
	ExpirationDate        *string `json:"expiration_date"`
	DirectDebit           *string `json:"direct_debit"`
	HowDidYouHear         *string `json:"how_did_you_hear"`
	ContractLink          *string `json:"contract_link"`
}

// MemberResponse is a member as rendered in API responses
type MemberResponse struct {
	ID                    uuid.UUID          `json:"id"`
	MondayMemberID        string             `json:"monday_member_id"`
	Name                  string             `json:"name"`
	FirstName             *string            `json:"first_name"`
	PaternalLastName      *string            `json:"paternal_last_name"`
	MaternalLastName      *string            `json:"maternal_last_name"`
	Person                *string            `json:"person"`
	Status                string             `json:"status"`
	StartDate             *time.Time         `json:"start_date"`
	DateOfBirth           *time.Time         `json:"date_of_birth"`
	Email                 *string            `json:"email"`
	Phone                 *string            `json:"phone"`
	PrimaryPhone          *string            `json:"primary_phone"`
	SecondaryPhone        *string            `json:"secondary_phone"`
	Address1              *string            `json:"address_1"`
	City                  *string            `json:"city"`
	State                 *string            `json:"state"`
	ZipCode               *string            `json:"zip_code"`
	AccessType            *string            `json:"access_type"`
	EmergencyContactName  *string            `json:"emergency_contact_name"`
	EmergencyContactPhone *string            `json:"emergency_contact_phone"`
	ReferredMember        *string            `json:"referred_member"`
	SelectedPlan          *string            `json:"selected_plan"`
	Employee              *string            `json:"employee"`
	MemberID              *string            `json:"member_id"`
	MonthlyAmount         *decimal.Decimal   `json:"monthly_amount"`
	ExpirationDate        *time.Time         `json:"expiration_date"`
	DirectDebit           string             `json:"direct_debit"`
	HowDidYouHear         *string            `json:"how_did_you_hear"`
	ContractLink          *string            `json:"contract_link"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
	Contracts             []ContractResponse `json:"contracts,omitempty"`
}

// ToMemberResponse maps a domain member to its API shape
func ToMemberResponse(m *membership.Member) MemberResponse {
	resp := MemberResponse{
		ID:                    m.ID,
		MondayMemberID:        m.MondayMemberID,
		Name:                  m.Name,
		FirstName:             m.FirstName,
		PaternalLastName:      m.PaternalLastName,
		MaternalLastName:      m.MaternalLastName,
		Person:                m.Person,
		Status:                string(m.Status),
		StartDate:             m.StartDate,
		DateOfBirth:           m.DateOfBirth,
		Email:                 m.Email,
		Phone:                 m.Phone,
		PrimaryPhone:          m.PrimaryPhone,
		SecondaryPhone:        m.SecondaryPhone,
		Address1:              m.Address1,
		City:                  m.City,
		State:                 m.State,
		ZipCode:               m.ZipCode,
		AccessType:            m.AccessType,
		EmergencyContactName:  m.EmergencyContactName,
		EmergencyContactPhone: m.EmergencyContactPhone,
		ReferredMember:        m.ReferredMember,
		SelectedPlan:          m.SelectedPlan,
		Employee:              m.Employee,
		MemberID:              m.MemberID,
		MonthlyAmount:         m.MonthlyAmount,
		ExpirationDate:        m.ExpirationDate,
		DirectDebit:           m.DirectDebit,
		HowDidYouHear:         m.HowDidYouHear,
		ContractLink:          m.ContractLink,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	for i := range m.Contracts {
		resp.Contracts = append(resp.Contracts, ToContractResponse(&m.Contracts[i]))
	}
	return resp
}

// =============================================================================
// Contract DTOs
// =============================================================================

// CreateContractRequest carries a raw contract form submission
type CreateContractRequest struct {
	MondayContractID string `json:"monday_contract_id"`
	MemberID         string `json:"member_id"`
	ContractType     string `json:"contract_type"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	MonthlyFee       any    `json:"monthly_fee"`
	Status           string `json:"status"`
}

// UpdateContractRequest carries a partial contract edit
type UpdateContractRequest struct {
	MemberID     *string `json:"member_id"`
	ContractType *string `json:"contract_type"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	MonthlyFee   any     `json:"monthly_fee"`
	Status       *string `json:"status"`
}

// ContractResponse is a contract as rendered in API responses
type ContractResponse struct {
	ID               uuid.UUID        `json:"id"`
	MondayContractID string           `json:"monday_contract_id"`
	MemberID         *uuid.UUID       `json:"member_id"`
	ContractType     string           `json:"contract_type"`
	StartDate        *time.Time       `json:"start_date"`
	EndDate          *time.Time       `json:"end_date"`
	MonthlyFee       *decimal.Decimal `json:"monthly_fee"`
	Status           string           `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Member           *MemberResponse  `json:"member,omitempty"`
}

// ToContractResponse maps a domain contract to its API shape
func ToContractResponse(c *membership.Contract) ContractResponse {
	resp := ContractResponse{
		ID:               c.ID,
		MondayContractID: c.MondayContractID,
		MemberID:         c.MemberID,
		ContractType:     c.ContractType,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		MonthlyFee:       c.MonthlyFee,
		Status:           string(c.Status),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	if c.Member != nil {
		member := ToMemberResponse(c.Member)
		resp.Member = &member
	}
	return resp
}
