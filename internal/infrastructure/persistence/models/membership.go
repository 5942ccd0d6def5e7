package models

import (
	"time"

	"github.com/aigym/backend/internal/domain/membership"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberModel is the GORM model for the members table
type MemberModel struct {
	BaseModel
	MondayMemberID        string `gorm:"uniqueIndex;not null"`
	Name                  string `gorm:"not null"`
	FirstName             *string
	PaternalLastName      *string
	MaternalLastName      *string
	Person                *string
	Status                string `gorm:"not null;default:active;index"`
	StartDate             *time.Time
	DateOfBirth           *time.Time
	Email                 *string
	Phone                 *string
	PrimaryPhone          *string
	SecondaryPhone        *string
	Address1              *string `gorm:"column:address_1"`
	City                  *string
	State                 *string
	ZipCode               *string
	AccessType            *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	ReferredMember        *string
	SelectedPlan          *string
	Employee              *string
	MemberID              *string
	MonthlyAmount         *decimal.Decimal `gorm:"type:numeric(12,2)"`
	ExpirationDate        *time.Time
	DirectDebit           string `gorm:"not null;default:No"`
	HowDidYouHear         *string
	ContractLink          *string
	Version               string `gorm:"not null;default:1"`

	Contracts []ContractModel `gorm:"foreignKey:MemberID;references:ID"`
}

// TableName returns the table name for MemberModel
func (MemberModel) TableName() string {
	return "members"
}

// ToDomain converts the model to a domain member
func (m *MemberModel) ToDomain() *membership.Member {
	member := &membership.Member{
		BaseEntity:            m.BaseModel.ToDomain(),
		MondayMemberID:        m.MondayMemberID,
		Name:                  m.Name,
		FirstName:             m.FirstName,
		PaternalLastName:      m.PaternalLastName,
		MaternalLastName:      m.MaternalLastName,
		Person:                m.Person,
		Status:                membership.MemberStatus(m.Status),
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
		Version:               m.Version,
	}
	for i := range m.Contracts {
		member.Contracts = append(member.Contracts, *m.Contracts[i].ToDomain())
	}
	return member
}

// MemberModelFromDomain converts a domain member to its model
func MemberModelFromDomain(member *membership.Member) *MemberModel {
	model := &MemberModel{
		MondayMemberID:        member.MondayMemberID,
		Name:                  member.Name,
		FirstName:             member.FirstName,
		PaternalLastName:      member.PaternalLastName,
		MaternalLastName:      member.MaternalLastName,
		Person:                member.Person,
		Status:                string(member.Status),
		StartDate:             member.StartDate,
		DateOfBirth:           member.DateOfBirth,
		Email:                 member.Email,
		Phone:                 member.Phone,
		PrimaryPhone:          member.PrimaryPhone,
		SecondaryPhone:        member.SecondaryPhone,
		Address1:              member.Address1,
		City:                  member.City,
		State:                 member.State,
		ZipCode:               member.ZipCode,
		AccessType:            member.AccessType,
		EmergencyContactName:  member.EmergencyContactName,
		EmergencyContactPhone: member.EmergencyContactPhone,
		ReferredMember:        member.ReferredMember,
		SelectedPlan:          member.SelectedPlan,
		Employee:              member.Employee,
		MemberID:              member.MemberID,
		MonthlyAmount:         member.MonthlyAmount,
		ExpirationDate:        member.ExpirationDate,
		DirectDebit:           member.DirectDebit,
		HowDidYouHear:         member.HowDidYouHear,
		ContractLink:          member.ContractLink,
		Version:               member.Version,
	}
	model.FromDomainBaseEntity(member.BaseEntity)
	return model
}

// ContractModel is the GORM model for the contracts table
type ContractModel struct {
	BaseModel
	MondayContractID string     `gorm:"uniqueIndex;not null"`
	MemberID         *uuid.UUID `gorm:"type:uuid;index"`
	ContractType     string     `gorm:"not null"`
	StartDate        *time.Time
	EndDate          *time.Time
	MonthlyFee       *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status           string           `gorm:"not null;default:active;index"`

	Member *MemberModel `gorm:"foreignKey:MemberID;references:ID"`
}

// TableName returns the table name for ContractModel
func (ContractModel) TableName() string {
	return "contracts"
}

// ToDomain converts the model to a domain contract
func (m *ContractModel) ToDomain() *membership.Contract {
	contract := &membership.Contract{
		BaseEntity:       m.BaseModel.ToDomain(),
		MondayContractID: m.MondayContractID,
		MemberID:         m.MemberID,
		ContractType:     m.ContractType,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		MonthlyFee:       m.MonthlyFee,
		Status:           membership.ContractStatus(m.Status),
	}
	if m.Member != nil {
		contract.Member = m.Member.ToDomain()
	}
	return contract
}

// ContractModelFromDomain converts a domain contract to its model
func ContractModelFromDomain(contract *membership.Contract) *ContractModel {
	model := &ContractModel{
		MondayContractID: contract.MondayContractID,
		MemberID:         contract.MemberID,
		ContractType:     contract.ContractType,
		StartDate:        contract.StartDate,
		EndDate:          contract.EndDate,
		MonthlyFee:       contract.MonthlyFee,
		Status:           string(contract.Status),
	}
	model.FromDomainBaseEntity(contract.BaseEntity)
	return model
}
