package models

import (
	"time"

	"github.com/aigym/backend/internal/domain/staff"
	"github.com/shopspring/decimal"
)

// EmployeeModel is the GORM model for the employees table
type EmployeeModel struct {
	BaseModel
	EmployeeID            string `gorm:"uniqueIndex;not null"`
	Name                  string `gorm:"not null"`
	FirstName             *string
	PaternalLastName      *string
	MaternalLastName      *string
	Position              *string
	Department            *string
	Status                string `gorm:"not null;default:active;index"`
	HireDate              *time.Time
	DateOfBirth           *time.Time
	Email                 *string
	PrimaryPhone          *string
	SecondaryPhone        *string
	Address1              *string `gorm:"column:address_1"`
	City                  *string
	State                 *string
	ZipCode               *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	Salary                *decimal.Decimal `gorm:"type:numeric(12,2)"`
	AccessLevel           *string
	Manager               *string
	WorkSchedule          *string
	Skills                *string
	Certifications        *string
	Notes                 *string
	Version               string  `gorm:"not null;default:1"`
	Username              *string `gorm:"uniqueIndex"`
	PasswordHash          string
	EmployeeType          string `gorm:"not null;default:B"`
}

// TableName returns the table name for EmployeeModel
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the model to a domain employee
func (m *EmployeeModel) ToDomain() *staff.Employee {
	return &staff.Employee{
		BaseEntity:            m.BaseModel.ToDomain(),
		EmployeeID:            m.EmployeeID,
		Name:                  m.Name,
		FirstName:             m.FirstName,
		PaternalLastName:      m.PaternalLastName,
		MaternalLastName:      m.MaternalLastName,
		Position:              m.Position,
		Department:            m.Department,
		Status:                m.Status,
		HireDate:              m.HireDate,
		DateOfBirth:           m.DateOfBirth,
		Email:                 m.Email,
		PrimaryPhone:          m.PrimaryPhone,
		SecondaryPhone:        m.SecondaryPhone,
		Address1:              m.Address1,
		City:                  m.City,
		State:                 m.State,
		ZipCode:               m.ZipCode,
		EmergencyContactName:  m.EmergencyContactName,
		EmergencyContactPhone: m.EmergencyContactPhone,
		Salary:                m.Salary,
		AccessLevel:           m.AccessLevel,
		Manager:               m.Manager,
		WorkSchedule:          m.WorkSchedule,
		Skills:                m.Skills,
		Certifications:        m.Certifications,
		Notes:                 m.Notes,
		Version:               m.Version,
		Username:              m.Username,
		PasswordHash:          m.PasswordHash,
		EmployeeType:          staff.EmployeeType(m.EmployeeType),
	}
}

// EmployeeModelFromDomain converts a domain employee to its model
func EmployeeModelFromDomain(employee *staff.Employee) *EmployeeModel {
	model := &EmployeeModel{
		EmployeeID:            employee.EmployeeID,
		Name:                  employee.Name,
		FirstName:             employee.FirstName,
		PaternalLastName:      employee.PaternalLastName,
		MaternalLastName:      employee.MaternalLastName,
		Position:              employee.Position,
		Department:            employee.Department,
		Status:                employee.Status,
		HireDate:              employee.HireDate,
		DateOfBirth:           employee.DateOfBirth,
		Email:                 employee.Email,
		PrimaryPhone:          employee.PrimaryPhone,
		SecondaryPhone:        employee.SecondaryPhone,
		Address1:              employee.Address1,
		City:                  employee.City,
		State:                 employee.State,
		ZipCode:               employee.ZipCode,
		EmergencyContactName:  employee.EmergencyContactName,
		EmergencyContactPhone: employee.EmergencyContactPhone,
		Salary:                employee.Salary,
		AccessLevel:           employee.AccessLevel,
		Manager:               employee.Manager,
		WorkSchedule:          employee.WorkSchedule,
		Skills:                employee.Skills,
		Certifications:        employee.Certifications,
		Notes:                 employee.Notes,
		Version:               employee.Version,
		Username:              employee.Username,
		PasswordHash:          employee.PasswordHash,
		EmployeeType:          string(employee.EmployeeType),
	}
	model.FromDomainBaseEntity(employee.BaseEntity)
	return model
}
