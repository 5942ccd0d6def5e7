package staff

import (
	"context"
	"time"

	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeType controls which routes an employee session may reach.
// Type A has full access; type B has everything except payments.
type EmployeeType string

const (
	EmployeeTypeA EmployeeType = "A"
	EmployeeTypeB EmployeeType = "B"
)

// ValidEmployeeType reports whether t is a known employee type
func ValidEmployeeType(t string) bool {
	return EmployeeType(t) == EmployeeTypeA || EmployeeType(t) == EmployeeTypeB
}

// Employee is a gym staff record. Login credentials are optional: an
// employee row without a username cannot sign in.
type Employee struct {
	shared.BaseEntity
	EmployeeID            string           `json:"employee_id"`
	Name                  string           `json:"name"`
	FirstName             *string          `json:"first_name"`
	PaternalLastName      *string          `json:"paternal_last_name"`
	MaternalLastName      *string          `json:"maternal_last_name"`
	Position              *string          `json:"position"`
	Department            *string          `json:"department"`
	Status                string           `json:"status"`
	HireDate              *time.Time       `json:"hire_date"`
	DateOfBirth           *time.Time       `json:"date_of_birth"`
	Email                 *string          `json:"email"`
	PrimaryPhone          *string          `json:"primary_phone"`
	SecondaryPhone        *string          `json:"secondary_phone"`
	Address1              *string          `json:"address_1"`
	City                  *string          `json:"city"`
	State                 *string          `json:"state"`
	ZipCode               *string          `json:"zip_code"`
	EmergencyContactName  *string          `json:"emergency_contact_name"`
	EmergencyContactPhone *string          `json:"emergency_contact_phone"`
	Salary                *decimal.Decimal `json:"salary"`
	AccessLevel           *string          `json:"access_level"`
	Manager               *string          `json:"manager"`
	WorkSchedule          *string          `json:"work_schedule"`
	Skills                *string          `json:"skills"`
	Certifications        *string          `json:"certifications"`
	Notes                 *string          `json:"notes"`
	Version               string           `json:"version"`

	Username     *string      `json:"username,omitempty"`
	PasswordHash string       `json:"-"`
	EmployeeType EmployeeType `json:"employee_type,omitempty"`
}

// EmployeeRepository is the persistence port for employees
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByUsername(ctx context.Context, username string) (*Employee, error)
	FindPage(ctx context.Context, q shared.ListQuery) ([]Employee, int64, error)
	Save(ctx context.Context, employee *Employee) error
	Count(ctx context.Context) (int64, error)
}
