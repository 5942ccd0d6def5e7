package staff

import (
	"time"

	"github.com/aigym/backend/internal/domain/staff"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest carries a raw employee form submission
type CreateEmployeeRequest struct {
	EmployeeID            string `json:"employee_id"`
	Name                  string `json:"name"`
	FirstName             string `json:"first_name"`
	PaternalLastName      string `json:"paternal_last_name"`
	MaternalLastName      string `json:"maternal_last_name"`
	Position              string `json:"position"`
	Department            string `json:"department"`
	Status                string `json:"status"`
	HireDate              string `json:"hire_date"`
	DateOfBirth           string `json:"date_of_birth"`
	Email                 string `json:"email"`
	PrimaryPhone          string `json:"primary_phone"`
	SecondaryPhone        string `json:"secondary_phone"`
	Address1              string `json:"address_1"`
	City                  string `json:"city"`
	State                 string `json:"state"`
	ZipCode               string `json:"zip_code"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	Salary                any    `json:"salary"`
	AccessLevel           string `json:"access_level"`
	Manager               string `json:"manager"`
	WorkSchedule          string `json:"work_schedule"`
	Skills                string `json:"skills"`
	Certifications        string `json:"certifications"`
	Notes                 string `json:"notes"`
	Username              string `json:"username"`
	Password              string `json:"password"`
	EmployeeType          string `json:"employee_type"`
}

// UpdateEmployeeRequest carries a partial employee edit
type UpdateEmployeeRequest struct {
	Name                  *string `json:"name"`
	FirstName             *string `json:"first_name"`
	PaternalLastName      *string `json:"paternal_last_name"`
	MaternalLastName      *string `json:"maternal_last_name"`
	Position              *string `json:"position"`
	Department            *string `json:"department"`
	Status                *string `json:"status"`
	HireDate              *string `json:"hire_date"`
	DateOfBirth           *string `json:"date_of_birth"`
	Email                 *string `json:"email"`
	PrimaryPhone          *string `json:"primary_phone"`
	SecondaryPhone        *string `json:"secondary_phone"`
	Address1              *string `json:"address_1"`
	City                  *string `json:"city"`
	State                 *string `json:"state"`
	ZipCode               *string `json:"zip_code"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	Salary                any     `json:"salary"`
	AccessLevel           *string `json:"access_level"`
	Manager               *string `json:"manager"`
	WorkSchedule          *string `json:"work_schedule"`
	Skills                *string `json:"skills"`
	Certifications        *string `json:"certifications"`
	Notes                 *string `json:"notes"`
	EmployeeType          *string `json:"employee_type"`
}

// EmployeeResponse is an employee as rendered in API responses
type EmployeeResponse struct {
	ID                    uuid.UUID        `json:"id"`
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
	Username              *string          `json:"username,omitempty"`
	EmployeeType          string           `json:"employee_type,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// ToEmployeeResponse maps a domain employee to its API shape. The password
// hash never leaves the service layer.
func ToEmployeeResponse(e *staff.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                    e.ID,
		EmployeeID:            e.EmployeeID,
		Name:                  e.Name,
		FirstName:             e.FirstName,
		PaternalLastName:      e.PaternalLastName,
		MaternalLastName:      e.MaternalLastName,
		Position:              e.Position,
		Department:            e.Department,
		Status:                e.Status,
		HireDate:              e.HireDate,
		DateOfBirth:           e.DateOfBirth,
		Email:                 e.Email,
		PrimaryPhone:          e.PrimaryPhone,
		SecondaryPhone:        e.SecondaryPhone,
		Address1:              e.Address1,
		City:                  e.City,
		State:                 e.State,
		ZipCode:               e.ZipCode,
		EmergencyContactName:  e.EmergencyContactName,
		EmergencyContactPhone: e.EmergencyContactPhone,
		Salary:                e.Salary,
		AccessLevel:           e.AccessLevel,
		Manager:               e.Manager,
		WorkSchedule:          e.WorkSchedule,
		Skills:                e.Skills,
		Certifications:        e.Certifications,
		Notes:                 e.Notes,
		Username:              e.Username,
		EmployeeType:          string(e.EmployeeType),
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}

// LoginRequest carries employee credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token pair and the signed-in employee
type LoginResponse struct {
	AccessToken           string           `json:"access_token"`
	RefreshToken          string           `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time        `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time        `json:"refresh_token_expires_at"`
	TokenType             string           `json:"token_type"`
	Employee              EmployeeResponse `json:"employee"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshResponse carries a renewed token pair
type RefreshResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}
