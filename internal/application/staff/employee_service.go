package staff

import (
	"context"
	"strings"

	"github.com/aigym/backend/internal/application/normalize"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/aigym/backend/internal/domain/staff"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeService handles employee-related business operations
type EmployeeService struct {
	employeeRepo staff.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo staff.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// Create validates and normalizes an employee form submission and persists it
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = normalize.ComposeName(req.FirstName, req.PaternalLastName)
	}

	var missing []string
	if name == "" {
		missing = append(missing, "name or first_name/paternal_last_name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.PrimaryPhone) == "" {
		missing = append(missing, "primary_phone")
	}
	if len(missing) > 0 {
		return nil, shared.NewValidationErrorf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	employeeType := normalize.TextOr(req.EmployeeType, string(staff.EmployeeTypeB))
	if !staff.ValidEmployeeType(employeeType) {
		return nil, shared.NewValidationErrorf("Invalid employee_type: %s", employeeType)
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		employeeID = normalize.ExternalID("emp")
	}

	employee := &staff.Employee{
		BaseEntity:            shared.NewBaseEntity(),
		EmployeeID:            employeeID,
		Name:                  name,
		FirstName:             normalize.Text(req.FirstName),
		PaternalLastName:      normalize.Text(req.PaternalLastName),
		MaternalLastName:      normalize.Text(req.MaternalLastName),
		Position:              normalize.Text(req.Position),
		Department:            normalize.Text(req.Department),
		Status:                normalize.TextOr(req.Status, "active"),
		HireDate:              normalize.Date(req.HireDate),
		DateOfBirth:           normalize.Date(req.DateOfBirth),
		Email:                 normalize.Text(req.Email),
		PrimaryPhone:          normalize.Text(req.PrimaryPhone),
		SecondaryPhone:        normalize.Text(req.SecondaryPhone),
		Address1:              normalize.Text(req.Address1),
		City:                  normalize.Text(req.City),
		State:                 normalize.Text(req.State),
		ZipCode:               normalize.Text(req.ZipCode),
		EmergencyContactName:  normalize.Text(req.EmergencyContactName),
		EmergencyContactPhone: normalize.Text(req.EmergencyContactPhone),
		Salary:                normalize.Money(req.Salary),
		AccessLevel:           normalize.Text(req.AccessLevel),
		Manager:               normalize.Text(req.Manager),
		WorkSchedule:          normalize.Text(req.WorkSchedule),
		Skills:                normalize.Text(req.Skills),
		Certifications:        normalize.Text(req.Certifications),
		Notes:                 normalize.Text(req.Notes),
		Version:               "1",
		Username:              normalize.Text(req.Username),
		EmployeeType:          staff.EmployeeType(employeeType),
	}

	if strings.TrimSpace(req.Password) != "" {
		if employee.Username == nil {
			return nil, shared.NewValidationError("Missing required fields: username (required when password is set)")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, shared.NewDomainError(shared.CodeInternal, "Failed to hash password")
		}
		employee.PasswordHash = string(hash)
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	resp := ToEmployeeResponse(employee)
	return &resp, nil
}

// List retrieves a filtered page of employees
func (s *EmployeeService) List(ctx context.Context, q shared.ListQuery) (*shared.Paginated[EmployeeResponse], error) {
	q = q.Normalize()
	employees, total, err := s.employeeRepo.FindPage(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, ToEmployeeResponse(&employees[i]))
	}
	page := shared.NewPaginated(items, total, q)
	return &page, nil
}

// GetByID retrieves a single employee
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToEmployeeResponse(employee)
	return &resp, nil
}

// Update applies a partial edit to an existing employee
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EmployeeType != nil {
		if !staff.ValidEmployeeType(*req.EmployeeType) {
			return nil, shared.NewValidationErrorf("Invalid employee_type: %s", *req.EmployeeType)
		}
		employee.EmployeeType = staff.EmployeeType(*req.EmployeeType)
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, shared.NewValidationError("Missing required fields: name")
		}
		employee.Name = strings.TrimSpace(*req.Name)
	}
	if req.FirstName != nil {
		employee.FirstName = normalize.Text(*req.FirstName)
	}
	if req.PaternalLastName != nil {
		employee.PaternalLastName = normalize.Text(*req.PaternalLastName)
	}
	if req.MaternalLastName != nil {
		employee.MaternalLastName = normalize.Text(*req.MaternalLastName)
	}
	if req.Position != nil {
		employee.Position = normalize.Text(*req.Position)
	}
	if req.Department != nil {
		employee.Department = normalize.Text(*req.Department)
	}
	if req.Status != nil {
		employee.Status = normalize.TextOr(*req.Status, "active")
	}
	if req.HireDate != nil {
		employee.HireDate = normalize.Date(*req.HireDate)
	}
	if req.DateOfBirth != nil {
		employee.DateOfBirth = normalize.Date(*req.DateOfBirth)
	}
	if req.Email != nil {
		employee.Email = normalize.Text(*req.Email)
	}
	if req.PrimaryPhone != nil {
		employee.PrimaryPhone = normalize.Text(*req.PrimaryPhone)
	}
	if req.SecondaryPhone != nil {
		employee.SecondaryPhone = normalize.Text(*req.SecondaryPhone)
	}
	if req.Address1 != nil {
		employee.Address1 = normalize.Text(*req.Address1)
	}
	if req.City != nil {
		employee.City = normalize.Text(*req.City)
	}
	if req.State != nil {
		employee.State = normalize.Text(*req.State)
	}
	if req.ZipCode != nil {
		employee.ZipCode = normalize.Text(*req.ZipCode)
	}
	if req.EmergencyContactName != nil {
		employee.EmergencyContactName = normalize.Text(*req.EmergencyContactName)
	}
	if req.EmergencyContactPhone != nil {
		employee.EmergencyContactPhone = normalize.Text(*req.EmergencyContactPhone)
	}
	if req.Salary != nil {
		employee.Salary = normalize.Money(req.Salary)
	}
	if req.AccessLevel != nil {
		employee.AccessLevel = normalize.Text(*req.AccessLevel)
	}
	if req.Manager != nil {
		employee.Manager = normalize.Text(*req.Manager)
	}
	if req.WorkSchedule != nil {
		employee.WorkSchedule = normalize.Text(*req.WorkSchedule)
	}
	if req.Skills != nil {
		employee.Skills = normalize.Text(*req.Skills)
	}
	if req.Certifications != nil {
		employee.Certifications = normalize.Text(*req.Certifications)
	}
	if req.Notes != nil {
		employee.Notes = normalize.Text(*req.Notes)
	}

	employee.Touch()
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	resp := ToEmployeeResponse(employee)
	return &resp, nil
}
