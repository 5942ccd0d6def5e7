package persistence

import (
	"context"
	"errors"

	"github.com/aigym/backend/internal/domain/shared"
	"github.com/aigym/backend/internal/domain/staff"
	"github.com/aigym/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var employeeSearchColumns = []string{"name", "email", "first_name", "paternal_last_name", "position", "department"}

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by id
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUsername finds an employee by login username
func (r *GormEmployeeRepository) FindByUsername(ctx context.Context, username string) (*staff.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&model, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPage returns one page of employees plus the total matching count
func (r *GormEmployeeRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]staff.Employee, int64, error) {
	q = q.Normalize()

	var total int64
	countQuery := applyListFilters(r.db.WithContext(ctx).Model(&models.EmployeeModel{}), q, employeeSearchColumns)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employeeModels []models.EmployeeModel
	pageQuery := applyListQuery(r.db.WithContext(ctx).Model(&models.EmployeeModel{}), q, employeeSearchColumns)
	if err := pageQuery.Find(&employeeModels).Error; err != nil {
		return nil, 0, err
	}

	employees := make([]staff.Employee, len(employeeModels))
	for i := range employeeModels {
		employees[i] = *employeeModels[i].ToDomain()
	}
	return employees, total, nil
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *staff.Employee) error {
	model := models.EmployeeModelFromDomain(employee)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts all employees
func (r *GormEmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ staff.EmployeeRepository = (*GormEmployeeRepository)(nil)
