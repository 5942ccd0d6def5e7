package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/aigym/backend/internal/domain/membership"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/aigym/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var contractSearchColumns = []string{"contract_type", "monday_contract_id"}

// GormContractRepository implements ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a contract by id, preloading its member
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).
		Preload("Member").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPage returns one page of contracts plus the total matching count
func (r *GormContractRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]membership.Contract, int64, error) {
	q = q.Normalize()

	var total int64
	countQuery := applyListFilters(r.db.WithContext(ctx).Model(&models.ContractModel{}), q, contractSearchColumns)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contractModels []models.ContractModel
	pageQuery := applyListQuery(r.db.WithContext(ctx).Model(&models.ContractModel{}), q, contractSearchColumns)
	if err := pageQuery.Preload("Member").Find(&contractModels).Error; err != nil {
		return nil, 0, err
	}

	contracts := make([]membership.Contract, len(contractModels))
	for i := range contractModels {
		contracts[i] = *contractModels[i].ToDomain()
	}
	return contracts, total, nil
}

// Save creates or updates a contract
func (r *GormContractRepository) Save(ctx context.Context, contract *membership.Contract) error {
	model := models.ContractModelFromDomain(contract)
	return r.db.WithContext(ctx).Omit("Member").Save(model).Error
}

// UpdateByMondayID writes the given column values to the contract with the
// given external id. Returns shared.ErrNotFound when no row matches.
func (r *GormContractRepository) UpdateByMondayID(ctx context.Context, mondayID string, values map[string]any) error {
	updates := make(map[string]any, len(values)+1)
	for k, v := range values {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Where("monday_contract_id = ?", mondayID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all contracts
func (r *GormContractRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ContractModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ membership.ContractRepository = (*GormContractRepository)(nil)
