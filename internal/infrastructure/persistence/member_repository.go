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

var memberSearchColumns = []string{"name", "email", "first_name", "paternal_last_name"}

// GormMemberRepository implements MemberRepository using GORM
type GormMemberRepository struct {
	db *gorm.DB
}

// NewGormMemberRepository creates a new GormMemberRepository
func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// FindByID finds a member by id, preloading its contracts
func (r *GormMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).
		Preload("Contracts").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByMondayID finds a member by its external CRM id
func (r *GormMemberRepository) FindByMondayID(ctx context.Context, mondayID string) (*membership.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).
		First(&model, "monday_member_id = ?", mondayID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPage returns one page of members plus the total matching count
func (r *GormMemberRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]membership.Member, int64, error) {
	q = q.Normalize()

	var total int64
	countQuery := applyListFilters(r.db.WithContext(ctx).Model(&models.MemberModel{}), q, memberSearchColumns)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var memberModels []models.MemberModel
	pageQuery := applyListQuery(r.db.WithContext(ctx).Model(&models.MemberModel{}), q, memberSearchColumns)
	if err := pageQuery.Find(&memberModels).Error; err != nil {
		return nil, 0, err
	}

	members := make([]membership.Member, len(memberModels))
	for i := range memberModels {
		members[i] = *memberModels[i].ToDomain()
	}
	return members, total, nil
}

// Save creates or updates a member
func (r *GormMemberRepository) Save(ctx context.Context, member *membership.Member) error {
	model := models.MemberModelFromDomain(member)
	return r.db.WithContext(ctx).Omit("Contracts").Save(model).Error
}

// UpdateByMondayID writes the given column values to the member with the
// given external id. Returns shared.ErrNotFound when no row matches.
func (r *GormMemberRepository) UpdateByMondayID(ctx context.Context, mondayID string, values map[string]any) error {
	updates := make(map[string]any, len(values)+1)
	for k, v := range values {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&models.MemberModel{}).
		Where("monday_member_id = ?", mondayID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all members
func (r *GormMemberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MemberModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ membership.MemberRepository = (*GormMemberRepository)(nil)
