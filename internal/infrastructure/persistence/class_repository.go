package persistence

import (
	"context"
	"errors"

	"github.com/aigym/backend/internal/domain/schedule"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/aigym/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var classSearchColumns = []string{"class_name", "instructor", "class_type"}

// GormClassRepository implements ClassRepository using GORM
type GormClassRepository struct {
	db *gorm.DB
}

// NewGormClassRepository creates a new GormClassRepository
func NewGormClassRepository(db *gorm.DB) *GormClassRepository {
	return &GormClassRepository{db: db}
}

// FindByID finds a class occurrence by id
func (r *GormClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.ClassSession, error) {
	var model models.ClassModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPage returns one page of class occurrences plus the total matching count
func (r *GormClassRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]schedule.ClassSession, int64, error) {
	q = q.Normalize()

	var total int64
	countQuery := applyListFilters(r.db.WithContext(ctx).Model(&models.ClassModel{}), q, classSearchColumns)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var classModels []models.ClassModel
	pageQuery := applyListQuery(r.db.WithContext(ctx).Model(&models.ClassModel{}), q, classSearchColumns)
	if err := pageQuery.Find(&classModels).Error; err != nil {
		return nil, 0, err
	}

	sessions := make([]schedule.ClassSession, len(classModels))
	for i := range classModels {
		sessions[i] = *classModels[i].ToDomain()
	}
	return sessions, total, nil
}

// Save creates or updates a class occurrence
func (r *GormClassRepository) Save(ctx context.Context, session *schedule.ClassSession) error {
	model := models.ClassModelFromDomain(session)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts all class occurrences
func (r *GormClassRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ClassModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ schedule.ClassRepository = (*GormClassRepository)(nil)
