package persistence

import (
	"context"

	"github.com/aigym/backend/internal/domain/integration"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/aigym/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormWebhookLogRepository implements WebhookLogRepository using GORM
type GormWebhookLogRepository struct {
	db *gorm.DB
}

// NewGormWebhookLogRepository creates a new GormWebhookLogRepository
func NewGormWebhookLogRepository(db *gorm.DB) *GormWebhookLogRepository {
	return &GormWebhookLogRepository{db: db}
}

// Append inserts an audit entry. Entries are never updated.
func (r *GormWebhookLogRepository) Append(ctx context.Context, entry *integration.WebhookLogEntry) error {
	model := models.WebhookLogModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindPage returns one page of audit entries, newest first
func (r *GormWebhookLogRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]integration.WebhookLogEntry, int64, error) {
	q = q.Normalize()

	var total int64
	countQuery := applyListFilters(r.db.WithContext(ctx).Model(&models.WebhookLogModel{}), q, nil)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logModels []models.WebhookLogModel
	pageQuery := applyListQuery(r.db.WithContext(ctx).Model(&models.WebhookLogModel{}), q, nil)
	if err := pageQuery.Find(&logModels).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]integration.WebhookLogEntry, len(logModels))
	for i := range logModels {
		entries[i] = *logModels[i].ToDomain()
	}
	return entries, total, nil
}

// Count counts all audit entries
func (r *GormWebhookLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.WebhookLogModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ integration.WebhookLogRepository = (*GormWebhookLogRepository)(nil)
