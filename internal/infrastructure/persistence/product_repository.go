package persistence

import (
	"context"
	"errors"

	"github.com/aigym/backend/internal/domain/catalog"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/aigym/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var productSearchColumns = []string{"name", "product_id", "type", "category"}

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by id
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPage returns one page of products plus the total matching count.
// Products use sale_status for the status filter.
func (r *GormProductRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]catalog.Product, int64, error) {
	q = q.Normalize()

	base := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&models.ProductModel{})
		if q.Status != "" {
			query = query.Where("sale_status = ?", q.Status)
		}
		if q.Category != "" {
			query = query.Where("category = ?", q.Category)
		}
		if q.Brand != "" {
			query = query.Where("brand = ?", q.Brand)
		}
		return query
	}

	var total int64
	countQuery := base()
	if q.Search != "" {
		countQuery = searchPredicate(countQuery, q.Search, productSearchColumns)
	}
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	pageQuery := base()
	if q.Search != "" {
		pageQuery = searchPredicate(pageQuery, q.Search, productSearchColumns)
	}
	var productModels []models.ProductModel
	if err := pageQuery.
		Order("created_at DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, err
	}

	products := make([]catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = *productModels[i].ToDomain()
	}
	return products, total, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts all products
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProductModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
