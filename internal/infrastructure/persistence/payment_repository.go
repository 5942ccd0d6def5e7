package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/aigym/backend/internal/domain/billing"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/aigym/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var paymentSearchColumns = []string{"member_name", "transaction_id"}

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by id
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPage returns one page of payments plus the total matching count
func (r *GormPaymentRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]billing.Payment, int64, error) {
	q = q.Normalize()

	var total int64
	countQuery := applyListFilters(r.db.WithContext(ctx).Model(&models.PaymentModel{}), q, paymentSearchColumns)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var paymentModels []models.PaymentModel
	pageQuery := applyListQuery(r.db.WithContext(ctx).Model(&models.PaymentModel{}), q, paymentSearchColumns)
	if err := pageQuery.Find(&paymentModels).Error; err != nil {
		return nil, 0, err
	}

	payments := make([]billing.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = *paymentModels[i].ToDomain()
	}
	return payments, total, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts all payments
func (r *GormPaymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PaymentModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CompletedTotalSince sums completed payment amounts with a payment date
// at or after the given time.
func (r *GormPaymentRepository) CompletedTotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	row := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ? AND payment_date >= ?", billing.PaymentStatusCompleted, since).
		Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

var _ billing.PaymentRepository = (*GormPaymentRepository)(nil)
