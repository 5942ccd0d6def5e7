package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aigym/backend/internal/domain/billing"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]billing.Payment, int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]billing.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) CompletedTotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func TestPaymentService_Create_Success(t *testing.T) {
	repo := new(MockPaymentRepository)
	svc := NewPaymentService(repo)

	var saved *billing.Payment
	repo.On("Save", mock.Anything, mock.AnythingOfType("*billing.Payment")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*billing.Payment)
		}).
		Return(nil)

	memberID := uuid.New()
	resp, err := svc.Create(context.Background(), CreatePaymentRequest{
		MemberID:      memberID.String(),
		MemberName:    "Ana García",
		Amount:        "599.90",
		PaymentMethod: billing.MethodCash,
		PaymentDate:   "2024-06-01",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, memberID, saved.MemberID)
	assert.Equal(t, "599.9", saved.Amount.String())
	assert.Equal(t, billing.PaymentStatusCompleted, saved.Status)
	assert.Equal(t, 2024, resp.PaymentDate.Year())
	repo.AssertExpectations(t)
}

func TestPaymentService_Create_RejectsNonPositiveAmount(t *testing.T) {
	repo := new(MockPaymentRepository)
	svc := NewPaymentService(repo)

	for _, amount := range []any{"0", "-10", "abc", nil} {
		_, err := svc.Create(context.Background(), CreatePaymentRequest{
			MemberID:      uuid.New().String(),
			Amount:        amount,
			PaymentMethod: billing.MethodCash,
		})
		require.Error(t, err, "amount %v should be rejected", amount)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, shared.CodeValidation, domainErr.Code)
	}
	repo.AssertNotCalled(t, "Save")
}

func TestPaymentService_Create_RejectsUnknownMethod(t *testing.T) {
	repo := new(MockPaymentRepository)
	svc := NewPaymentService(repo)

	_, err := svc.Create(context.Background(), CreatePaymentRequest{
		MemberID:      uuid.New().String(),
		Amount:        "100",
		PaymentMethod: "check",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, shared.CodeValidation, domainErr.Code)
}

func TestPaymentService_Create_MissingFields(t *testing.T) {
	repo := new(MockPaymentRepository)
	svc := NewPaymentService(repo)

	_, err := svc.Create(context.Background(), CreatePaymentRequest{})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Contains(t, domainErr.Message, "member_id")
	assert.Contains(t, domainErr.Message, "payment_method")
}

func TestPaymentService_List_FiltersByStatus(t *testing.T) {
	repo := new(MockPaymentRepository)
	svc := NewPaymentService(repo)

	q := shared.ListQuery{Page: 1, Limit: 50, Status: "completed"}
	repo.On("FindPage", mock.Anything, q).
		Return([]billing.Payment{{MemberName: "Ana García"}}, int64(1), nil)

	page, err := svc.List(context.Background(), shared.ListQuery{Status: "completed"})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	repo.AssertExpectations(t)
}
