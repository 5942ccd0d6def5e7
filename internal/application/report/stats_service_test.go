package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aigym/backend/internal/domain/billing"
	"github.com/aigym/backend/internal/domain/membership"
	"github.com/aigym/backend/internal/domain/schedule"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// === Mock Repositories ===

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByMondayID(ctx context.Context, mondayID string) (*membership.Member, error) {
	args := m.Called(ctx, mondayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Member), args.Error(1)
}

func (m *MockMemberRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]membership.Member, int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]membership.Member), args.Get(1).(int64), args.Error(2)
}

func (m *MockMemberRepository) Save(ctx context.Context, member *membership.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateByMondayID(ctx context.Context, mondayID string, values map[string]any) error {
	args := m.Called(ctx, mondayID, values)
	return args.Error(0)
}

func (m *MockMemberRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Contract), args.Error(1)
}

func (m *MockContractRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]membership.Contract, int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]membership.Contract), args.Get(1).(int64), args.Error(2)
}

func (m *MockContractRepository) Save(ctx context.Context, contract *membership.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateByMondayID(ctx context.Context, mondayID string, values map[string]any) error {
	args := m.Called(ctx, mondayID, values)
	return args.Error(0)
}

func (m *MockContractRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

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

type MockClassRepository struct {
	mock.Mock
}

func (m *MockClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.ClassSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.ClassSession), args.Error(1)
}

func (m *MockClassRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]schedule.ClassSession, int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]schedule.ClassSession), args.Get(1).(int64), args.Error(2)
}

func (m *MockClassRepository) Save(ctx context.Context, session *schedule.ClassSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockClassRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestStatsService_Collect_SumsCounts(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	contractRepo := new(MockContractRepository)
	paymentRepo := new(MockPaymentRepository)
	classRepo := new(MockClassRepository)
	svc := NewStatsService(memberRepo, contractRepo, paymentRepo, classRepo)

	memberRepo.On("Count", mock.Anything).Return(int64(120), nil)
	contractRepo.On("Count", mock.Anything).Return(int64(95), nil)
	paymentRepo.On("Count", mock.Anything).Return(int64(340), nil)
	classRepo.On("Count", mock.Anything).Return(int64(18), nil)
	paymentRepo.On("CompletedTotalSince", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(decimal.RequireFromString("15499.5"), nil)

	stats, err := svc.Collect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.Members)
	assert.Equal(t, int64(95), stats.Contracts)
	assert.Equal(t, int64(340), stats.Payments)
	assert.Equal(t, int64(18), stats.Schedule)
	assert.Equal(t, int64(573), stats.Total)
	assert.Equal(t, "15499.5", stats.MonthlyRevenue.String())
	memberRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
}

func TestStatsService_Collect_RevenueWindowStartsAtMonthBoundary(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	contractRepo := new(MockContractRepository)
	paymentRepo := new(MockPaymentRepository)
	classRepo := new(MockClassRepository)
	svc := NewStatsService(memberRepo, contractRepo, paymentRepo, classRepo)

	memberRepo.On("Count", mock.Anything).Return(int64(0), nil)
	contractRepo.On("Count", mock.Anything).Return(int64(0), nil)
	paymentRepo.On("Count", mock.Anything).Return(int64(0), nil)
	classRepo.On("Count", mock.Anything).Return(int64(0), nil)

	var since time.Time
	paymentRepo.On("CompletedTotalSince", mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			since = args.Get(1).(time.Time)
		}).
		Return(decimal.Zero, nil)

	_, err := svc.Collect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, since.Day())
	assert.Equal(t, 0, since.Hour())
	assert.Equal(t, time.Now().Month(), since.Month())
}

func TestStatsService_Collect_PropagatesFirstError(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	contractRepo := new(MockContractRepository)
	paymentRepo := new(MockPaymentRepository)
	classRepo := new(MockClassRepository)
	svc := NewStatsService(memberRepo, contractRepo, paymentRepo, classRepo)

	boom := errors.New("connection reset")
	memberRepo.On("Count", mock.Anything).Return(int64(0), boom)
	contractRepo.On("Count", mock.Anything).Return(int64(1), nil)
	paymentRepo.On("Count", mock.Anything).Return(int64(1), nil)
	classRepo.On("Count", mock.Anything).Return(int64(1), nil)
	paymentRepo.On("CompletedTotalSince", mock.Anything, mock.Anything).Return(decimal.Zero, nil)

	_, err := svc.Collect(context.Background())

	assert.ErrorIs(t, err, boom)
}
