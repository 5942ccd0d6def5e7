package handler

import (
	"context"
	"time"

	"github.com/aigym/backend/internal/domain/billing"
	"github.com/aigym/backend/internal/domain/catalog"
	"github.com/aigym/backend/internal/domain/integration"
	"github.com/aigym/backend/internal/domain/membership"
	"github.com/aigym/backend/internal/domain/schedule"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Function-backed repository fakes. Unset functions return zero values so
// each test only wires the calls it cares about.

type fakeMemberRepo struct {
	findByID        func(ctx context.Context, id uuid.UUID) (*membership.Member, error)
	findByMondayID  func(ctx context.Context, mondayID string) (*membership.Member, error)
	findPage        func(ctx context.Context, q shared.ListQuery) ([]membership.Member, int64, error)
	save            func(ctx context.Context, member *membership.Member) error
	updateByMonday  func(ctx context.Context, mondayID string, values map[string]any) error
	count           func(ctx context.Context) (int64, error)
}

func (f *fakeMemberRepo) FindByID(ctx context.Context, id uuid.UUID) (*membership.Member, error) {
	if f.findByID == nil {
		return nil, shared.ErrNotFound
	}
	return f.findByID(ctx, id)
}

func (f *fakeMemberRepo) FindByMondayID(ctx context.Context, mondayID string) (*membership.Member, error) {
	if f.findByMondayID == nil {
		return nil, shared.ErrNotFound
	}
	return f.findByMondayID(ctx, mondayID)
}

func (f *fakeMemberRepo) FindPage(ctx context.Context, q shared.ListQuery) ([]membership.Member, int64, error) {
	if f.findPage == nil {
		return nil, 0, nil
	}
	return f.findPage(ctx, q)
}

func (f *fakeMemberRepo) Save(ctx context.Context, member *membership.Member) error {
	if f.save == nil {
		return nil
	}
	return f.save(ctx, member)
}

func (f *fakeMemberRepo) UpdateByMondayID(ctx context.Context, mondayID string, values map[string]any) error {
	if f.updateByMonday == nil {
		return nil
	}
	return f.updateByMonday(ctx, mondayID, values)
}

func (f *fakeMemberRepo) Count(ctx context.Context) (int64, error) {
	if f.count == nil {
		return 0, nil
	}
	return f.count(ctx)
}

type fakeProductRepo struct {
	findByID func(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	findPage func(ctx context.Context, q shared.ListQuery) ([]catalog.Product, int64, error)
	save     func(ctx context.Context, product *catalog.Product) error
	count    func(ctx context.Context) (int64, error)
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	if f.findByID == nil {
		return nil, shared.ErrNotFound
	}
	return f.findByID(ctx, id)
}

func (f *fakeProductRepo) FindPage(ctx context.Context, q shared.ListQuery) ([]catalog.Product, int64, error) {
	if f.findPage == nil {
		return nil, 0, nil
	}
	return f.findPage(ctx, q)
}

func (f *fakeProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	if f.save == nil {
		return nil
	}
	return f.save(ctx, product)
}

func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	if f.count == nil {
		return 0, nil
	}
	return f.count(ctx)
}

type fakeContractRepo struct {
	findByID       func(ctx context.Context, id uuid.UUID) (*membership.Contract, error)
	findPage       func(ctx context.Context, q shared.ListQuery) ([]membership.Contract, int64, error)
	save           func(ctx context.Context, contract *membership.Contract) error
	updateByMonday func(ctx context.Context, mondayID string, values map[string]any) error
	count          func(ctx context.Context) (int64, error)
}

func (f *fakeContractRepo) FindByID(ctx context.Context, id uuid.UUID) (*membership.Contract, error) {
	if f.findByID == nil {
		return nil, shared.ErrNotFound
	}
	return f.findByID(ctx, id)
}

func (f *fakeContractRepo) FindPage(ctx context.Context, q shared.ListQuery) ([]membership.Contract, int64, error) {
	if f.findPage == nil {
		return nil, 0, nil
	}
	return f.findPage(ctx, q)
}

func (f *fakeContractRepo) Save(ctx context.Context, contract *membership.Contract) error {
	if f.save == nil {
		return nil
	}
	return f.save(ctx, contract)
}

func (f *fakeContractRepo) UpdateByMondayID(ctx context.Context, mondayID string, values map[string]any) error {
	if f.updateByMonday == nil {
		return nil
	}
	return f.updateByMonday(ctx, mondayID, values)
}

func (f *fakeContractRepo) Count(ctx context.Context) (int64, error) {
	if f.count == nil {
		return 0, nil
	}
	return f.count(ctx)
}

type fakePaymentRepo struct {
	findByID            func(ctx context.Context, id uuid.UUID) (*billing.Payment, error)
	findPage            func(ctx context.Context, q shared.ListQuery) ([]billing.Payment, int64, error)
	save                func(ctx context.Context, payment *billing.Payment) error
	count               func(ctx context.Context) (int64, error)
	completedTotalSince func(ctx context.Context, since time.Time) (decimal.Decimal, error)
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	if f.findByID == nil {
		return nil, shared.ErrNotFound
	}
	return f.findByID(ctx, id)
}

func (f *fakePaymentRepo) FindPage(ctx context.Context, q shared.ListQuery) ([]billing.Payment, int64, error) {
	if f.findPage == nil {
		return nil, 0, nil
	}
	return f.findPage(ctx, q)
}

func (f *fakePaymentRepo) Save(ctx context.Context, payment *billing.Payment) error {
	if f.save == nil {
		return nil
	}
	return f.save(ctx, payment)
}

func (f *fakePaymentRepo) Count(ctx context.Context) (int64, error) {
	if f.count == nil {
		return 0, nil
	}
	return f.count(ctx)
}

func (f *fakePaymentRepo) CompletedTotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	if f.completedTotalSince == nil {
		return decimal.Zero, nil
	}
	return f.completedTotalSince(ctx, since)
}

type fakeClassRepo struct {
	findByID func(ctx context.Context, id uuid.UUID) (*schedule.ClassSession, error)
	findPage func(ctx context.Context, q shared.ListQuery) ([]schedule.ClassSession, int64, error)
	save     func(ctx context.Context, session *schedule.ClassSession) error
	count    func(ctx context.Context) (int64, error)
}

func (f *fakeClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*schedule.ClassSession, error) {
	if f.findByID == nil {
		return nil, shared.ErrNotFound
	}
	return f.findByID(ctx, id)
}

func (f *fakeClassRepo) FindPage(ctx context.Context, q shared.ListQuery) ([]schedule.ClassSession, int64, error) {
	if f.findPage == nil {
		return nil, 0, nil
	}
	return f.findPage(ctx, q)
}

func (f *fakeClassRepo) Save(ctx context.Context, session *schedule.ClassSession) error {
	if f.save == nil {
		return nil
	}
	return f.save(ctx, session)
}

func (f *fakeClassRepo) Count(ctx context.Context) (int64, error) {
	if f.count == nil {
		return 0, nil
	}
	return f.count(ctx)
}

type fakeWebhookLogRepo struct {
	entries  []*integration.WebhookLogEntry
	appendFn func(ctx context.Context, entry *integration.WebhookLogEntry) error
	findPage func(ctx context.Context, q shared.ListQuery) ([]integration.WebhookLogEntry, int64, error)
}

func (f *fakeWebhookLogRepo) Append(ctx context.Context, entry *integration.WebhookLogEntry) error {
	if f.appendFn != nil {
		if err := f.appendFn(ctx, entry); err != nil {
			return err
		}
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeWebhookLogRepo) FindPage(ctx context.Context, q shared.ListQuery) ([]integration.WebhookLogEntry, int64, error) {
	if f.findPage == nil {
		out := make([]integration.WebhookLogEntry, len(f.entries))
		for i, e := range f.entries {
			out[i] = *e
		}
		return out, int64(len(out)), nil
	}
	return f.findPage(ctx, q)
}

func (f *fakeWebhookLogRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.entries)), nil
}
