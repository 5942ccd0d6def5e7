package report

import (
	"context"
	"sync"
	"time"

	"github.com/aigym/backend/internal/domain/billing"
	"github.com/aigym/backend/internal/domain/membership"
	"github.com/aigym/backend/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

// Stats is the dashboard aggregate returned by GET /stats
type Stats struct {
	Members        int64           `json:"members"`
	Contracts      int64           `json:"contracts"`
	Payments       int64           `json:"payments"`
	Schedule       int64           `json:"schedule"`
	Total          int64           `json:"total"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
}

// StatsService aggregates table counts and revenue for the dashboard
type StatsService struct {
	memberRepo   membership.MemberRepository
	contractRepo membership.ContractRepository
	paymentRepo  billing.PaymentRepository
	classRepo    schedule.ClassRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	memberRepo membership.MemberRepository,
	contractRepo membership.ContractRepository,
	paymentRepo billing.PaymentRepository,
	classRepo schedule.ClassRepository,
) *StatsService {
	return &StatsService{
		memberRepo:   memberRepo,
		contractRepo: contractRepo,
		paymentRepo:  paymentRepo,
		classRepo:    classRepo,
	}
}

// Collect runs the per-table counts and the monthly revenue query
// concurrently and returns the combined snapshot. The first error
// observed wins; remaining results are discarded.
func (s *StatsService) Collect(ctx context.Context) (*Stats, error) {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		stats   Stats
		firstEr error
	)

	fail := func(err error) {
		mu.Lock()
		if firstEr == nil {
			firstEr = err
		}
		mu.Unlock()
	}

	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		defer wg.Done()
		n, err := fn(ctx)
		if err != nil {
			fail(err)
			return
		}
		mu.Lock()
		*dst = n
		mu.Unlock()
	}

	wg.Add(5)
	go count(&stats.Members, s.memberRepo.Count)
	go count(&stats.Contracts, s.contractRepo.Count)
	go count(&stats.Payments, s.paymentRepo.Count)
	go count(&stats.Schedule, s.classRepo.Count)
	go func() {
		defer wg.Done()
		now := time.Now()
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		revenue, err := s.paymentRepo.CompletedTotalSince(ctx, firstOfMonth)
		if err != nil {
			fail(err)
			return
		}
		mu.Lock()
		stats.MonthlyRevenue = revenue
		mu.Unlock()
	}()
	wg.Wait()

	if firstEr != nil {
		return nil, firstEr
	}

	stats.Total = stats.Members + stats.Contracts + stats.Payments + stats.Schedule
	return &stats, nil
}
