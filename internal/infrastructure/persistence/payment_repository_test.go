package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aigym/backend/internal/domain/billing"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormPaymentRepository_CompletedTotalSince(t *testing.T) {
	db, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormPaymentRepository(db)

	since := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "payments" WHERE status = \$1 AND payment_date >= \$2`).
		WithArgs("completed", since).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("15499.50"))

	total, err := repo.CompletedTotalSince(context.Background(), since)

	require.NoError(t, err)
	assert.Equal(t, "15499.5", total.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPaymentRepository_FindPage_FiltersByStatus(t *testing.T) {
	db, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormPaymentRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments" WHERE status = \$1`).
		WithArgs("completed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows([]string{"id", "member_id", "member_name", "amount", "payment_method", "status"}).
		AddRow(uuid.New(), uuid.New(), "Ana García", "599.90", "cash", "completed").
		AddRow(uuid.New(), uuid.New(), "Luis Pérez", "750.00", "credit_card", "completed")
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE status = \$1 ORDER BY created_at DESC LIMIT .*`).
		WithArgs("completed", 50).
		WillReturnRows(rows)

	payments, total, err := repo.FindPage(context.Background(), shared.ListQuery{Status: "completed"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, payments, 2)
	assert.Equal(t, billing.PaymentStatusCompleted, payments[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
