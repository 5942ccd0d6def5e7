package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	billingapp "github.com/aigym/backend/internal/application/billing"
	"github.com/aigym/backend/internal/domain/billing"
	"github.com/aigym/backend/internal/domain/shared"
	"github.com/aigym/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGuardedPaymentRouter mounts the payment routes the way the real
// router does, behind the payments-access guard.
func newGuardedPaymentRouter(repo *fakePaymentRepo, employeeType string) *gin.Engine {
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set(middleware.EmployeeTypeKey, employeeType)
		c.Next()
	})
	guarded := api.Group("", middleware.RequirePaymentsAccess())
	NewPaymentHandler(billingapp.NewPaymentService(repo)).RegisterRoutes(guarded)
	return router
}

func TestPaymentHandler_List(t *testing.T) {
	repo := &fakePaymentRepo{
		findPage: func(_ context.Context, q shared.ListQuery) ([]billing.Payment, int64, error) {
			return []billing.Payment{{
				BaseEntity:    shared.NewBaseEntity(),
				MemberID:      uuid.New(),
				MemberName:    "Ana García",
				Amount:        decimal.RequireFromString("599.90"),
				PaymentMethod: "cash",
				Status:        billing.PaymentStatusCompleted,
			}}, 1, nil
		},
	}
	router := newGuardedPaymentRouter(repo, "A")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/payments", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"member_name":"Ana García"`)
	assert.Contains(t, w.Body.String(), `"amount":"599.9"`)
}

func TestPaymentHandler_TypeBIsForbidden(t *testing.T) {
	router := newGuardedPaymentRouter(&fakePaymentRepo{}, "B")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/payments", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
