package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPaymentsRouter(employeeType string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(EmployeeTypeKey, employeeType)
		c.Next()
	})
	router.Use(RequirePaymentsAccess())
	router.GET("/payments", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRequirePaymentsAccess(t *testing.T) {
	t.Run("type A passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		newPaymentsRouter("A").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("type B is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		newPaymentsRouter("B").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "not allowed")
	})
}
