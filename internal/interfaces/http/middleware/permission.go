package middleware

import (
	"net/http"

	"github.com/aigym/backend/internal/domain/staff"
	"github.com/aigym/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequirePaymentsAccess blocks employee sessions whose type excludes the
// payments area. Type B employees get a 403; everyone else passes through.
// Must run after EmployeeAuth.
func RequirePaymentsAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		if staff.EmployeeType(GetEmployeeType(c)) == staff.EmployeeTypeB {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Access to payments is not allowed for this account"))
			return
		}
		c.Next()
	}
}
