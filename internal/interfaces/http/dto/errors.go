package dto

import (
	"errors"
	"net/http"

	"github.com/aigym/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	shared.CodeValidation:   http.StatusBadRequest,
	shared.CodeNotFound:     http.StatusNotFound,
	shared.CodeUnauthorized: http.StatusUnauthorized,
	shared.CodeForbidden:    http.StatusForbidden,
	shared.CodeStorage:      http.StatusInternalServerError,
	shared.CodeInternal:     http.StatusInternalServerError,
}

// HTTPStatusForError returns the HTTP status code for an error.
// Unknown errors and unknown codes map to 500 Internal Server Error.
func HTTPStatusForError(err error) int {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if status, ok := errorCodeHTTPStatus[domainErr.Code]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

// HandleError writes the error response for a failed request
func HandleError(c *gin.Context, err error) {
	status := HTTPStatusForError(err)
	message := "Internal server error"
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}
	c.JSON(status, NewErrorResponse(message))
}
