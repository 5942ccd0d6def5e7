package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aigym/backend/internal/domain/shared"
	"github.com/aigym/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestBaseHandler_Success(t *testing.T) {
	h := &BaseHandler{}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Success(c, gin.H{"name": "Spinning"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestBaseHandler_BadRequest(t *testing.T) {
	h := &BaseHandler{}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.BadRequest(c, "Invalid request data")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request data")
}

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", shared.NewValidationError("bad input"), http.StatusBadRequest},
		{"not found", shared.ErrNotFound, http.StatusNotFound},
		{"unauthorized", shared.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	h := &BaseHandler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestParseID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	parsed, err := parseID(c)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	_, err = parseID(c)
	assert.Error(t, err)
}

func TestBindListQuery(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/members?page=3&limit=20&status=active&search=ana", nil)

	q := bindListQuery(c)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, "active", q.Status)
	assert.Equal(t, "ana", q.Search)
}

func TestBindListQuery_IgnoresProductOnlyParams(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/members?category=supplements&brand=acme", nil)

	q := bindListQuery(c)
	assert.Empty(t, q.Category)
	assert.Empty(t, q.Brand)
}

func TestBindProductListQuery(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/products?category=supplements&brand=acme&status=registrado", nil)

	q := bindProductListQuery(c)
	assert.Equal(t, "supplements", q.Category)
	assert.Equal(t, "acme", q.Brand)
	assert.Equal(t, "registrado", q.Status)
}

func TestBindListQuery_Defaults(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/members", nil)

	q := bindListQuery(c)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 50, q.Limit)
}

func TestTextOrEmpty(t *testing.T) {
	assert.Equal(t, "", textOrEmpty(nil))

	s := "cardio"
	assert.Equal(t, "cardio", textOrEmpty(&s))
}
