package handler

import (
	"net/http"
	"strconv"

	"github.com/aigym/backend/internal/domain/shared"
	"github.com/aigym/backend/internal/interfaces/http/dto"
	"github.com/aigym/backend/internal/interfaces/http/view"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response with the standard envelope
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// BadRequest sends a 400 error envelope
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}

// HandleError maps the error to its HTTP status and writes the envelope
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	dto.HandleError(c, err)
}

// parseID parses the :id path parameter as a UUID
func parseID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// bindListQuery reads the common list parameters from the query string.
// Out-of-range values are left for ListQuery.Normalize to clamp. Category
// and brand are product columns, so stray ?category/?brand params on other
// listings are ignored rather than turned into predicates.
func bindListQuery(c *gin.Context) shared.ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	return shared.ListQuery{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
}

// bindProductListQuery extends the common parameters with the product-only
// category and brand equality filters.
func bindProductListQuery(c *gin.Context) shared.ListQuery {
	q := bindListQuery(c)
	q.Category = c.Query("category")
	q.Brand = c.Query("brand")
	return q
}

// respondPage applies the filter query parameter over the fetched page and
// writes the paginated envelope. The pagination block keeps the server-side
// counts even when the filter narrows the visible items.
func respondPage[T any](c *gin.Context, page shared.Paginated[T], fields func(T) []string) {
	page.Items = view.PageFilter(page.Items, c.Query("filter"), fields)
	c.JSON(http.StatusOK, dto.NewPageResponse(page))
}

// textOrEmpty dereferences optional display fields for page filtering
func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
