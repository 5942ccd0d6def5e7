package handler

import (
	scheduleapp "github.com/aigym/backend/internal/application/schedule"
	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles class schedule API endpoints
type ScheduleHandler struct {
	BaseHandler
	classService *scheduleapp.ClassService
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(classService *scheduleapp.ClassService) *ScheduleHandler {
	return &ScheduleHandler{classService: classService}
}

// RegisterRoutes registers schedule routes on the given group
func (h *ScheduleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	schedule := rg.Group("/schedule")
	{
		schedule.GET("", h.List)
		schedule.POST("", h.Create)
		schedule.GET("/:id", h.GetByID)
		schedule.PUT("/:id", h.Update)
	}
}

// List returns one page of class occurrences with derived availability
func (h *ScheduleHandler) List(c *gin.Context) {
	page, err := h.classService.List(c.Request.Context(), bindListQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	respondPage(c, *page, func(cl scheduleapp.ClassResponse) []string {
		return []string{cl.ClassName, cl.Instructor, textOrEmpty(cl.ClassType)}
	})
}

// Create schedules a class occurrence
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req scheduleapp.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	class, err := h.classService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, class)
}

// GetByID returns one class occurrence
func (h *ScheduleHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid class ID format")
		return
	}

	class, err := h.classService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, class)
}

// Update applies a partial edit to a class occurrence
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid class ID format")
		return
	}

	var req scheduleapp.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	class, err := h.classService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, class)
}
