package handler

import (
	staffapp "github.com/aigym/backend/internal/application/staff"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee API endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *staffapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *staffapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// RegisterRoutes registers employee routes on the given group
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employees := rg.Group("/employees")
	{
		employees.GET("", h.List)
		employees.POST("", h.Create)
		employees.GET("/:id", h.GetByID)
		employees.PUT("/:id", h.Update)
	}
}

// List returns one page of employees
func (h *EmployeeHandler) List(c *gin.Context) {
	page, err := h.employeeService.List(c.Request.Context(), bindListQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	respondPage(c, *page, func(e staffapp.EmployeeResponse) []string {
		return []string{e.Name, textOrEmpty(e.Email), textOrEmpty(e.Position), textOrEmpty(e.Department)}
	})
}

// Create registers a new employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req staffapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// GetByID returns one employee
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}

// Update applies a partial edit to an employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var req staffapp.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, employee)
}
