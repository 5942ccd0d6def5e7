package handler

import (
	"net/http"
	"time"

	"github.com/aigym/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Pinger is the slice of the database the health endpoint needs
type Pinger interface {
	Ping() error
}

// HealthHandler reports liveness and backing-store readiness
type HealthHandler struct {
	BaseHandler
	db      Pinger
	started time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

// RegisterRoutes registers the health route on the given group
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// HealthStatus is the health endpoint payload
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// Health pings the database and reports overall status. A failing ping
// answers 503 so load balancers stop routing here.
func (h *HealthHandler) Health(c *gin.Context) {
	status := HealthStatus{
		Status:   "ok",
		Database: "up",
		Uptime:   time.Since(h.started).Round(time.Second).String(),
	}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status.Status = "degraded"
			status.Database = "down"
			c.JSON(http.StatusServiceUnavailable, dto.Response{Success: false, Data: status, Error: "Database unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(status))
}
