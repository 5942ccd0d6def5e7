package handler

import (
	reportapp "github.com/aigym/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// StatsHandler serves the dashboard aggregate counts
type StatsHandler struct {
	BaseHandler
	statsService *reportapp.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *reportapp.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// RegisterRoutes registers stats routes on the given group
func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Get)
}

// Get returns entity counts and the current month's revenue
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.statsService.Collect(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}
