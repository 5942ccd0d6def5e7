package handler

import (
	"net/http"

	integrationapp "github.com/aigym/backend/internal/application/integration"
	"github.com/aigym/backend/internal/domain/integration"
	"github.com/aigym/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// WebhookHandler receives Monday.com events and serves the audit trail
type WebhookHandler struct {
	BaseHandler
	webhookService *integrationapp.MondayWebhookService
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(webhookService *integrationapp.MondayWebhookService) *WebhookHandler {
	return &WebhookHandler{webhookService: webhookService}
}

// RegisterRoutes registers webhook routes on the given group
func (h *WebhookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/webhook/monday", h.Receive)
	rg.GET("/webhooks/log", h.Logs)
}

// Receive processes one inbound Monday.com event. The contract with the
// CRM is a plain 200/500 envelope; processing detail lives in the audit
// trail, not the response.
func (h *WebhookHandler) Receive(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Webhook processing failed"))
		return
	}

	// Malformed bodies and store failures share this one opaque 500 on
	// purpose; the CRM retries nothing and must never see a 4xx.
	if err := h.webhookService.Process(c.Request.Context(), raw); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Webhook processing failed"))
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Webhook processed successfully"))
}

// Logs returns one page of the webhook audit trail
func (h *WebhookHandler) Logs(c *gin.Context) {
	page, err := h.webhookService.Logs(c.Request.Context(), bindListQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	respondPage(c, *page, func(e integration.WebhookLogEntry) []string {
		return []string{e.WebhookType, string(e.Status)}
	})
}
