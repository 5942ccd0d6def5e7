package handler

import (
	billingapp "github.com/aigym/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment API endpoints. The router mounts these
// behind the payments-access guard, so type B employees never reach them.
type PaymentHandler struct {
	BaseHandler
	paymentService *billingapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *billingapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RegisterRoutes registers payment routes on the given group
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.GET("", h.List)
		payments.POST("", h.Create)
		payments.GET("/:id", h.GetByID)
	}
}

// List returns one page of payments
func (h *PaymentHandler) List(c *gin.Context) {
	page, err := h.paymentService.List(c.Request.Context(), bindListQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	respondPage(c, *page, func(p billingapp.PaymentResponse) []string {
		return []string{p.MemberName, textOrEmpty(p.TransactionID), p.PaymentMethod}
	})
}

// Create records a payment
func (h *PaymentHandler) Create(c *gin.Context) {
	var req billingapp.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payment)
}

// GetByID returns one payment
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payment)
}
