package handler

import (
	membershipapp "github.com/aigym/backend/internal/application/membership"
	"github.com/gin-gonic/gin"
)

// ContractHandler handles contract API endpoints
type ContractHandler struct {
	BaseHandler
	contractService *membershipapp.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contractService *membershipapp.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// RegisterRoutes registers contract routes on the given group
func (h *ContractHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contracts := rg.Group("/contracts")
	{
		contracts.GET("", h.List)
		contracts.POST("", h.Create)
		contracts.GET("/:id", h.GetByID)
		contracts.PUT("/:id", h.Update)
	}
}

// List returns one page of contracts with their members embedded
func (h *ContractHandler) List(c *gin.Context) {
	page, err := h.contractService.List(c.Request.Context(), bindListQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	respondPage(c, *page, func(ct membershipapp.ContractResponse) []string {
		fields := []string{ct.ContractType, ct.MondayContractID}
		if ct.Member != nil {
			fields = append(fields, ct.Member.Name)
		}
		return fields
	})
}

// Create registers a new contract
func (h *ContractHandler) Create(c *gin.Context) {
	var req membershipapp.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	contract, err := h.contractService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, contract)
}

// GetByID returns one contract with its member embedded
func (h *ContractHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	contract, err := h.contractService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, contract)
}

// Update applies a partial edit to a contract
func (h *ContractHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	var req membershipapp.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	contract, err := h.contractService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, contract)
}
