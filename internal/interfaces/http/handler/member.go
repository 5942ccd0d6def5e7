package handler

import (
	membershipapp "github.com/aigym/backend/internal/application/membership"
	"github.com/gin-gonic/gin"
)

// MemberHandler handles member API endpoints
type MemberHandler struct {
	BaseHandler
	memberService *membershipapp.MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(memberService *membershipapp.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// RegisterRoutes registers member routes on the given group
func (h *MemberHandler) RegisterRoutes(rg *gin.RouterGroup) {
	members := rg.Group("/members")
	{
		members.GET("", h.List)
		members.POST("", h.Create)
		members.GET("/:id", h.GetByID)
		members.PUT("/:id", h.Update)
	}
}

// List returns one page of members
func (h *MemberHandler) List(c *gin.Context) {
	page, err := h.memberService.List(c.Request.Context(), bindListQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	respondPage(c, *page, func(m membershipapp.MemberResponse) []string {
		return []string{m.Name, textOrEmpty(m.Email), textOrEmpty(m.Phone), textOrEmpty(m.PrimaryPhone)}
	})
}

// Create registers a new member from a form submission
func (h *MemberHandler) Create(c *gin.Context) {
	var req membershipapp.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, member)
}

// GetByID returns one member with its contracts embedded
func (h *MemberHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid member ID format")
		return
	}

	member, err := h.memberService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, member)
}

// Update applies a partial edit to a member
func (h *MemberHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid member ID format")
		return
	}

	var req membershipapp.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, member)
}
