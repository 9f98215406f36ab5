package api

import (
	"fmt"
	"net/http"

	"gym-admin/internal/domain"
	"gym-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler holds the member service dependency.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// CreateMemberRequest carries the caller-suppliable fields for a new member.
// ID, join date and last visit are store-owned and cannot be set here.
type CreateMemberRequest struct {
	Name             string              `json:"name" binding:"required"`
	Email            string              `json:"email" binding:"omitempty,email"`
	Phone            string              `json:"phone"`
	Status           domain.MemberStatus `json:"status" binding:"omitempty,oneof=active inactive pending"`
	MembershipType   string              `json:"membershipType"`
	Address          string              `json:"address"`
	Birthdate        string              `json:"birthdate"`
	EmergencyContact string              `json:"emergencyContact"`
	Notes            string              `json:"notes"`
}

// ListMembers returns the full member collection.
// GET /api/v1/members
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		respondRecordError(c, err, "member")
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetMember returns one member by ID.
// GET /api/v1/members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	member, err := h.memberService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// CreateMember creates a new member record.
// POST /api/v1/members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), &domain.Member{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Status:           req.Status,
		MembershipType:   req.MembershipType,
		Address:          req.Address,
		Birthdate:        req.Birthdate,
		EmergencyContact: req.EmergencyContact,
		Notes:            req.Notes,
	})
	if err != nil {
		respondRecordError(c, err, "member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// UpdateMember applies a partial update to a member record. Fields absent
// from the body stay untouched; any `id` in the body is ignored.
// PUT /api/v1/members/:id
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var patch domain.MemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondRecordError(c, err, "member")
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember removes a member record.
// DELETE /api/v1/members/:id
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	if err := h.memberService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
