package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/infrastructure/fieldmap"
	"team-showcase.backend/internal/interfaces/http/response"
	"team-showcase.backend/internal/usecases"
)

type MemberHandler struct {
	memberUsecase *usecases.MemberUsecase
}

func NewMemberHandler(memberUsecase *usecases.MemberUsecase) *MemberHandler {
	return &MemberHandler{memberUsecase: memberUsecase}
}

// ListActiveMembers returns the public roster.
// GET /api/team/members
func (h *MemberHandler) ListActiveMembers(c *gin.Context) {
	members, err := h.memberUsecase.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, members)
}

// ListAllMembers includes soft-deleted members.
// GET /api/team/members/all
func (h *MemberHandler) ListAllMembers(c *gin.Context) {
	members, err := h.memberUsecase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, members)
}

// GET /api/team/members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := parseID(c, "member")
	if !ok {
		return
	}
	member, err := h.memberUsecase.GetMember(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

// CreateMember adds a member.
// POST /api/team/members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var input entities.CreateMemberInput
	if err := bindBody(c, fieldmap.Member, &input); err != nil {
		response.Error(c, err)
		return
	}

	member, err := h.memberUsecase.CreateMember(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Member created", member)
}

// UpdateMember overwrites the fields present in the body.
// PUT /api/team/members/:id
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := parseID(c, "member")
	if !ok {
		return
	}
	var patch entities.MemberPatch
	if err := bindBody(c, fieldmap.Member, &patch); err != nil {
		response.Error(c, err)
		return
	}

	member, err := h.memberUsecase.UpdateMember(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Member updated", member)
}

// DeleteMember soft deletes a member.
// DELETE /api/team/members/:id
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := parseID(c, "member")
	if !ok {
		return
	}
	member, err := h.memberUsecase.DeactivateMember(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Member deleted", member)
}

// PurgeMember removes a member for good.
// DELETE /api/team/members/:id/permanent
func (h *MemberHandler) PurgeMember(c *gin.Context) {
	id, ok := parseID(c, "member")
	if !ok {
		return
	}
	member, err := h.memberUsecase.PurgeMember(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Member permanently deleted", member)
}
