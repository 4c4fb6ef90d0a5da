package handler

import (
	"log/slog"
	"net/http"

	"github.com/gdugdh24/mentor-directory/internal/usecase/membership"
	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipUseCase *membership.MembershipUseCase
	log               *slog.Logger
}

func NewMembershipHandler(membershipUseCase *membership.MembershipUseCase, log *slog.Logger) *MembershipHandler {
	return &MembershipHandler{
		membershipUseCase: membershipUseCase,
		log:               log,
	}
}

// UpdateMember handles POST /memberstack/:id/update
// @Summary Update a Memberstack member
// @Description Forwards custom fields to Memberstack and mirrors the member into the members collection
// @Tags membership
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /memberstack/{id}/update [post]
func (h *MembershipHandler) UpdateMember(c *gin.Context) {
	memberID := c.Param("id")

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: msgInvalidBody,
		})
		return
	}

	member, err := h.membershipUseCase.SyncMember(c.Request.Context(), memberID, fields)
	if err != nil {
		h.log.Error("member sync failed", "member_id", memberID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: msgMemberFailed,
		})
		return
	}

	c.JSON(http.StatusOK, MemberResponse{
		Message: "✅ Updated Memberstack member and Firestore record",
		Data:    member,
	})
}
