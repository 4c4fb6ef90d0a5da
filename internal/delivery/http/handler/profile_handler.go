package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gdugdh24/mentor-directory/internal/domain"
	"github.com/gdugdh24/mentor-directory/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
	log            *slog.Logger
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		log:            log,
	}
}

// UpdateProfile handles PUT /users/:id
// @Summary Update a profile
// @Description Merge profile fields into mentees or mentors and recompute completeness
// @Tags profile
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /users/{id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.Param("id")

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: msgInvalidBody,
		})
		return
	}

	result, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID, profile.DirectInput(body))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbiddenUpdate):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: msgForbidden,
			})
		case errors.Is(err, domain.ErrInvalidField):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: err.Error(),
			})
		default:
			h.log.Error("profile update failed", "user_id", userID, "error", err)
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: msgUpdateFailed,
			})
		}
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Message: fmt.Sprintf("✅ User %s updated successfully in %s", result.UserID, result.Collection),
		Profile: result.Profile,
	})
}
