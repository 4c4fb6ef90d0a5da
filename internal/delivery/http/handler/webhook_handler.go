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

type WebhookHandler struct {
	profileUseCase *profile.ProfileUseCase
	log            *slog.Logger
}

func NewWebhookHandler(profileUseCase *profile.ProfileUseCase, log *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		profileUseCase: profileUseCase,
		log:            log,
	}
}

// WebflowWebhook handles POST /webflow-webhook
// @Summary Apply a Webflow form submission
// @Description Accepts {"data": {...}} or a flat object keyed by Webflow field labels
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /webflow-webhook [post]
func (h *WebhookHandler) WebflowWebhook(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: msgInvalidBody,
		})
		return
	}

	result, err := h.profileUseCase.ApplyWebhook(c.Request.Context(), profile.NewWebflowInput(body))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingUserID):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: msgMissingUserID,
			})
		case errors.Is(err, domain.ErrInvalidField):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: err.Error(),
			})
		default:
			h.log.Error("webhook failed", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: msgInternalError,
			})
		}
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Message: fmt.Sprintf("✅ User %s updated from Webflow", result.UserID),
		Profile: result.Profile,
	})
}
