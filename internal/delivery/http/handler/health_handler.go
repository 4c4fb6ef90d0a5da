package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gdugdh24/mentor-directory/internal/repository"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	docRepo repository.DocumentRepository
	log     *slog.Logger
}

func NewHealthHandler(docRepo repository.DocumentRepository, log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		docRepo: docRepo,
		log:     log,
	}
}

// Health handles GET|HEAD /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Ready handles GET /ready and reports whether the document store answers.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.docRepo.Ping(ctx); err != nil {
		h.log.Warn("readiness check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
