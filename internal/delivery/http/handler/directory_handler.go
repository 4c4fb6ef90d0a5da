package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gdugdh24/mentor-directory/internal/usecase/directory"
	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	directoryUseCase *directory.DirectoryUseCase
	log              *slog.Logger
}

func NewDirectoryHandler(directoryUseCase *directory.DirectoryUseCase, log *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUseCase: directoryUseCase,
		log:              log,
	}
}

// DirectoryQuery represents GET /directory query parameters. Multi-valued
// filters may repeat.
type DirectoryQuery struct {
	Collection   string   `form:"collection" binding:"omitempty,alphanum,max=64"`
	Admin        string   `form:"admin"`
	Skills       []string `form:"skills"`
	Availability []string `form:"availability"`
	Education    []string `form:"education"`
	Industry     []string `form:"industry"`
	Role         []string `form:"role"`
	Timezone     []string `form:"timezone"`
	Team         []string `form:"team"`
	Experience   []string `form:"experience"`
	Search       string   `form:"search"`
}

func (q *DirectoryQuery) spec() directory.FilterSpec {
	return directory.FilterSpec{
		Admin:        adminFlag(q.Admin),
		Skills:       q.Skills,
		Availability: q.Availability,
		Education:    q.Education,
		Industry:     q.Industry,
		Role:         q.Role,
		Timezone:     q.Timezone,
		Team:         q.Team,
		Experience:   q.Experience,
		Search:       q.Search,
	}
}

// adminFlag treats any non-empty value other than an explicit false as admin.
func adminFlag(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if strings.EqualFold(raw, "yes") {
		return true
	}
	if v, err := strconv.ParseBool(strings.ToLower(raw)); err == nil {
		return v
	}
	return true
}

// ListDirectory handles GET /directory
// @Summary List directory profiles
// @Description Filter profiles of a collection by skills, role, experience and free-text search
// @Tags directory
// @Produce json
// @Success 200 {array} object
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /directory [get]
func (h *DirectoryHandler) ListDirectory(c *gin.Context) {
	var q DirectoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: msgInvalidRequest,
		})
		return
	}

	profiles, err := h.directoryUseCase.ListDirectory(c.Request.Context(), q.Collection, q.spec())
	if err != nil {
		h.log.Error("directory read failed", "collection", q.Collection, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: msgInternalError,
		})
		return
	}

	c.JSON(http.StatusOK, profiles)
}
