package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portssvc "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/services"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/dto"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/middleware"
)

// readinessHandler handles HTTP requests related to project readiness.
type readinessHandler struct {
	readinessService portssvc.ReadinessSvcFacade
}

// newReadinessHandler creates a new readinessHandler.
func newReadinessHandler(readinessService portssvc.ReadinessSvcFacade) *readinessHandler {
	return &readinessHandler{readinessService: readinessService}
}

// RegisterReadinessRoutes registers the readiness endpoints on the given group.
func RegisterReadinessRoutes(rg *gin.RouterGroup, readinessService portssvc.ReadinessSvcFacade) {
	h := newReadinessHandler(readinessService)

	readiness := rg.Group("/projects/:projectID/readiness")
	{
		readiness.GET("", h.getReadiness)
		readiness.POST("/recalculate", h.recalculate)
		readiness.POST("/finalize", h.finalizeArea)
		readiness.DELETE("/finalize/:area", h.unfinalizeArea)
	}
}

// getReadiness godoc
// @Summary Get project readiness
// @Description Returns the readiness summary plus derived todo items, feature availability and assignment progress
// @Tags readiness
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   refresh query bool false "Bypass the cache and recalculate first"
// @Success 200 {object} dto.ProjectReadinessResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{projectID}/readiness [get]
func (h *readinessHandler) getReadiness(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
		return
	}

	refresh := c.Query("refresh") == "true"
	resp, err := h.readinessService.GetReadiness(c.Request.Context(), c.Param("projectID"), refresh, actor)
	if err != nil {
		respondError(c, err, "PROJECT_NOT_FOUND", "Project not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// recalculate godoc
// @Summary Recalculate project readiness
// @Description Recomputes the readiness summary from the underlying assignment tables
// @Tags readiness
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Success 200 {object} dto.ProjectReadinessResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{projectID}/readiness/recalculate [post]
func (h *readinessHandler) recalculate(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
		return
	}

	resp, err := h.readinessService.Recalculate(c.Request.Context(), c.Param("projectID"), actor)
	if err != nil {
		respondError(c, err, "PROJECT_NOT_FOUND", "Project not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// finalizeArea godoc
// @Summary Finalize a readiness area
// @Description Marks one area (locations, roles, team, talent) as complete
// @Tags readiness
// @Accept  json
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   finalize body dto.FinalizeAreaRequest true "Area to finalize"
// @Success 200 {object} dto.FinalizeAreaResponse
// @Failure 400 {object} map[string]string "Area precondition not met"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /projects/{projectID}/readiness/finalize [post]
func (h *readinessHandler) finalizeArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
		return
	}

	var req dto.FinalizeAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for finalizeArea", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid area, must be one of locations, roles, team, talent"})
		return
	}

	resp, err := h.readinessService.FinalizeArea(c.Request.Context(), c.Param("projectID"), domain.ReadinessArea(req.Area), actor)
	if err != nil {
		respondError(c, err, "PROJECT_NOT_FOUND", "Project not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// unfinalizeArea godoc
// @Summary Clear a readiness area finalization
// @Description Removes the sticky finalization marker from an area. Admin only.
// @Tags readiness
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   area path string true "Area" Enums(locations, roles, team, talent)
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /projects/{projectID}/readiness/finalize/{area} [delete]
func (h *readinessHandler) unfinalizeArea(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
		return
	}

	err := h.readinessService.UnfinalizeArea(c.Request.Context(), c.Param("projectID"), domain.ReadinessArea(c.Param("area")), actor)
	if err != nil {
		respondError(c, err, "PROJECT_NOT_FOUND", "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
