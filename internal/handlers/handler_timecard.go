package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/services"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/dto"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/middleware"
)

// timecardHandler handles HTTP requests related to timecards.
type timecardHandler struct {
	timecardService portssvc.TimecardSvcFacade
	auditLogService portssvc.AuditLogSvcFacade
}

// newTimecardHandler creates a new timecardHandler.
func newTimecardHandler(timecardService portssvc.TimecardSvcFacade, auditLogService portssvc.AuditLogSvcFacade) *timecardHandler {
	return &timecardHandler{
		timecardService: timecardService,
		auditLogService: auditLogService,
	}
}

// RegisterTimecardRoutes registers the timecard endpoints on the given group.
func RegisterTimecardRoutes(rg *gin.RouterGroup, timecardService portssvc.TimecardSvcFacade, auditLogService portssvc.AuditLogSvcFacade) {
	h := newTimecardHandler(timecardService, auditLogService)

	timecards := rg.Group("/timecards")
	{
		timecards.POST("", h.openTimecard)
		timecards.GET("/:timecardID", h.getTimecard)
		timecards.PATCH("/:timecardID", h.editTimecard)
		timecards.GET("/:timecardID/audit-log", h.listAuditLog)
	}
}

// openTimecard godoc
// @Summary Open a timecard period
// @Description Creates a draft timecard with one daily entry per day of the period
// @Tags timecards
// @Accept  json
// @Produce  json
// @Param   timecard body dto.OpenTimecardRequest true "Timecard period"
// @Success 201 {object} dto.TimecardResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /timecards [post]
func (h *timecardHandler) openTimecard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
		return
	}

	var req dto.OpenTimecardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for openTimecard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid request format"})
		return
	}

	resp, err := h.timecardService.OpenTimecard(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "PROJECT_NOT_FOUND", "Project not found")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// getTimecard godoc
// @Summary Get a timecard
// @Description Retrieves a timecard header with its ordered daily entries
// @Tags timecards
// @Produce  json
// @Param   timecardID path string true "Timecard ID"
// @Success 200 {object} dto.TimecardResponse
// @Failure 404 {object} map[string]string "Timecard not found"
// @Router /timecards/{timecardID} [get]
func (h *timecardHandler) getTimecard(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
		return
	}

	resp, err := h.timecardService.GetTimecard(c.Request.Context(), c.Param("timecardID"), actor)
	if err != nil {
		respondError(c, err, "TIMECARD_NOT_FOUND", "Timecard not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// editTimecard godoc
// @Summary Edit a timecard
// @Description Applies header and daily-entry updates through the edit state machine and records the audit trail
// @Tags timecards
// @Accept  json
// @Produce  json
// @Param   timecardID path string true "Timecard ID"
// @Param   edit body dto.EditTimecardRequest true "Field updates"
// @Success 200 {object} dto.EditTimecardResponse
// @Failure 400 {object} map[string]string "Validation error or no changes detected"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 404 {object} map[string]string "Timecard not found"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Router /timecards/{timecardID} [patch]
func (h *timecardHandler) editTimecard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	timecardID := c.Param("timecardID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
		return
	}

	var req dto.EditTimecardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for editTimecard", slog.String("error", err.Error()), slog.String("timecard_id", timecardID))
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid request format"})
		return
	}

	resp, err := h.timecardService.EditTimecard(c.Request.Context(), timecardID, req, actor)
	if err != nil {
		respondError(c, err, "TIMECARD_NOT_FOUND", "Timecard not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listAuditLog godoc
// @Summary List a timecard's audit trail
// @Description Retrieves field-level change history, newest change first, token-paginated
// @Tags timecards
// @Produce  json
// @Param   timecardID path string true "Timecard ID"
// @Param   limit query int false "Page size (default 50, max 100)"
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListAuditLogResponse
// @Failure 404 {object} map[string]string "Timecard not found"
// @Router /timecards/{timecardID}/audit-log [get]
func (h *timecardHandler) listAuditLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	timecardID := c.Param("timecardID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
		return
	}

	var params dto.ListAuditLogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listAuditLog", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid query parameters"})
		return
	}

	resp, err := h.auditLogService.ListChanges(c.Request.Context(), timecardID, actor, params)
	if err != nil {
		respondError(c, err, "TIMECARD_NOT_FOUND", "Timecard not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}
