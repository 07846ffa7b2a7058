package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
)

// respondError translates a service error into the wire contract: an HTTP
// status plus a machine-readable code. notFoundMessage keeps 404 wording
// resource-specific without leaking internals.
func respondError(c *gin.Context, err error, notFoundCode, notFoundMessage string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNoChanges):
		c.JSON(http.StatusBadRequest, gin.H{"code": "NO_CHANGES_DETECTED", "error": "No changes detected in the submitted data"})
	case errors.Is(err, apperrors.ErrCannotFinalize):
		message := "Area cannot be finalized"
		if errors.As(err, &appErr) && appErr.Message != "" {
			message = appErr.Message
		}
		c.JSON(http.StatusBadRequest, gin.H{"code": "CANNOT_FINALIZE", "error": message})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"code": "INSUFFICIENT_PERMISSIONS", "error": "Insufficient permissions"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": notFoundCode, "error": notFoundMessage})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"code": "CONFLICT", "error": "The record was modified by someone else, refresh and retry"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "error": "An internal error occurred"})
	}
}
