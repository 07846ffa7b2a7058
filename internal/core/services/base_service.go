package services

import (
	"context"
	"log/slog"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/middleware"
)

// BaseService provides shared helpers for all services, primarily
// request-scoped logging.
type BaseService struct{}

// GetLogger retrieves the request-scoped logger from the context.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with the request-scoped logger.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, args ...any) {
	logger := s.GetLogger(ctx)
	allArgs := append([]any{slog.Any("error", err)}, args...)
	logger.Error(msg, allArgs...)
}

// LogInfo logs an informational message with the request-scoped logger.
func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).Info(msg, args...)
}

// LogWarn logs a warning with the request-scoped logger.
func (s *BaseService) LogWarn(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).Warn(msg, args...)
}
