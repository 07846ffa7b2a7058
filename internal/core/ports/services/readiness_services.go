package services

import (
	"context"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/dto"
)

// ReadinessReaderSvc defines read operations for project readiness
type ReadinessReaderSvc interface {
	// GetReadiness returns the summary plus derived todo items, feature
	// availability and assignment progress. Absent summaries are created by a
	// lazy recalculation; refresh bypasses the cache and recalculates first.
	GetReadiness(ctx context.Context, projectID string, refresh bool, actor domain.Actor) (*dto.ProjectReadinessResponse, error)
}

// ReadinessWriterSvc defines mutation operations for project readiness
type ReadinessWriterSvc interface {
	// Recalculate recomputes the summary from the underlying assignment tables
	// and persists it. Finalization flags are left untouched.
	Recalculate(ctx context.Context, projectID string, actor domain.Actor) (*dto.ProjectReadinessResponse, error)

	// FinalizeArea stamps the sticky finalization marker for one area.
	FinalizeArea(ctx context.Context, projectID string, area domain.ReadinessArea, actor domain.Actor) (*dto.FinalizeAreaResponse, error)

	// UnfinalizeArea clears a finalization marker. Admin only.
	UnfinalizeArea(ctx context.Context, projectID string, area domain.ReadinessArea, actor domain.Actor) error
}

// ReadinessSvcFacade combines all readiness service interfaces
type ReadinessSvcFacade interface {
	ReadinessReaderSvc
	ReadinessWriterSvc
}
