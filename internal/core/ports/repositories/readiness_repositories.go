package repositories

import (
	"context"
	"time"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
)

// TeamAssignment is one active staff assignment row as the aggregator sees it.
type TeamAssignment struct {
	UserID string
	Role   domain.StaffRole
}

// ReadinessReader defines read operations for the readiness summary
type ReadinessReader interface {
	// FindReadinessByProjectID retrieves the persisted summary row for a project.
	// Returns apperrors.ErrNotFound when no row exists yet.
	FindReadinessByProjectID(ctx context.Context, projectID string) (*domain.ProjectReadiness, error)
}

// ReadinessWriter defines write operations for the readiness summary
type ReadinessWriter interface {
	// UpsertReadiness writes the recomputed summary, overwriting counts and
	// derived statuses but never the finalization fields.
	UpsertReadiness(ctx context.Context, summary domain.ProjectReadiness) error

	// SetAreaFinalized stamps or clears the sticky finalization marker for one area.
	SetAreaFinalized(ctx context.Context, projectID string, area domain.ReadinessArea, finalized bool, by string, at time.Time) error
}

// AssignmentReader exposes the underlying assignment tables the aggregator
// recomputes from. Each query is independent of the others.
type AssignmentReader interface {
	// CountCustomLocations counts a project's non-default locations.
	CountCustomLocations(ctx context.Context, projectID string) (int, error)

	// CountCustomRoles counts a project's non-default role templates.
	CountCustomRoles(ctx context.Context, projectID string) (int, error)

	// ListActiveTeamAssignments retrieves all active staff assignments for a project.
	ListActiveTeamAssignments(ctx context.Context, projectID string) ([]TeamAssignment, error)

	// CountActiveTalentAssignments counts active talent-project assignments.
	CountActiveTalentAssignments(ctx context.Context, projectID string) (int, error)

	// CountUrgentAssignmentIssues counts unresolved urgent escort-assignment issues.
	CountUrgentAssignmentIssues(ctx context.Context, projectID string) (int, error)

	// CountDailyAssignmentSlots returns total and completed daily escort slots
	// across the project's date range.
	CountDailyAssignmentSlots(ctx context.Context, projectID string) (total int, completed int, err error)
}

// ReadinessRepositoryFacade combines all readiness-related repository interfaces
type ReadinessRepositoryFacade interface {
	ReadinessReader
	ReadinessWriter
	AssignmentReader
}
