package services

import (
	"context"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
)

// ProjectReaderSvc defines read operations for project data
type ProjectReaderSvc interface {
	// GetProject retrieves a project by id.
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)

	// GetProjectSettings retrieves the effective approval toggles for a
	// project, falling back to the deployment defaults.
	GetProjectSettings(ctx context.Context, projectID string) (domain.ProjectSettings, error)
}

// ProjectAuthorizerSvc is the capability-check seam shared by the timecard
// edit state machine and the readiness finalize path.
type ProjectAuthorizerSvc interface {
	// AuthorizeApprover verifies the actor holds approval authority for the
	// project's context. Returns apperrors.ErrForbidden when it does not.
	AuthorizeApprover(ctx context.Context, actor domain.Actor, projectID string) error
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectAuthorizerSvc
}
