package repositories

import (
	"context"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a project by its unique identifier.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjectSettings retrieves the approval toggles for a project.
	// Projects without a settings row fall back to the deployment defaults.
	FindProjectSettings(ctx context.Context, projectID string) (*domain.ProjectSettings, error)
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
}
