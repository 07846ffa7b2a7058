package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
	portssvc "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/services"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
	// defaults are the deployment-wide approval toggles applied to projects
	// without a settings row.
	defaults domain.ProjectSettings
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, defaults domain.ProjectSettings) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo, defaults: defaults}
}

func (s *projectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "failed to find project", "projectID", projectID)
		return nil, err
	}
	return project, nil
}

// GetProjectSettings returns the project's approval toggles, falling back to
// the deployment defaults when the project has no settings row of its own.
func (s *projectService) GetProjectSettings(ctx context.Context, projectID string) (domain.ProjectSettings, error) {
	settings, err := s.projectRepo.FindProjectSettings(ctx, projectID)
	if errors.Is(err, apperrors.ErrNotFound) {
		fallback := s.defaults
		fallback.ProjectID = projectID
		return fallback, nil
	}
	if err != nil {
		s.LogError(ctx, err, "failed to load project settings", "projectID", projectID)
		return domain.ProjectSettings{}, err
	}
	return *settings, nil
}

// AuthorizeApprover verifies the actor holds approval authority in the
// project's context: admin and in-house always do, supervisor, coordinator and
// escort roles only when the matching toggle is enabled.
func (s *projectService) AuthorizeApprover(ctx context.Context, actor domain.Actor, projectID string) error {
	settings, err := s.GetProjectSettings(ctx, projectID)
	if err != nil {
		return err
	}
	if !domain.HasApprovalAuthority(actor.Role, settings) {
		return fmt.Errorf("role %s holds no approval authority for project %s: %w", actor.Role, projectID, apperrors.ErrForbidden)
	}
	return nil
}
