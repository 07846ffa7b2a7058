package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/models"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/utils/mapping"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository{Pool: db}}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT project_id, name, start_date, end_date,
		       created_at, created_by, last_updated_at, last_updated_by, version, deleted_at
		FROM projects
		WHERE project_id = $1 AND deleted_at IS NULL;
	`
	var m models.Project
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&m.ProjectID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}

	project := mapping.ToDomainProject(m)
	return &project, nil
}

func (r *PgxProjectRepository) FindProjectSettings(ctx context.Context, projectID string) (*domain.ProjectSettings, error) {
	query := `
		SELECT project_id, supervisor_can_approve_timecards, coordinator_can_approve_timecards, escort_can_approve_timecards
		FROM project_settings
		WHERE project_id = $1;
	`
	var m models.ProjectSettings
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&m.ProjectID,
		&m.SupervisorCanApproveTimecards,
		&m.CoordinatorCanApproveTimecards,
		&m.EscortCanApproveTimecards,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for project %s: %w", projectID, err)
	}

	settings := mapping.ToDomainProjectSettings(m)
	return &settings, nil
}
