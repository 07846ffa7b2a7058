package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/models"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/utils/mapping"
)

type PgxReadinessRepository struct {
	BaseRepository
}

func newPgxReadinessRepository(db *pgxpool.Pool) portsrepo.ReadinessRepositoryFacade {
	return &PgxReadinessRepository{BaseRepository{Pool: db}}
}

// Ensure PgxReadinessRepository implements portsrepo.ReadinessRepositoryFacade
var _ portsrepo.ReadinessRepositoryFacade = (*PgxReadinessRepository)(nil)

const readinessColumns = `
	project_id,
	has_default_locations, custom_location_count, locations_finalized, locations_finalized_at, locations_finalized_by, locations_status,
	has_default_roles, custom_role_count, roles_finalized, roles_finalized_at, roles_finalized_by, roles_status,
	total_staff_assigned, supervisor_count, escort_count, coordinator_count, team_finalized, team_finalized_at, team_finalized_by, team_status,
	total_talent, talent_finalized, talent_finalized_at, talent_finalized_by, talent_status,
	urgent_assignment_issues, overall_status, last_updated`

func (r *PgxReadinessRepository) FindReadinessByProjectID(ctx context.Context, projectID string) (*domain.ProjectReadiness, error) {
	query := `SELECT ` + readinessColumns + `
		FROM project_readiness
		WHERE project_id = $1;`

	var m models.ProjectReadiness
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&m.ProjectID,
		&m.HasDefaultLocations, &m.CustomLocationCount, &m.LocationsFinalized, &m.LocationsFinalizedAt, &m.LocationsFinalizedBy, &m.LocationsStatus,
		&m.HasDefaultRoles, &m.CustomRoleCount, &m.RolesFinalized, &m.RolesFinalizedAt, &m.RolesFinalizedBy, &m.RolesStatus,
		&m.TotalStaffAssigned, &m.SupervisorCount, &m.EscortCount, &m.CoordinatorCount, &m.TeamFinalized, &m.TeamFinalizedAt, &m.TeamFinalizedBy, &m.TeamStatus,
		&m.TotalTalent, &m.TalentFinalized, &m.TalentFinalizedAt, &m.TalentFinalizedBy, &m.TalentStatus,
		&m.UrgentAssignmentIssues, &m.OverallStatus, &m.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find readiness summary for project %s: %w", projectID, err)
	}

	summary := mapping.ToDomainReadiness(m)
	return &summary, nil
}

// UpsertReadiness writes the recomputed summary. On conflict only counts,
// derived statuses and last_updated are overwritten; the finalization columns
// stay untouched so recalculation can never clear a finalize action.
func (r *PgxReadinessRepository) UpsertReadiness(ctx context.Context, summary domain.ProjectReadiness) error {
	m := mapping.ToModelReadiness(summary)
	query := `
		INSERT INTO project_readiness (` + readinessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
		ON CONFLICT (project_id) DO UPDATE SET
			has_default_locations = EXCLUDED.has_default_locations,
			custom_location_count = EXCLUDED.custom_location_count,
			locations_status = EXCLUDED.locations_status,
			has_default_roles = EXCLUDED.has_default_roles,
			custom_role_count = EXCLUDED.custom_role_count,
			roles_status = EXCLUDED.roles_status,
			total_staff_assigned = EXCLUDED.total_staff_assigned,
			supervisor_count = EXCLUDED.supervisor_count,
			escort_count = EXCLUDED.escort_count,
			coordinator_count = EXCLUDED.coordinator_count,
			team_status = EXCLUDED.team_status,
			total_talent = EXCLUDED.total_talent,
			talent_status = EXCLUDED.talent_status,
			urgent_assignment_issues = EXCLUDED.urgent_assignment_issues,
			overall_status = EXCLUDED.overall_status,
			last_updated = EXCLUDED.last_updated;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.HasDefaultLocations, m.CustomLocationCount, m.LocationsFinalized, m.LocationsFinalizedAt, m.LocationsFinalizedBy, m.LocationsStatus,
		m.HasDefaultRoles, m.CustomRoleCount, m.RolesFinalized, m.RolesFinalizedAt, m.RolesFinalizedBy, m.RolesStatus,
		m.TotalStaffAssigned, m.SupervisorCount, m.EscortCount, m.CoordinatorCount, m.TeamFinalized, m.TeamFinalizedAt, m.TeamFinalizedBy, m.TeamStatus,
		m.TotalTalent, m.TalentFinalized, m.TalentFinalizedAt, m.TalentFinalizedBy, m.TalentStatus,
		m.UrgentAssignmentIssues, m.OverallStatus, m.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert readiness summary for project %s: %w", m.ProjectID, err)
	}
	return nil
}

// SetAreaFinalized stamps or clears one area's finalization marker and keeps
// the derived status column consistent without a full recalculation.
func (r *PgxReadinessRepository) SetAreaFinalized(ctx context.Context, projectID string, area domain.ReadinessArea, finalized bool, by string, at time.Time) error {
	var query string
	switch area {
	case domain.AreaLocations:
		query = `
			UPDATE project_readiness
			SET locations_finalized = $2,
			    locations_finalized_at = CASE WHEN $2 THEN $3 ELSE NULL END,
			    locations_finalized_by = CASE WHEN $2 THEN $4 ELSE NULL END,
			    locations_status = CASE
					WHEN $2 THEN 'finalized'
					WHEN custom_location_count = 0 THEN 'default-only'
					ELSE 'configured' END,
			    last_updated = $3
			WHERE project_id = $1;`
	case domain.AreaRoles:
		query = `
			UPDATE project_readiness
			SET roles_finalized = $2,
			    roles_finalized_at = CASE WHEN $2 THEN $3 ELSE NULL END,
			    roles_finalized_by = CASE WHEN $2 THEN $4 ELSE NULL END,
			    roles_status = CASE
					WHEN $2 THEN 'finalized'
					WHEN custom_role_count = 0 THEN 'default-only'
					ELSE 'configured' END,
			    last_updated = $3
			WHERE project_id = $1;`
	case domain.AreaTeam:
		query = `
			UPDATE project_readiness
			SET team_finalized = $2,
			    team_finalized_at = CASE WHEN $2 THEN $3 ELSE NULL END,
			    team_finalized_by = CASE WHEN $2 THEN $4 ELSE NULL END,
			    team_status = CASE
					WHEN $2 THEN 'finalized'
					WHEN total_staff_assigned = 0 THEN 'none'
					ELSE 'partial' END,
			    last_updated = $3
			WHERE project_id = $1;`
	case domain.AreaTalent:
		query = `
			UPDATE project_readiness
			SET talent_finalized = $2,
			    talent_finalized_at = CASE WHEN $2 THEN $3 ELSE NULL END,
			    talent_finalized_by = CASE WHEN $2 THEN $4 ELSE NULL END,
			    talent_status = CASE
					WHEN $2 THEN 'finalized'
					WHEN total_talent = 0 THEN 'none'
					ELSE 'partial' END,
			    last_updated = $3
			WHERE project_id = $1;`
	default:
		return fmt.Errorf("unknown readiness area %q: %w", area, apperrors.ErrValidation)
	}

	tag, err := r.Pool.Exec(ctx, query, projectID, finalized, at, by)
	if err != nil {
		return fmt.Errorf("failed to set %s finalization for project %s: %w", area, projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReadinessRepository) CountCustomLocations(ctx context.Context, projectID string) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM project_locations WHERE project_id = $1 AND is_default = FALSE AND deleted_at IS NULL;`,
		projectID)
}

func (r *PgxReadinessRepository) CountCustomRoles(ctx context.Context, projectID string) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM project_role_templates WHERE project_id = $1 AND is_default = FALSE AND deleted_at IS NULL;`,
		projectID)
}

func (r *PgxReadinessRepository) ListActiveTeamAssignments(ctx context.Context, projectID string) ([]portsrepo.TeamAssignment, error) {
	query := `
		SELECT user_id, role
		FROM team_assignments
		WHERE project_id = $1 AND status = 'active';
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team assignments for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var assignments []portsrepo.TeamAssignment
	for rows.Next() {
		var a portsrepo.TeamAssignment
		var role string
		if err := rows.Scan(&a.UserID, &role); err != nil {
			return nil, fmt.Errorf("failed to scan team assignment: %w", err)
		}
		a.Role = domain.StaffRole(role)
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team assignments: %w", err)
	}
	return assignments, nil
}

func (r *PgxReadinessRepository) CountActiveTalentAssignments(ctx context.Context, projectID string) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM talent_assignments WHERE project_id = $1 AND status = 'active';`,
		projectID)
}

func (r *PgxReadinessRepository) CountUrgentAssignmentIssues(ctx context.Context, projectID string) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM escort_assignments WHERE project_id = $1 AND is_urgent = TRUE AND escort_id IS NULL;`,
		projectID)
}

// CountDailyAssignmentSlots returns the total daily escort slots for the
// project and how many already have an escort.
func (r *PgxReadinessRepository) CountDailyAssignmentSlots(ctx context.Context, projectID string) (int, int, error) {
	query := `SELECT COUNT(*), COUNT(escort_id) FROM escort_assignments WHERE project_id = $1;`
	var total, completed int
	if err := r.Pool.QueryRow(ctx, query, projectID).Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("failed to count daily assignment slots for project %s: %w", projectID, err)
	}
	return total, completed, nil
}

func (r *PgxReadinessRepository) count(ctx context.Context, query, projectID string) (int, error) {
	var n int
	if err := r.Pool.QueryRow(ctx, query, projectID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count query failed for project %s: %w", projectID, err)
	}
	return n, nil
}
