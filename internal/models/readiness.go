package models

import "time"

// ProjectReadiness is the database representation of the denormalized
// per-project readiness summary row.
type ProjectReadiness struct {
	ProjectID string `db:"project_id"`

	HasDefaultLocations  bool       `db:"has_default_locations"`
	CustomLocationCount  int        `db:"custom_location_count"`
	LocationsFinalized   bool       `db:"locations_finalized"`
	LocationsFinalizedAt *time.Time `db:"locations_finalized_at"`
	LocationsFinalizedBy *string    `db:"locations_finalized_by"`
	LocationsStatus      string     `db:"locations_status"`

	HasDefaultRoles  bool       `db:"has_default_roles"`
	CustomRoleCount  int        `db:"custom_role_count"`
	RolesFinalized   bool       `db:"roles_finalized"`
	RolesFinalizedAt *time.Time `db:"roles_finalized_at"`
	RolesFinalizedBy *string    `db:"roles_finalized_by"`
	RolesStatus      string     `db:"roles_status"`

	TotalStaffAssigned int        `db:"total_staff_assigned"`
	SupervisorCount    int        `db:"supervisor_count"`
	EscortCount        int        `db:"escort_count"`
	CoordinatorCount   int        `db:"coordinator_count"`
	TeamFinalized      bool       `db:"team_finalized"`
	TeamFinalizedAt    *time.Time `db:"team_finalized_at"`
	TeamFinalizedBy    *string    `db:"team_finalized_by"`
	TeamStatus         string     `db:"team_status"`

	TotalTalent       int        `db:"total_talent"`
	TalentFinalized   bool       `db:"talent_finalized"`
	TalentFinalizedAt *time.Time `db:"talent_finalized_at"`
	TalentFinalizedBy *string    `db:"talent_finalized_by"`
	TalentStatus      string     `db:"talent_status"`

	UrgentAssignmentIssues int       `db:"urgent_assignment_issues"`
	OverallStatus          string    `db:"overall_status"`
	LastUpdated            time.Time `db:"last_updated"`
}
