package dto

import (
	"time"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
)

// FinalizeAreaRequest marks one readiness area as complete.
type FinalizeAreaRequest struct {
	Area string `json:"area" binding:"required,oneof=locations roles team talent"`
}

// FinalizeAreaResponse is the success payload of a finalize action.
type FinalizeAreaResponse struct {
	Success     bool      `json:"success"`
	Area        string    `json:"area"`
	FinalizedAt time.Time `json:"finalizedAt"`
	FinalizedBy string    `json:"finalizedBy"`
}

// ReadinessAreaStatus is the per-area slice of the readiness summary.
type ReadinessAreaStatus struct {
	Status      string     `json:"status"`
	Finalized   bool       `json:"finalized"`
	FinalizedAt *time.Time `json:"finalizedAt,omitempty"`
	FinalizedBy *string    `json:"finalizedBy,omitempty"`
}

// ProjectReadinessResponse is the readiness read payload: the summary row plus
// its derived todo items, feature availability, and assignment progress.
type ProjectReadinessResponse struct {
	ProjectID string `json:"projectID"`

	HasDefaultLocations bool                `json:"hasDefaultLocations"`
	CustomLocationCount int                 `json:"customLocationCount"`
	Locations           ReadinessAreaStatus `json:"locations"`

	HasDefaultRoles bool                `json:"hasDefaultRoles"`
	CustomRoleCount int                 `json:"customRoleCount"`
	Roles           ReadinessAreaStatus `json:"roles"`

	TotalStaffAssigned int                 `json:"totalStaffAssigned"`
	SupervisorCount    int                 `json:"supervisorCount"`
	EscortCount        int                 `json:"escortCount"`
	CoordinatorCount   int                 `json:"coordinatorCount"`
	Team               ReadinessAreaStatus `json:"team"`

	TotalTalent int                 `json:"totalTalent"`
	Talent      ReadinessAreaStatus `json:"talent"`

	UrgentAssignmentIssues int       `json:"urgentAssignmentIssues"`
	OverallStatus          string    `json:"overallStatus"`
	LastUpdated            time.Time `json:"lastUpdated"`

	TodoItems           []domain.TodoItem         `json:"todoItems"`
	FeatureAvailability domain.FeatureSet         `json:"featureAvailability"`
	AssignmentProgress  domain.AssignmentProgress `json:"assignmentProgress"`
}

func toAreaStatus(status string, fin domain.AreaFinalization) ReadinessAreaStatus {
	return ReadinessAreaStatus{
		Status:      status,
		Finalized:   fin.Finalized,
		FinalizedAt: fin.FinalizedAt,
		FinalizedBy: fin.FinalizedBy,
	}
}

// ToProjectReadinessResponse converts a summary and its derivations to the read payload.
func ToProjectReadinessResponse(r *domain.ProjectReadiness, todos []domain.TodoItem, features domain.FeatureSet, progress domain.AssignmentProgress) ProjectReadinessResponse {
	return ProjectReadinessResponse{
		ProjectID:              r.ProjectID,
		HasDefaultLocations:    r.HasDefaultLocations,
		CustomLocationCount:    r.CustomLocationCount,
		Locations:              toAreaStatus(string(r.LocationsStatus), r.LocationsFinalized),
		HasDefaultRoles:        r.HasDefaultRoles,
		CustomRoleCount:        r.CustomRoleCount,
		Roles:                  toAreaStatus(string(r.RolesStatus), r.RolesFinalized),
		TotalStaffAssigned:     r.TotalStaffAssigned,
		SupervisorCount:        r.SupervisorCount,
		EscortCount:            r.EscortCount,
		CoordinatorCount:       r.CoordinatorCount,
		Team:                   toAreaStatus(string(r.TeamStatus), r.TeamFinalized),
		TotalTalent:            r.TotalTalent,
		Talent:                 toAreaStatus(string(r.TalentStatus), r.TalentFinalized),
		UrgentAssignmentIssues: r.UrgentAssignmentIssues,
		OverallStatus:          string(r.OverallStatus),
		LastUpdated:            r.LastUpdated,
		TodoItems:              todos,
		FeatureAvailability:    features,
		AssignmentProgress:     progress,
	}
}
