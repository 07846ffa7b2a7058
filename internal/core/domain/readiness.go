package domain

import "time"

// ReadinessArea names one of the four configuration areas a project sets up.
type ReadinessArea string

const (
	AreaLocations ReadinessArea = "locations"
	AreaRoles     ReadinessArea = "roles"
	AreaTeam      ReadinessArea = "team"
	AreaTalent    ReadinessArea = "talent"
)

// IsValid reports whether the area is one of the four known areas.
func (a ReadinessArea) IsValid() bool {
	switch a {
	case AreaLocations, AreaRoles, AreaTeam, AreaTalent:
		return true
	}
	return false
}

// ConfigStatus describes configuration areas (locations, roles): still on
// defaults, customized, or explicitly finalized.
type ConfigStatus string

const (
	ConfigDefaultOnly ConfigStatus = "default-only"
	ConfigConfigured  ConfigStatus = "configured"
	ConfigFinalized   ConfigStatus = "finalized"
)

// PresenceStatus describes population areas (team, talent): empty, populated,
// or explicitly finalized.
type PresenceStatus string

const (
	PresenceNone      PresenceStatus = "none"
	PresencePartial   PresenceStatus = "partial"
	PresenceFinalized PresenceStatus = "finalized"
)

// OverallStatus is the project's aggregate operational state.
type OverallStatus string

const (
	OverallGettingStarted  OverallStatus = "getting-started"
	OverallOperational     OverallStatus = "operational"
	OverallProductionReady OverallStatus = "production-ready"
)

// AreaFinalization is the sticky, user-driven marker that an area's
// configuration is complete. Recalculation never touches it.
type AreaFinalization struct {
	Finalized   bool       `json:"finalized"`
	FinalizedAt *time.Time `json:"finalizedAt,omitempty"`
	FinalizedBy *string    `json:"finalizedBy,omitempty"`
}

// ProjectReadiness is the denormalized per-project readiness summary row.
// Counts and derived statuses are recomputed by the aggregator; finalization
// fields change only through explicit finalize/unfinalize actions.
type ProjectReadiness struct {
	ProjectID string `json:"projectID"`

	HasDefaultLocations bool             `json:"hasDefaultLocations"`
	CustomLocationCount int              `json:"customLocationCount"`
	LocationsFinalized  AreaFinalization `json:"locationsFinalized"`
	LocationsStatus     ConfigStatus     `json:"locationsStatus"`

	HasDefaultRoles bool             `json:"hasDefaultRoles"`
	CustomRoleCount int              `json:"customRoleCount"`
	RolesFinalized  AreaFinalization `json:"rolesFinalized"`
	RolesStatus     ConfigStatus     `json:"rolesStatus"`

	TotalStaffAssigned int              `json:"totalStaffAssigned"`
	SupervisorCount    int              `json:"supervisorCount"`
	EscortCount        int              `json:"escortCount"`
	CoordinatorCount   int              `json:"coordinatorCount"`
	TeamFinalized      AreaFinalization `json:"teamFinalized"`
	TeamStatus         PresenceStatus   `json:"teamStatus"`

	TotalTalent     int              `json:"totalTalent"`
	TalentFinalized AreaFinalization `json:"talentFinalized"`
	TalentStatus    PresenceStatus   `json:"talentStatus"`

	UrgentAssignmentIssues int           `json:"urgentAssignmentIssues"`
	OverallStatus          OverallStatus `json:"overallStatus"`
	LastUpdated            time.Time     `json:"lastUpdated"`
}

// FinalizationFor returns the finalization state for the named area.
func (r *ProjectReadiness) FinalizationFor(area ReadinessArea) AreaFinalization {
	switch area {
	case AreaLocations:
		return r.LocationsFinalized
	case AreaRoles:
		return r.RolesFinalized
	case AreaTeam:
		return r.TeamFinalized
	case AreaTalent:
		return r.TalentFinalized
	}
	return AreaFinalization{}
}

// TodoPriority orders readiness todo items: critical first, then important,
// then optional.
type TodoPriority string

const (
	PriorityCritical  TodoPriority = "critical"
	PriorityImportant TodoPriority = "important"
	PriorityOptional  TodoPriority = "optional"
)

// TodoItem is one prioritized setup task derived from a readiness summary.
type TodoItem struct {
	ID          string        `json:"id"`
	Area        ReadinessArea `json:"area"`
	Priority    TodoPriority  `json:"priority"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ActionRoute string        `json:"actionRoute"`
}

// FeatureAvailability states whether one named feature is usable, and when it
// is not, what blocks it and where to fix that.
type FeatureAvailability struct {
	Available   bool   `json:"available"`
	Requirement string `json:"requirement"`
	Guidance    string `json:"guidance,omitempty"`
	ActionRoute string `json:"actionRoute,omitempty"`
}

// FeatureSet holds the fixed set of gated features.
type FeatureSet struct {
	TimeTracking       FeatureAvailability `json:"timeTracking"`
	Assignments        FeatureAvailability `json:"assignments"`
	LocationTracking   FeatureAvailability `json:"locationTracking"`
	SupervisorCheckout FeatureAvailability `json:"supervisorCheckout"`
	ProjectOperations  FeatureAvailability `json:"projectOperations"`
}

// AssignmentProgress summarizes daily escort slots against the project's date range.
type AssignmentProgress struct {
	TotalSlots     int     `json:"totalSlots"`
	CompletedSlots int     `json:"completedSlots"`
	PercentDone    float64 `json:"percentDone"`
}
