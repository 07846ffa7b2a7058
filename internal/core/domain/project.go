package domain

import "time"

// Project is the minimal read model of a production project this core needs:
// existence, and the date range its daily escort assignments span.
type Project struct {
	ProjectID string     `json:"projectID"` // Primary Key (e.g., UUID)
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// ProjectSettings carries the per-deployment approval toggles. The fixed roles
// admin and in_house always hold approval authority; the remaining roles are
// authorized only when their toggle is enabled.
type ProjectSettings struct {
	ProjectID                      string `json:"projectID"`
	SupervisorCanApproveTimecards  bool   `json:"supervisorCanApproveTimecards"`
	CoordinatorCanApproveTimecards bool   `json:"coordinatorCanApproveTimecards"`
	EscortCanApproveTimecards      bool   `json:"escortCanApproveTimecards"`
}

// HasApprovalAuthority is the single capability check for timecard approval and
// readiness finalization. Both the edit state machine and the finalize path go
// through here rather than comparing role strings at call sites.
func HasApprovalAuthority(role StaffRole, settings ProjectSettings) bool {
	switch role {
	case RoleAdmin, RoleInHouse:
		return true
	case RoleSupervisor:
		return settings.SupervisorCanApproveTimecards
	case RoleCoordinator:
		return settings.CoordinatorCanApproveTimecards
	case RoleTalentEscort:
		return settings.EscortCanApproveTimecards
	}
	return false
}
