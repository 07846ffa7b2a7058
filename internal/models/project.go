package models

import "time"

// Project is the database representation of a production project.
type Project struct {
	ProjectID string     `db:"project_id"`
	Name      string     `db:"name"`
	StartDate time.Time  `db:"start_date"`
	EndDate   time.Time  `db:"end_date"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// ProjectSettings is the database representation of per-project approval toggles.
type ProjectSettings struct {
	ProjectID                      string `db:"project_id"`
	SupervisorCanApproveTimecards  bool   `db:"supervisor_can_approve_timecards"`
	CoordinatorCanApproveTimecards bool   `db:"coordinator_can_approve_timecards"`
	EscortCanApproveTimecards      bool   `db:"escort_can_approve_timecards"`
}
