package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimecardStatus indicates where a timecard sits in its approval lifecycle.
type TimecardStatus string

const (
	TimecardDraft       TimecardStatus = "draft"
	TimecardSubmitted   TimecardStatus = "submitted"
	TimecardRejected    TimecardStatus = "rejected"
	TimecardEditedDraft TimecardStatus = "edited_draft"
	TimecardApproved    TimecardStatus = "approved"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s TimecardStatus) IsValid() bool {
	switch s {
	case TimecardDraft, TimecardSubmitted, TimecardRejected, TimecardEditedDraft, TimecardApproved:
		return true
	}
	return false
}

// TimecardHeader is one user's timecard for one pay period on one project.
type TimecardHeader struct {
	TimecardID      string          `json:"timecardID"` // Primary Key (e.g., UUID)
	UserID          string          `json:"userID"`     // Owning user
	ProjectID       string          `json:"projectID"`
	PeriodStartDate time.Time       `json:"periodStartDate"`
	Status          TimecardStatus  `json:"status"`
	TotalHours      decimal.Decimal `json:"totalHours"`
	PayRate         decimal.Decimal `json:"payRate"`
	AdminNotes      string          `json:"adminNotes"`
	RejectionReason *string         `json:"rejectionReason,omitempty"`
	AuditFields
}

// TimecardDailyEntry is one calendar day's punch times within a timecard period.
// Entries are created when the period is opened and only ever value-updated,
// never deleted. Times are local times of day in "15:04" form, nil when unset.
type TimecardDailyEntry struct {
	EntryID        string    `json:"entryID"` // Primary Key (e.g., UUID)
	TimecardID     string    `json:"timecardID"`
	WorkDate       time.Time `json:"workDate"`
	CheckInTime    *string   `json:"checkInTime"`
	BreakStartTime *string   `json:"breakStartTime"`
	BreakEndTime   *string   `json:"breakEndTime"`
	CheckOutTime   *string   `json:"checkOutTime"`
	AuditFields
}
