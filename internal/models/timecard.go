package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimecardStatus mirrors the lifecycle enum persisted in timecard_headers.status.
type TimecardStatus string

const (
	TimecardDraft       TimecardStatus = "draft"
	TimecardSubmitted   TimecardStatus = "submitted"
	TimecardRejected    TimecardStatus = "rejected"
	TimecardEditedDraft TimecardStatus = "edited_draft"
	TimecardApproved    TimecardStatus = "approved"
)

// TimecardHeader is the database representation of one timecard period.
type TimecardHeader struct {
	TimecardID      string          `db:"timecard_id"`
	UserID          string          `db:"user_id"`
	ProjectID       string          `db:"project_id"`
	PeriodStartDate time.Time       `db:"period_start_date"`
	Status          TimecardStatus  `db:"status"`
	TotalHours      decimal.Decimal `db:"total_hours"`
	PayRate         decimal.Decimal `db:"pay_rate"`
	AdminNotes      string          `db:"admin_notes"`
	RejectionReason *string         `db:"rejection_reason"`
	AuditFields
}

// TimecardDailyEntry is the database representation of one day's punch times.
type TimecardDailyEntry struct {
	EntryID        string    `db:"entry_id"`
	TimecardID     string    `db:"timecard_id"`
	WorkDate       time.Time `db:"work_date"`
	CheckInTime    *string   `db:"check_in_time"`
	BreakStartTime *string   `db:"break_start_time"`
	BreakEndTime   *string   `db:"break_end_time"`
	CheckOutTime   *string   `db:"check_out_time"`
	AuditFields
}
