package dto

import (
	"time"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenTimecardRequest opens a new timecard period for a user on a project.
// One daily entry is created per day from PeriodStartDate through PeriodEndDate.
type OpenTimecardRequest struct {
	UserID          string          `json:"userID" binding:"required"`
	ProjectID       string          `json:"projectID" binding:"required"`
	PeriodStartDate time.Time       `json:"periodStartDate" binding:"required"`
	PeriodEndDate   time.Time       `json:"periodEndDate" binding:"required"`
	PayRate         decimal.Decimal `json:"payRate"`
}

// HeaderUpdates carries the optional top-level field updates of an edit request.
type HeaderUpdates struct {
	Status     *string          `json:"status,omitempty"`
	TotalHours *decimal.Decimal `json:"total_hours,omitempty"`
	PayRate    *decimal.Decimal `json:"pay_rate,omitempty"`
	AdminNotes *string          `json:"admin_notes,omitempty"`
}

// DailyUpdates carries the optional punch-time updates for one day of an edit
// request. Times are "15:04" strings; an explicit empty string clears the value.
type DailyUpdates struct {
	CheckInTime    *string `json:"check_in_time,omitempty" binding:"omitempty,timeofday"`
	CheckOutTime   *string `json:"check_out_time,omitempty" binding:"omitempty,timeofday"`
	BreakStartTime *string `json:"break_start_time,omitempty" binding:"omitempty,timeofday"`
	BreakEndTime   *string `json:"break_end_time,omitempty" binding:"omitempty,timeofday"`
}

// EditTimecardRequest is the edit operation contract. Daily updates are keyed
// positionally ("day_0", "day_1", ...) against the work-date-ordered entries.
type EditTimecardRequest struct {
	Updates         HeaderUpdates           `json:"updates"`
	DailyUpdates    map[string]DailyUpdates `json:"dailyUpdates,omitempty" binding:"omitempty,dive"`
	AdminNote       *string                 `json:"adminNote,omitempty"`
	EditComment     *string                 `json:"editComment,omitempty"`
	RejectionReason *string                 `json:"rejectionReason,omitempty"`
	ReturnToDraft   bool                    `json:"returnToDraft,omitempty"`
}

// ChangedField reports one field the edit actually modified.
type ChangedField struct {
	Field    string  `json:"field"`
	NewValue *string `json:"newValue"`
}

// EditTimecardResponse is the success payload of the edit operation.
type EditTimecardResponse struct {
	Success  bool             `json:"success"`
	Changes  []ChangedField   `json:"changes"`
	Message  string           `json:"message"`
	Timecard TimecardResponse `json:"timecard"`
}

// DailyEntryResponse is one calendar day of a timecard.
type DailyEntryResponse struct {
	EntryID        string    `json:"entryID"`
	WorkDate       time.Time `json:"workDate"`
	CheckInTime    *string   `json:"checkInTime"`
	BreakStartTime *string   `json:"breakStartTime"`
	BreakEndTime   *string   `json:"breakEndTime"`
	CheckOutTime   *string   `json:"checkOutTime"`
}

// TimecardResponse is the header plus its ordered daily entries.
type TimecardResponse struct {
	TimecardID      string               `json:"timecardID"`
	UserID          string               `json:"userID"`
	ProjectID       string               `json:"projectID"`
	PeriodStartDate time.Time            `json:"periodStartDate"`
	Status          string               `json:"status"`
	TotalHours      decimal.Decimal      `json:"totalHours"`
	PayRate         decimal.Decimal      `json:"payRate"`
	AdminNotes      string               `json:"adminNotes,omitempty"`
	RejectionReason *string              `json:"rejectionReason,omitempty"`
	Version         int64                `json:"version"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
	DailyEntries    []DailyEntryResponse `json:"dailyEntries,omitempty"`
}

// ToTimecardResponse converts a domain header and entries to a TimecardResponse.
func ToTimecardResponse(h *domain.TimecardHeader, entries []domain.TimecardDailyEntry) TimecardResponse {
	resp := TimecardResponse{
		TimecardID:      h.TimecardID,
		UserID:          h.UserID,
		ProjectID:       h.ProjectID,
		PeriodStartDate: h.PeriodStartDate,
		Status:          string(h.Status),
		TotalHours:      h.TotalHours,
		PayRate:         h.PayRate,
		AdminNotes:      h.AdminNotes,
		RejectionReason: h.RejectionReason,
		Version:         h.Version,
		LastUpdatedAt:   h.LastUpdatedAt,
	}
	if len(entries) > 0 {
		resp.DailyEntries = make([]DailyEntryResponse, len(entries))
		for i, e := range entries {
			resp.DailyEntries[i] = DailyEntryResponse{
				EntryID:        e.EntryID,
				WorkDate:       e.WorkDate,
				CheckInTime:    e.CheckInTime,
				BreakStartTime: e.BreakStartTime,
				BreakEndTime:   e.BreakEndTime,
				CheckOutTime:   e.CheckOutTime,
			}
		}
	}
	return resp
}

// AuditLogEntryResponse is one field-level change fact from the audit trail.
type AuditLogEntryResponse struct {
	AuditID    string     `json:"auditID"`
	ChangeID   string     `json:"changeID"`
	FieldName  *string    `json:"fieldName"`
	OldValue   *string    `json:"oldValue"`
	NewValue   *string    `json:"newValue"`
	ChangedBy  string     `json:"changedBy"`
	ChangedAt  time.Time  `json:"changedAt"`
	ActionType string     `json:"actionType"`
	WorkDate   *time.Time `json:"workDate,omitempty"`
}

// ListAuditLogParams holds pagination parameters for the audit history endpoint.
type ListAuditLogParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListAuditLogResponse is a page of audit entries plus the next-page token.
type ListAuditLogResponse struct {
	Entries   []AuditLogEntryResponse `json:"entries"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// ToAuditLogEntryResponse converts a domain audit entry to its response DTO.
func ToAuditLogEntryResponse(e *domain.AuditLogEntry) AuditLogEntryResponse {
	return AuditLogEntryResponse{
		AuditID:    e.AuditID,
		ChangeID:   e.ChangeID,
		FieldName:  e.FieldName,
		OldValue:   e.OldValue,
		NewValue:   e.NewValue,
		ChangedBy:  e.ChangedBy,
		ChangedAt:  e.ChangedAt,
		ActionType: string(e.ActionType),
		WorkDate:   e.WorkDate,
	}
}

// ToAuditLogEntryResponses converts a slice of domain audit entries.
func ToAuditLogEntryResponses(entries []domain.AuditLogEntry) []AuditLogEntryResponse {
	responses := make([]AuditLogEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToAuditLogEntryResponse(&e)
	}
	return responses
}
