package domain

import "time"

// AuditActionType classifies how a timecard change came about.
type AuditActionType string

const (
	ActionUserEdit      AuditActionType = "user_edit"
	ActionAdminEdit     AuditActionType = "admin_edit"
	ActionRejectionEdit AuditActionType = "rejection_edit"
	ActionStatusChange  AuditActionType = "status_change"
)

// Canonical audit field labels. Daily-entry column names map onto these;
// status and rejection_reason pass through unchanged.
const (
	AuditFieldCheckIn         = "check_in"
	AuditFieldBreakStart      = "break_start"
	AuditFieldBreakEnd        = "break_end"
	AuditFieldCheckOut        = "check_out"
	AuditFieldStatus          = "status"
	AuditFieldRejectionReason = "rejection_reason"
	AuditFieldTotalHours      = "total_hours"
	AuditFieldPayRate         = "pay_rate"
	AuditFieldAdminNotes      = "admin_notes"
)

// auditFieldLabels maps raw daily-entry column names to their canonical labels.
var auditFieldLabels = map[string]string{
	"check_in_time":    AuditFieldCheckIn,
	"check_out_time":   AuditFieldCheckOut,
	"break_start_time": AuditFieldBreakStart,
	"break_end_time":   AuditFieldBreakEnd,
}

// CanonicalAuditField returns the canonical label for a raw column name.
// Names without a mapping (status, rejection_reason, header fields) pass through.
func CanonicalAuditField(raw string) string {
	if label, ok := auditFieldLabels[raw]; ok {
		return label
	}
	return raw
}

// FieldDiff is one "old value -> new value" change candidate handed to the
// audit log service. Values are text-serialized; nil means the field was unset.
// WorkDate names the calendar day a daily-entry change belongs to and is nil
// for header and status changes.
type FieldDiff struct {
	FieldName string     `json:"fieldName"`
	OldValue  *string    `json:"oldValue"`
	NewValue  *string    `json:"newValue"`
	WorkDate  *time.Time `json:"workDate,omitempty"`
}

// Changed reports whether the diff represents an actual value change,
// comparing the normalized serialized representations strictly.
func (d FieldDiff) Changed() bool {
	if d.OldValue == nil && d.NewValue == nil {
		return false
	}
	if d.OldValue == nil || d.NewValue == nil {
		return true
	}
	return *d.OldValue != *d.NewValue
}

// AuditLogEntry is one immutable field-level change fact. Every field changed
// in one user interaction shares a change id and a changed-at timestamp.
// Entries are created by the audit log service and never mutated or deleted.
type AuditLogEntry struct {
	AuditID    string          `json:"auditID"`  // Primary Key (e.g., UUID)
	TimecardID string          `json:"timecardID"`
	ChangeID   string          `json:"changeID"` // Groups all rows from one interaction
	FieldName  *string         `json:"fieldName"`
	OldValue   *string         `json:"oldValue"`
	NewValue   *string         `json:"newValue"`
	ChangedBy  string          `json:"changedBy"`
	ChangedAt  time.Time       `json:"changedAt"`
	ActionType AuditActionType `json:"actionType"`
	WorkDate   *time.Time      `json:"workDate,omitempty"` // nil for status-level changes
}
