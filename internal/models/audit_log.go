package models

import "time"

// AuditLogEntry is the database representation of one immutable audit row.
// The table is append-only; rows are never updated or deleted.
type AuditLogEntry struct {
	AuditID    string     `db:"audit_id"`
	TimecardID string     `db:"timecard_id"`
	ChangeID   string     `db:"change_id"`
	FieldName  *string    `db:"field_name"`
	OldValue   *string    `db:"old_value"`
	NewValue   *string    `db:"new_value"`
	ChangedBy  string     `db:"changed_by"`
	ChangedAt  time.Time  `db:"changed_at"`
	ActionType string     `db:"action_type"`
	WorkDate   *time.Time `db:"work_date"`
}
