package mapping

import (
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/models"
)

// ToModelAuditLogEntry converts a domain audit entry to its model form.
func ToModelAuditLogEntry(d domain.AuditLogEntry) models.AuditLogEntry {
	return models.AuditLogEntry{
		AuditID:    d.AuditID,
		TimecardID: d.TimecardID,
		ChangeID:   d.ChangeID,
		FieldName:  d.FieldName,
		OldValue:   d.OldValue,
		NewValue:   d.NewValue,
		ChangedBy:  d.ChangedBy,
		ChangedAt:  d.ChangedAt,
		ActionType: string(d.ActionType),
		WorkDate:   d.WorkDate,
	}
}

// ToDomainAuditLogEntry converts a model audit entry to its domain form.
func ToDomainAuditLogEntry(m models.AuditLogEntry) domain.AuditLogEntry {
	return domain.AuditLogEntry{
		AuditID:    m.AuditID,
		TimecardID: m.TimecardID,
		ChangeID:   m.ChangeID,
		FieldName:  m.FieldName,
		OldValue:   m.OldValue,
		NewValue:   m.NewValue,
		ChangedBy:  m.ChangedBy,
		ChangedAt:  m.ChangedAt,
		ActionType: domain.AuditActionType(m.ActionType),
		WorkDate:   m.WorkDate,
	}
}
