package mapping

import (
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/models"
)

// ToModelTimecardHeader converts a domain timecard header to its model form.
func ToModelTimecardHeader(d domain.TimecardHeader) models.TimecardHeader {
	return models.TimecardHeader{
		TimecardID:      d.TimecardID,
		UserID:          d.UserID,
		ProjectID:       d.ProjectID,
		PeriodStartDate: d.PeriodStartDate,
		Status:          models.TimecardStatus(d.Status),
		TotalHours:      d.TotalHours,
		PayRate:         d.PayRate,
		AdminNotes:      d.AdminNotes,
		RejectionReason: d.RejectionReason,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTimecardHeader converts a model timecard header to its domain form.
func ToDomainTimecardHeader(m models.TimecardHeader) domain.TimecardHeader {
	return domain.TimecardHeader{
		TimecardID:      m.TimecardID,
		UserID:          m.UserID,
		ProjectID:       m.ProjectID,
		PeriodStartDate: m.PeriodStartDate,
		Status:          domain.TimecardStatus(m.Status),
		TotalHours:      m.TotalHours,
		PayRate:         m.PayRate,
		AdminNotes:      m.AdminNotes,
		RejectionReason: m.RejectionReason,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDailyEntry converts a domain daily entry to its model form.
func ToModelDailyEntry(d domain.TimecardDailyEntry) models.TimecardDailyEntry {
	return models.TimecardDailyEntry{
		EntryID:        d.EntryID,
		TimecardID:     d.TimecardID,
		WorkDate:       d.WorkDate,
		CheckInTime:    d.CheckInTime,
		BreakStartTime: d.BreakStartTime,
		BreakEndTime:   d.BreakEndTime,
		CheckOutTime:   d.CheckOutTime,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailyEntry converts a model daily entry to its domain form.
func ToDomainDailyEntry(m models.TimecardDailyEntry) domain.TimecardDailyEntry {
	return domain.TimecardDailyEntry{
		EntryID:        m.EntryID,
		TimecardID:     m.TimecardID,
		WorkDate:       m.WorkDate,
		CheckInTime:    m.CheckInTime,
		BreakStartTime: m.BreakStartTime,
		BreakEndTime:   m.BreakEndTime,
		CheckOutTime:   m.CheckOutTime,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDailyEntrySlice converts a slice of model daily entries.
func ToDomainDailyEntrySlice(ms []models.TimecardDailyEntry) []domain.TimecardDailyEntry {
	ds := make([]domain.TimecardDailyEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDailyEntry(m)
	}
	return ds
}
