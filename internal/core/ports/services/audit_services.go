package services

import (
	"context"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/dto"
)

// AuditLogRecorderSvc turns field diffs into persisted audit rows.
type AuditLogRecorderSvc interface {
	// RecordChanges persists one audit row per diff that actually changed,
	// all sharing a single change id and changed-at timestamp. Persistence
	// failures are logged and swallowed; the call never fails the surrounding
	// timecard mutation.
	RecordChanges(ctx context.Context, timecardID string, diffs []domain.FieldDiff, actorID string, actionType domain.AuditActionType)
}

// AuditLogReaderSvc exposes the change history of a timecard.
type AuditLogReaderSvc interface {
	// ListChanges retrieves a token-paginated page of a timecard's audit trail.
	ListChanges(ctx context.Context, timecardID string, actor domain.Actor, params dto.ListAuditLogParams) (*dto.ListAuditLogResponse, error)
}

// AuditLogSvcFacade combines all audit-log service interfaces
type AuditLogSvcFacade interface {
	AuditLogRecorderSvc
	AuditLogReaderSvc
}
