package repositories

import (
	"context"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
)

// AuditLogWriter defines write operations for the append-only audit log.
// There is deliberately no update or delete operation.
type AuditLogWriter interface {
	// InsertEntries persists a batch of audit rows atomically: if any row fails,
	// none are persisted for that change id.
	InsertEntries(ctx context.Context, entries []domain.AuditLogEntry) error
}

// AuditLogReader defines read operations for the audit log
type AuditLogReader interface {
	// ListEntriesByTimecardID retrieves a token-paginated list of audit rows for
	// a timecard, newest change first. It returns the entries, a token for the
	// next page, and an error.
	ListEntriesByTimecardID(ctx context.Context, timecardID string, limit int, nextToken *string) ([]domain.AuditLogEntry, *string, error)
}

// AuditLogRepositoryFacade combines all audit-log repository interfaces
type AuditLogRepositoryFacade interface {
	AuditLogWriter
	AuditLogReader
}
