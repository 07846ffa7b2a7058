package repositories

import (
	"context"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
)

// TimecardReader defines read operations for timecard data
type TimecardReader interface {
	// FindTimecardByID retrieves a timecard header by its unique identifier.
	FindTimecardByID(ctx context.Context, timecardID string) (*domain.TimecardHeader, error)

	// FindDailyEntriesByTimecardID retrieves the daily entries for a timecard,
	// ordered ascending by work date. Positional day keys resolve against this order.
	FindDailyEntriesByTimecardID(ctx context.Context, timecardID string) ([]domain.TimecardDailyEntry, error)
}

// TimecardWriter defines write operations for timecard data
type TimecardWriter interface {
	// SaveTimecard persists a new timecard header and its daily entries atomically.
	SaveTimecard(ctx context.Context, header domain.TimecardHeader, entries []domain.TimecardDailyEntry) error

	// UpdateTimecard persists header changes together with any touched daily
	// entries in one transaction. The header row is matched against
	// expectedVersion; a mismatch fails with apperrors.ErrConflict and nothing
	// is written.
	UpdateTimecard(ctx context.Context, header domain.TimecardHeader, entries []domain.TimecardDailyEntry, expectedVersion int64) error
}

// TimecardRepositoryFacade combines all timecard-related repository interfaces
type TimecardRepositoryFacade interface {
	TimecardReader
	TimecardWriter
}

// TimecardRepositoryWithTx extends TimecardRepositoryFacade with transaction capabilities
type TimecardRepositoryWithTx interface {
	TimecardRepositoryFacade
	TransactionManager
}
