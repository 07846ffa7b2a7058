package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/models"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/utils/mapping"
)

type PgxTimecardRepository struct {
	BaseRepository
}

func newPgxTimecardRepository(db *pgxpool.Pool) portsrepo.TimecardRepositoryWithTx {
	return &PgxTimecardRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTimecardRepository implements portsrepo.TimecardRepositoryWithTx
var _ portsrepo.TimecardRepositoryWithTx = (*PgxTimecardRepository)(nil)

func (r *PgxTimecardRepository) FindTimecardByID(ctx context.Context, timecardID string) (*domain.TimecardHeader, error) {
	query := `
		SELECT timecard_id, user_id, project_id, period_start_date, status,
		       total_hours, pay_rate, admin_notes, rejection_reason,
		       created_at, created_by, last_updated_at, last_updated_by, version
		FROM timecard_headers
		WHERE timecard_id = $1;
	`
	var m models.TimecardHeader
	err := r.Pool.QueryRow(ctx, query, timecardID).Scan(
		&m.TimecardID,
		&m.UserID,
		&m.ProjectID,
		&m.PeriodStartDate,
		&m.Status,
		&m.TotalHours,
		&m.PayRate,
		&m.AdminNotes,
		&m.RejectionReason,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find timecard by ID %s: %w", timecardID, err)
	}

	header := mapping.ToDomainTimecardHeader(m)
	return &header, nil
}

func (r *PgxTimecardRepository) FindDailyEntriesByTimecardID(ctx context.Context, timecardID string) ([]domain.TimecardDailyEntry, error) {
	query := `
		SELECT entry_id, timecard_id, work_date, check_in_time, break_start_time,
		       break_end_time, check_out_time,
		       created_at, created_by, last_updated_at, last_updated_by, version
		FROM timecard_daily_entries
		WHERE timecard_id = $1
		ORDER BY work_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, timecardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily entries for timecard %s: %w", timecardID, err)
	}
	defer rows.Close()

	var ms []models.TimecardDailyEntry
	for rows.Next() {
		var m models.TimecardDailyEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.TimecardID,
			&m.WorkDate,
			&m.CheckInTime,
			&m.BreakStartTime,
			&m.BreakEndTime,
			&m.CheckOutTime,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.Version,
		); err != nil {
			return nil, fmt.Errorf("failed to scan daily entry: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily entries: %w", err)
	}

	return mapping.ToDomainDailyEntrySlice(ms), nil
}

// SaveTimecard persists a new timecard header and its daily entries in one
// transaction.
func (r *PgxTimecardRepository) SaveTimecard(ctx context.Context, header domain.TimecardHeader, entries []domain.TimecardDailyEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTimecardHeader(header)
	headerQuery := `
		INSERT INTO timecard_headers (timecard_id, user_id, project_id, period_start_date, status,
			total_hours, pay_rate, admin_notes, rejection_reason,
			created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.TimecardID, m.UserID, m.ProjectID, m.PeriodStartDate, m.Status,
		m.TotalHours, m.PayRate, m.AdminNotes, m.RejectionReason,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to insert timecard header %s: %w", m.TimecardID, err)
	}

	entryQuery := `
		INSERT INTO timecard_daily_entries (entry_id, timecard_id, work_date,
			check_in_time, break_start_time, break_end_time, check_out_time,
			created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		em := mapping.ToModelDailyEntry(entry)
		batch.Queue(entryQuery,
			em.EntryID, em.TimecardID, em.WorkDate,
			em.CheckInTime, em.BreakStartTime, em.BreakEndTime, em.CheckOutTime,
			em.CreatedAt, em.CreatedBy, em.LastUpdatedAt, em.LastUpdatedBy, em.Version,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert daily entry for timecard %s: %w", m.TimecardID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close daily entry batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateTimecard persists header changes and any touched daily entries in one
// transaction. The header row is matched against expectedVersion and bumped on
// success; a version mismatch means another writer got there first.
func (r *PgxTimecardRepository) UpdateTimecard(ctx context.Context, header domain.TimecardHeader, entries []domain.TimecardDailyEntry, expectedVersion int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTimecardHeader(header)
	headerQuery := `
		UPDATE timecard_headers
		SET status = $1,
		    total_hours = $2,
		    pay_rate = $3,
		    admin_notes = $4,
		    rejection_reason = $5,
		    last_updated_at = $6,
		    last_updated_by = $7,
		    version = version + 1
		WHERE timecard_id = $8 AND version = $9;
	`
	tag, err := tx.Exec(ctx, headerQuery,
		m.Status, m.TotalHours, m.PayRate, m.AdminNotes, m.RejectionReason,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.TimecardID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update timecard header %s: %w", m.TimecardID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("timecard %s changed since it was read (expected version %d): %w",
			m.TimecardID, expectedVersion, apperrors.ErrConflict)
	}

	entryQuery := `
		UPDATE timecard_daily_entries
		SET check_in_time = $1,
		    break_start_time = $2,
		    break_end_time = $3,
		    check_out_time = $4,
		    last_updated_at = $5,
		    last_updated_by = $6,
		    version = version + 1
		WHERE entry_id = $7;
	`
	for _, entry := range entries {
		em := mapping.ToModelDailyEntry(entry)
		tag, err := tx.Exec(ctx, entryQuery,
			em.CheckInTime, em.BreakStartTime, em.BreakEndTime, em.CheckOutTime,
			em.LastUpdatedAt, em.LastUpdatedBy,
			em.EntryID,
		)
		if err != nil {
			return fmt.Errorf("failed to update daily entry %s: %w", em.EntryID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("daily entry %s not found: %w", em.EntryID, apperrors.ErrNotFound)
		}
	}

	return r.Commit(ctx, tx)
}
