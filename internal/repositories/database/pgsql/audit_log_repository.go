package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/models"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/utils/mapping"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/utils/pagination"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

func newPgxAuditLogRepository(db *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{BaseRepository{Pool: db}}
}

// Ensure PgxAuditLogRepository implements portsrepo.AuditLogRepositoryFacade
var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

// InsertEntries persists a batch of audit rows in one transaction: if any row
// fails, none are persisted. The table is append-only; no update or delete
// statement exists in this repository.
func (r *PgxAuditLogRepository) InsertEntries(ctx context.Context, entries []domain.AuditLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO timecard_audit_log (audit_id, timecard_id, change_id, field_name,
			old_value, new_value, changed_by, changed_at, action_type, work_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelAuditLogEntry(entry)
		batch.Queue(query,
			m.AuditID, m.TimecardID, m.ChangeID, m.FieldName,
			m.OldValue, m.NewValue, m.ChangedBy, m.ChangedAt, m.ActionType, m.WorkDate,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert audit log entry: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close audit log batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// ListEntriesByTimecardID retrieves audit rows newest first, keyset-paginated
// on (changed_at, audit_id).
func (r *PgxAuditLogRepository) ListEntriesByTimecardID(ctx context.Context, timecardID string, limit int, nextToken *string) ([]domain.AuditLogEntry, *string, error) {
	query := `
		SELECT audit_id, timecard_id, change_id, field_name, old_value, new_value,
		       changed_by, changed_at, action_type, work_date
		FROM timecard_audit_log
		WHERE timecard_id = $1
	`
	args := []any{timecardID}

	if nextToken != nil && *nextToken != "" {
		ts, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		query += ` AND (changed_at, audit_id) < ($2, $3)`
		args = append(args, ts, id)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY changed_at DESC, audit_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query audit log for timecard %s: %w", timecardID, err)
	}
	defer rows.Close()

	var ms []models.AuditLogEntry
	for rows.Next() {
		var m models.AuditLogEntry
		if err := rows.Scan(
			&m.AuditID, &m.TimecardID, &m.ChangeID, &m.FieldName,
			&m.OldValue, &m.NewValue, &m.ChangedBy, &m.ChangedAt, &m.ActionType, &m.WorkDate,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating audit log entries: %w", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.ChangedAt, last.AuditID)
		token = &t
	}

	entries := make([]domain.AuditLogEntry, len(ms))
	for i, m := range ms {
		entries[i] = mapping.ToDomainAuditLogEntry(m)
	}
	return entries, token, nil
}
