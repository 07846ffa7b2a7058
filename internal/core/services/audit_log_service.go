package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
	portssvc "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/services"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/dto"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 100
)

type auditLogService struct {
	BaseService
	auditRepo    portsrepo.AuditLogRepositoryFacade
	timecardRepo portsrepo.TimecardReader
	authorizer   portssvc.ProjectAuthorizerSvc
}

var _ portssvc.AuditLogSvcFacade = (*auditLogService)(nil)

// NewAuditLogService creates a new audit log service.
func NewAuditLogService(auditRepo portsrepo.AuditLogRepositoryFacade, timecardRepo portsrepo.TimecardReader, authorizer portssvc.ProjectAuthorizerSvc) portssvc.AuditLogSvcFacade {
	return &auditLogService{
		auditRepo:    auditRepo,
		timecardRepo: timecardRepo,
		authorizer:   authorizer,
	}
}

// RecordChanges persists one audit row per diff whose old and new values
// actually differ. All rows from one call share a single change id and a
// single changed-at timestamp so a reader can reconstruct everything one
// interaction touched. A persistence failure is logged and swallowed: audit
// logging is best-effort relative to the mutation it describes.
func (s *auditLogService) RecordChanges(ctx context.Context, timecardID string, diffs []domain.FieldDiff, actorID string, actionType domain.AuditActionType) {
	changed := make([]domain.FieldDiff, 0, len(diffs))
	for _, d := range diffs {
		if d.Changed() {
			changed = append(changed, d)
		}
	}
	if len(changed) == 0 {
		return
	}

	changeID := uuid.NewString()
	changedAt := time.Now().UTC()

	entries := make([]domain.AuditLogEntry, len(changed))
	for i, d := range changed {
		fieldName := domain.CanonicalAuditField(d.FieldName)
		entries[i] = domain.AuditLogEntry{
			AuditID:    uuid.NewString(),
			TimecardID: timecardID,
			ChangeID:   changeID,
			FieldName:  &fieldName,
			OldValue:   d.OldValue,
			NewValue:   d.NewValue,
			ChangedBy:  actorID,
			ChangedAt:  changedAt,
			ActionType: actionType,
			WorkDate:   d.WorkDate,
		}
	}

	if err := s.auditRepo.InsertEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "failed to persist audit log entries",
			"timecardID", timecardID, "changeID", changeID, "entryCount", len(entries))
	}
}

// ListChanges retrieves a token-paginated page of a timecard's audit trail,
// newest change first. Visibility follows the timecard itself: the owner and
// authorized approvers may read the history, everyone else sees not-found.
func (s *auditLogService) ListChanges(ctx context.Context, timecardID string, actor domain.Actor, params dto.ListAuditLogParams) (*dto.ListAuditLogResponse, error) {
	header, err := s.timecardRepo.FindTimecardByID(ctx, timecardID)
	if err != nil {
		s.LogError(ctx, err, "failed to find timecard for audit history", "timecardID", timecardID)
		return nil, err
	}

	if header.UserID != actor.ID {
		if err := s.authorizer.AuthorizeApprover(ctx, actor, header.ProjectID); err != nil {
			// Hide existence from actors without visibility.
			return nil, fmt.Errorf("timecard %s: %w", timecardID, apperrors.ErrNotFound)
		}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultAuditPageSize
	} else if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	entries, nextToken, err := s.auditRepo.ListEntriesByTimecardID(ctx, timecardID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "failed to list audit log entries", "timecardID", timecardID)
		return nil, err
	}

	return &dto.ListAuditLogResponse{
		Entries:   dto.ToAuditLogEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
