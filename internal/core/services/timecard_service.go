package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
	portssvc "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/services"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/dto"
)

// dayKeyPrefix is how callers reference daily entries positionally: "day_0" is
// the first entry in work-date order, "day_1" the second, and so on.
const dayKeyPrefix = "day_"

// timeOfDayLayout is the accepted wire form for punch times.
const timeOfDayLayout = "15:04"

type timecardService struct {
	BaseService
	timecardRepo portsrepo.TimecardRepositoryFacade
	auditSvc     portssvc.AuditLogRecorderSvc
	projectSvc   portssvc.ProjectSvcFacade
}

var _ portssvc.TimecardSvcFacade = (*timecardService)(nil)

// NewTimecardService creates a new timecard service.
func NewTimecardService(timecardRepo portsrepo.TimecardRepositoryFacade, auditSvc portssvc.AuditLogRecorderSvc, projectSvc portssvc.ProjectSvcFacade) portssvc.TimecardSvcFacade {
	return &timecardService{
		timecardRepo: timecardRepo,
		auditSvc:     auditSvc,
		projectSvc:   projectSvc,
	}
}

// GetTimecard retrieves a timecard with its work-date-ordered daily entries.
// Actors without visibility get not-found rather than forbidden so existence
// is not leaked.
func (s *timecardService) GetTimecard(ctx context.Context, timecardID string, actor domain.Actor) (*dto.TimecardResponse, error) {
	header, err := s.timecardRepo.FindTimecardByID(ctx, timecardID)
	if err != nil {
		s.LogError(ctx, err, "failed to find timecard", "timecardID", timecardID)
		return nil, err
	}

	if header.UserID != actor.ID {
		if err := s.projectSvc.AuthorizeApprover(ctx, actor, header.ProjectID); err != nil {
			return nil, fmt.Errorf("timecard %s: %w", timecardID, apperrors.ErrNotFound)
		}
	}

	entries, err := s.timecardRepo.FindDailyEntriesByTimecardID(ctx, timecardID)
	if err != nil {
		s.LogError(ctx, err, "failed to load daily entries", "timecardID", timecardID)
		return nil, err
	}

	resp := dto.ToTimecardResponse(header, entries)
	return &resp, nil
}

// OpenTimecard creates a draft timecard for a pay period with one empty daily
// entry per calendar day from the period start through the period end.
func (s *timecardService) OpenTimecard(ctx context.Context, req dto.OpenTimecardRequest, actor domain.Actor) (*dto.TimecardResponse, error) {
	start := req.PeriodStartDate.Truncate(24 * time.Hour)
	end := req.PeriodEndDate.Truncate(24 * time.Hour)
	if end.Before(start) {
		return nil, fmt.Errorf("period end %s precedes period start %s: %w",
			end.Format("2006-01-02"), start.Format("2006-01-02"), apperrors.ErrValidation)
	}

	if req.UserID != actor.ID {
		if err := s.projectSvc.AuthorizeApprover(ctx, actor, req.ProjectID); err != nil {
			return nil, err
		}
	}

	if _, err := s.projectSvc.GetProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	header := domain.TimecardHeader{
		TimecardID:      uuid.NewString(),
		UserID:          req.UserID,
		ProjectID:       req.ProjectID,
		PeriodStartDate: start,
		Status:          domain.TimecardDraft,
		PayRate:         req.PayRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ID,
			Version:       1,
		},
	}

	var entries []domain.TimecardDailyEntry
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		entries = append(entries, domain.TimecardDailyEntry{
			EntryID:    uuid.NewString(),
			TimecardID: header.TimecardID,
			WorkDate:   d,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor.ID,
				LastUpdatedAt: now,
				LastUpdatedBy: actor.ID,
				Version:       1,
			},
		})
	}

	if err := s.timecardRepo.SaveTimecard(ctx, header, entries); err != nil {
		s.LogError(ctx, err, "failed to save new timecard", "timecardID", header.TimecardID)
		return nil, err
	}

	s.LogInfo(ctx, "timecard opened", "timecardID", header.TimecardID, "userID", req.UserID, "projectID", req.ProjectID)

	resp := dto.ToTimecardResponse(&header, entries)
	return &resp, nil
}

// EditTimecard runs the edit state machine: permission check, transition
// validation, diff computation against current values, persistence, and only
// then audit recording. A request whose every field matches the current value
// fails with no-changes-detected instead of succeeding silently.
func (s *timecardService) EditTimecard(ctx context.Context, timecardID string, req dto.EditTimecardRequest, actor domain.Actor) (*dto.EditTimecardResponse, error) {
	header, err := s.timecardRepo.FindTimecardByID(ctx, timecardID)
	if err != nil {
		s.LogError(ctx, err, "failed to find timecard for edit", "timecardID", timecardID)
		return nil, err
	}

	entries, err := s.timecardRepo.FindDailyEntriesByTimecardID(ctx, timecardID)
	if err != nil {
		s.LogError(ctx, err, "failed to load daily entries for edit", "timecardID", timecardID)
		return nil, err
	}

	isOwner := header.UserID == actor.ID
	hasAuthority := s.projectSvc.AuthorizeApprover(ctx, actor, header.ProjectID) == nil

	if err := validateEditPermission(header.Status, isOwner, hasAuthority, req.ReturnToDraft); err != nil {
		return nil, err
	}

	targetStatus, err := resolveTargetStatus(header, req, isOwner, hasAuthority)
	if err != nil {
		return nil, err
	}

	var diffs []domain.FieldDiff
	var touched []domain.TimecardDailyEntry
	now := time.Now().UTC()

	// Daily punch-time updates, keyed positionally against work-date order.
	if len(req.DailyUpdates) > 0 {
		dayDiffs, dayTouched, err := applyDailyUpdates(entries, req.DailyUpdates, actor.ID, now)
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, dayDiffs...)
		touched = dayTouched
	}

	// Header field updates.
	if req.Updates.TotalHours != nil && !req.Updates.TotalHours.Equal(header.TotalHours) {
		diffs = append(diffs, domain.FieldDiff{
			FieldName: domain.AuditFieldTotalHours,
			OldValue:  strPtr(header.TotalHours.String()),
			NewValue:  strPtr(req.Updates.TotalHours.String()),
		})
		header.TotalHours = *req.Updates.TotalHours
	}
	if req.Updates.PayRate != nil && !req.Updates.PayRate.Equal(header.PayRate) {
		diffs = append(diffs, domain.FieldDiff{
			FieldName: domain.AuditFieldPayRate,
			OldValue:  strPtr(header.PayRate.String()),
			NewValue:  strPtr(req.Updates.PayRate.String()),
		})
		header.PayRate = *req.Updates.PayRate
	}
	if req.Updates.AdminNotes != nil && *req.Updates.AdminNotes != header.AdminNotes {
		diffs = append(diffs, domain.FieldDiff{
			FieldName: domain.AuditFieldAdminNotes,
			OldValue:  strPtr(header.AdminNotes),
			NewValue:  req.Updates.AdminNotes,
		})
		header.AdminNotes = *req.Updates.AdminNotes
	}

	// Status transition, if any.
	if targetStatus != header.Status {
		diffs = append(diffs, domain.FieldDiff{
			FieldName: domain.AuditFieldStatus,
			OldValue:  strPtr(string(header.Status)),
			NewValue:  strPtr(string(targetStatus)),
		})
		if targetStatus == domain.TimecardRejected {
			diffs = append(diffs, domain.FieldDiff{
				FieldName: domain.AuditFieldRejectionReason,
				OldValue:  header.RejectionReason,
				NewValue:  req.RejectionReason,
			})
			header.RejectionReason = req.RejectionReason
		}
		header.Status = targetStatus
	}

	if len(diffs) == 0 {
		return nil, fmt.Errorf("edit request matches current values: %w", apperrors.ErrNoChanges)
	}

	actionType := classifyAction(diffs, isOwner, header.Status)
	if err := validateEditAnnotations(actionType, diffs, req); err != nil {
		return nil, err
	}

	expectedVersion := header.Version
	header.LastUpdatedAt = now
	header.LastUpdatedBy = actor.ID

	// The primary mutation commits first; audit logging afterwards is
	// best-effort and never rolls the edit back.
	if err := s.timecardRepo.UpdateTimecard(ctx, *header, touched, expectedVersion); err != nil {
		s.LogError(ctx, err, "failed to update timecard", "timecardID", timecardID)
		return nil, err
	}
	header.Version = expectedVersion + 1

	s.auditSvc.RecordChanges(ctx, timecardID, diffs, actor.ID, actionType)

	changes := make([]dto.ChangedField, len(diffs))
	for i, d := range diffs {
		changes[i] = dto.ChangedField{
			Field:    domain.CanonicalAuditField(d.FieldName),
			NewValue: d.NewValue,
		}
	}

	s.LogInfo(ctx, "timecard edited", "timecardID", timecardID,
		"status", string(header.Status), "actionType", string(actionType), "changedFields", len(changes))

	return &dto.EditTimecardResponse{
		Success:  true,
		Changes:  changes,
		Message:  "Timecard updated successfully",
		Timecard: dto.ToTimecardResponse(header, entries),
	}, nil
}

// validateEditPermission is the fail-fast gate evaluated before any diff
// computation or mutation. Owners may self-edit while the timecard is draft,
// rejected, or in an edited draft; submitted and approved cards require
// approval authority. Non-owners always need approval authority.
func validateEditPermission(status domain.TimecardStatus, isOwner, hasAuthority, returnToDraft bool) error {
	if !isOwner && !hasAuthority {
		return fmt.Errorf("actor does not own this timecard and holds no approval authority: %w", apperrors.ErrForbidden)
	}
	if status == domain.TimecardApproved {
		return fmt.Errorf("approved timecards accept no further edits: %w", apperrors.ErrForbidden)
	}
	if isOwner && status == domain.TimecardSubmitted && !hasAuthority {
		return fmt.Errorf("submitted timecards can only be changed by an authorized approver: %w", apperrors.ErrForbidden)
	}
	// Returning a timecard to draft is an approver action even when the
	// request also carries field edits the owner could make alone.
	if returnToDraft && !hasAuthority {
		return fmt.Errorf("returning a timecard to draft requires approval authority: %w", apperrors.ErrForbidden)
	}
	return nil
}

// resolveTargetStatus determines the status the edit lands on: an explicit
// status from the request, the return-to-draft shortcut, or the implicit
// edited_draft transition when an approver edits fields on a card they do not
// own. It validates the transition against the lifecycle table.
func resolveTargetStatus(header *domain.TimecardHeader, req dto.EditTimecardRequest, isOwner, hasAuthority bool) (domain.TimecardStatus, error) {
	current := header.Status

	if req.ReturnToDraft {
		if req.Updates.Status != nil {
			return "", fmt.Errorf("returnToDraft and an explicit status update are mutually exclusive: %w", apperrors.ErrValidation)
		}
		return domain.TimecardDraft, nil
	}

	if req.Updates.Status == nil {
		// A field edit by a non-owner approver moves draft/submitted cards
		// into edited_draft; owner field edits on a rejected card do the same.
		hasFieldEdits := len(req.DailyUpdates) > 0 ||
			req.Updates.TotalHours != nil || req.Updates.PayRate != nil || req.Updates.AdminNotes != nil
		if hasFieldEdits {
			if !isOwner && (current == domain.TimecardDraft || current == domain.TimecardSubmitted) {
				return domain.TimecardEditedDraft, nil
			}
			if isOwner && current == domain.TimecardRejected {
				return domain.TimecardEditedDraft, nil
			}
		}
		return current, nil
	}

	target := domain.TimecardStatus(*req.Updates.Status)
	if !target.IsValid() {
		return "", fmt.Errorf("unknown timecard status %q: %w", *req.Updates.Status, apperrors.ErrValidation)
	}
	if target == current {
		return current, nil
	}

	switch {
	case target == domain.TimecardSubmitted &&
		(current == domain.TimecardDraft || current == domain.TimecardRejected || current == domain.TimecardEditedDraft):
		if !isOwner {
			return "", fmt.Errorf("only the owning user may submit a timecard: %w", apperrors.ErrForbidden)
		}
	case target == domain.TimecardApproved &&
		(current == domain.TimecardSubmitted || current == domain.TimecardEditedDraft):
		if !hasAuthority {
			return "", fmt.Errorf("approving a timecard requires approval authority: %w", apperrors.ErrForbidden)
		}
	case target == domain.TimecardRejected && current == domain.TimecardSubmitted:
		if !hasAuthority {
			return "", fmt.Errorf("rejecting a timecard requires approval authority: %w", apperrors.ErrForbidden)
		}
		if req.RejectionReason == nil || strings.TrimSpace(*req.RejectionReason) == "" {
			return "", fmt.Errorf("rejection requires a non-empty reason: %w", apperrors.ErrValidation)
		}
	case target == domain.TimecardEditedDraft &&
		(current == domain.TimecardDraft || current == domain.TimecardSubmitted || current == domain.TimecardRejected):
		// Reachable explicitly as well as implicitly.
	default:
		return "", fmt.Errorf("transition %s -> %s is not allowed: %w", current, target, apperrors.ErrValidation)
	}

	return target, nil
}

// classifyAction determines how the change set is attributed in the audit
// trail. Rejections get their own classification; a pure return-to-draft is a
// status change; everything else is attributed to the owner or an admin.
func classifyAction(diffs []domain.FieldDiff, isOwner bool, finalStatus domain.TimecardStatus) domain.AuditActionType {
	if finalStatus == domain.TimecardRejected {
		return domain.ActionRejectionEdit
	}
	if finalStatus == domain.TimecardDraft && len(diffs) == 1 && diffs[0].FieldName == domain.AuditFieldStatus {
		return domain.ActionStatusChange
	}
	if isOwner {
		return domain.ActionUserEdit
	}
	return domain.ActionAdminEdit
}

// validateEditAnnotations enforces that admin-attributed field edits carry a
// note or comment explaining the change. Pure status moves (approvals) are
// exempt.
func validateEditAnnotations(actionType domain.AuditActionType, diffs []domain.FieldDiff, req dto.EditTimecardRequest) error {
	if actionType != domain.ActionAdminEdit {
		return nil
	}
	fieldEdits := false
	for _, d := range diffs {
		if d.FieldName != domain.AuditFieldStatus {
			fieldEdits = true
			break
		}
	}
	if !fieldEdits {
		return nil
	}
	hasNote := req.AdminNote != nil && strings.TrimSpace(*req.AdminNote) != ""
	hasComment := req.EditComment != nil && strings.TrimSpace(*req.EditComment) != ""
	if !hasNote && !hasComment {
		return fmt.Errorf("admin edits require an admin note or edit comment: %w", apperrors.ErrValidation)
	}
	return nil
}

// applyDailyUpdates resolves positional day keys against the work-date-ordered
// entries, validates the time values, mutates the matched entries in place and
// returns the diffs plus the entries that actually changed.
func applyDailyUpdates(entries []domain.TimecardDailyEntry, updates map[string]dto.DailyUpdates, actorID string, now time.Time) ([]domain.FieldDiff, []domain.TimecardDailyEntry, error) {
	var diffs []domain.FieldDiff
	touchedIdx := make(map[int]bool)

	// Deterministic application order regardless of map iteration.
	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		idx, err := resolveDayKey(key, len(entries))
		if err != nil {
			return nil, nil, err
		}
		entry := &entries[idx]
		workDate := entry.WorkDate

		upd := updates[key]
		fields := []struct {
			name    string
			current **string
			update  *string
		}{
			{"check_in_time", &entry.CheckInTime, upd.CheckInTime},
			{"break_start_time", &entry.BreakStartTime, upd.BreakStartTime},
			{"break_end_time", &entry.BreakEndTime, upd.BreakEndTime},
			{"check_out_time", &entry.CheckOutTime, upd.CheckOutTime},
		}

		for _, f := range fields {
			if f.update == nil {
				continue
			}
			newVal, err := normalizeTimeOfDay(f.name, *f.update)
			if err != nil {
				return nil, nil, err
			}
			diff := domain.FieldDiff{
				FieldName: f.name,
				OldValue:  *f.current,
				NewValue:  newVal,
				WorkDate:  &workDate,
			}
			if !diff.Changed() {
				continue
			}
			diffs = append(diffs, diff)
			*f.current = newVal
			touchedIdx[idx] = true
		}

		if touchedIdx[idx] {
			entry.LastUpdatedAt = now
			entry.LastUpdatedBy = actorID
		}
	}

	touched := make([]domain.TimecardDailyEntry, 0, len(touchedIdx))
	for i := range entries {
		if touchedIdx[i] {
			touched = append(touched, entries[i])
		}
	}
	return diffs, touched, nil
}

// resolveDayKey translates "day_N" into an index into the ordered entries.
func resolveDayKey(key string, entryCount int) (int, error) {
	suffix, ok := strings.CutPrefix(key, dayKeyPrefix)
	if !ok {
		return 0, fmt.Errorf("day key %q must have the form day_N: %w", key, apperrors.ErrValidation)
	}
	idx, err := strconv.Atoi(suffix)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("day key %q must have the form day_N: %w", key, apperrors.ErrValidation)
	}
	if idx >= entryCount {
		return 0, fmt.Errorf("day key %q exceeds the %d-day period: %w", key, entryCount, apperrors.ErrValidation)
	}
	return idx, nil
}

// normalizeTimeOfDay validates a "15:04" time string. An empty string clears
// the value and maps to nil.
func normalizeTimeOfDay(fieldName, value string) (*string, error) {
	if value == "" {
		return nil, nil
	}
	if _, err := time.Parse(timeOfDayLayout, value); err != nil {
		return nil, fmt.Errorf("%s %q is not a valid HH:MM time: %w", fieldName, value, apperrors.ErrValidation)
	}
	return &value, nil
}

func strPtr(s string) *string {
	return &s
}
