package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
	portssvc "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/services"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/dto"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/utils/readiness"
)

const (
	eventReadinessRecalculated = "readiness.recalculated"
	eventAreaFinalized         = "readiness.area_finalized"
	eventAreaUnfinalized       = "readiness.area_unfinalized"
)

type readinessService struct {
	BaseService
	readinessRepo portsrepo.ReadinessRepositoryFacade
	projectSvc    portssvc.ProjectSvcFacade
	cache         portsrepo.SummaryCache
	publisher     portsrepo.EventPublisher
}

var _ portssvc.ReadinessSvcFacade = (*readinessService)(nil)

// NewReadinessService creates a new readiness service. The cache and publisher
// are best-effort collaborators; their failures degrade to direct reads and
// dropped notifications.
func NewReadinessService(readinessRepo portsrepo.ReadinessRepositoryFacade, projectSvc portssvc.ProjectSvcFacade, cache portsrepo.SummaryCache, publisher portsrepo.EventPublisher) portssvc.ReadinessSvcFacade {
	return &readinessService{
		readinessRepo: readinessRepo,
		projectSvc:    projectSvc,
		cache:         cache,
		publisher:     publisher,
	}
}

// GetReadiness returns the summary plus its derivations. Reads go through the
// cache unless refresh is set; a project with no summary row yet gets one via
// a lazy recalculation.
func (s *readinessService) GetReadiness(ctx context.Context, projectID string, refresh bool, actor domain.Actor) (*dto.ProjectReadinessResponse, error) {
	if refresh {
		return s.Recalculate(ctx, projectID, actor)
	}

	if cached, err := s.cache.GetSummary(ctx, projectID); err != nil {
		s.LogWarn(ctx, "readiness cache read failed, falling back to store", "projectID", projectID, "error", err)
	} else if cached != nil {
		return s.buildResponse(ctx, cached)
	}

	summary, err := s.readinessRepo.FindReadinessByProjectID(ctx, projectID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return s.Recalculate(ctx, projectID, actor)
	}
	if err != nil {
		s.LogError(ctx, err, "failed to load readiness summary", "projectID", projectID)
		return nil, err
	}

	if err := s.cache.SetSummary(ctx, *summary); err != nil {
		s.LogWarn(ctx, "readiness cache write failed", "projectID", projectID, "error", err)
	}

	return s.buildResponse(ctx, summary)
}

// Recalculate recomputes the summary from the underlying assignment tables.
// Counts and derived statuses are overwritten; finalization markers carry over
// from the prior summary untouched, so the operation is idempotent apart from
// the last-updated timestamp.
func (s *readinessService) Recalculate(ctx context.Context, projectID string, actor domain.Actor) (*dto.ProjectReadinessResponse, error) {
	if _, err := s.projectSvc.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	summary, err := s.computeSummary(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.readinessRepo.UpsertReadiness(ctx, *summary); err != nil {
		s.LogError(ctx, err, "failed to persist readiness summary", "projectID", projectID)
		return nil, err
	}

	if err := s.cache.SetSummary(ctx, *summary); err != nil {
		s.LogWarn(ctx, "readiness cache write failed", "projectID", projectID, "error", err)
	}
	s.publish(ctx, portsrepo.Event{
		Name:      eventReadinessRecalculated,
		ProjectID: projectID,
		Payload:   map[string]any{"overallStatus": string(summary.OverallStatus)},
	})

	return s.buildResponse(ctx, summary)
}

// FinalizeArea stamps the sticky completion marker for one area. Only admin
// and in-house actors may finalize, and the area must already have content:
// configuration areas must not be on defaults, population areas must not be
// empty.
func (s *readinessService) FinalizeArea(ctx context.Context, projectID string, area domain.ReadinessArea, actor domain.Actor) (*dto.FinalizeAreaResponse, error) {
	if !area.IsValid() {
		return nil, fmt.Errorf("unknown readiness area %q: %w", area, apperrors.ErrValidation)
	}
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleInHouse {
		return nil, fmt.Errorf("finalizing a readiness area requires an admin or in-house role: %w", apperrors.ErrForbidden)
	}

	summary, err := s.currentSummary(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if reason := finalizeBlockReason(summary, area); reason != "" {
		return nil, apperrors.NewAppError(400, reason, apperrors.ErrCannotFinalize)
	}

	now := time.Now().UTC()
	if err := s.readinessRepo.SetAreaFinalized(ctx, projectID, area, true, actor.ID, now); err != nil {
		s.LogError(ctx, err, "failed to finalize readiness area", "projectID", projectID, "area", string(area))
		return nil, err
	}

	s.invalidate(ctx, projectID)
	s.publish(ctx, portsrepo.Event{
		Name:      eventAreaFinalized,
		ProjectID: projectID,
		Payload:   map[string]any{"area": string(area), "finalizedBy": actor.ID},
	})

	return &dto.FinalizeAreaResponse{
		Success:     true,
		Area:        string(area),
		FinalizedAt: now,
		FinalizedBy: actor.ID,
	}, nil
}

// UnfinalizeArea clears a finalization marker. Admin only.
func (s *readinessService) UnfinalizeArea(ctx context.Context, projectID string, area domain.ReadinessArea, actor domain.Actor) error {
	if !area.IsValid() {
		return fmt.Errorf("unknown readiness area %q: %w", area, apperrors.ErrValidation)
	}
	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("clearing a finalization requires the admin role: %w", apperrors.ErrForbidden)
	}

	if _, err := s.readinessRepo.FindReadinessByProjectID(ctx, projectID); err != nil {
		return err
	}

	if err := s.readinessRepo.SetAreaFinalized(ctx, projectID, area, false, actor.ID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "failed to clear readiness finalization", "projectID", projectID, "area", string(area))
		return err
	}

	s.invalidate(ctx, projectID)
	s.publish(ctx, portsrepo.Event{
		Name:      eventAreaUnfinalized,
		ProjectID: projectID,
		Payload:   map[string]any{"area": string(area), "clearedBy": actor.ID},
	})
	return nil
}

// computeSummary queries the underlying tables and derives the full summary.
// Prior finalization markers are preserved; a missing prior row means nothing
// has been finalized yet.
func (s *readinessService) computeSummary(ctx context.Context, projectID string) (*domain.ProjectReadiness, error) {
	prior, err := s.readinessRepo.FindReadinessByProjectID(ctx, projectID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to load prior readiness summary", "projectID", projectID)
		return nil, err
	}
	if prior == nil {
		prior = &domain.ProjectReadiness{ProjectID: projectID}
	}

	customLocations, err := s.readinessRepo.CountCustomLocations(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("count custom locations: %w", err)
	}
	customRoles, err := s.readinessRepo.CountCustomRoles(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("count custom roles: %w", err)
	}
	team, err := s.readinessRepo.ListActiveTeamAssignments(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list team assignments: %w", err)
	}
	talentCount, err := s.readinessRepo.CountActiveTalentAssignments(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("count talent assignments: %w", err)
	}
	urgentIssues, err := s.readinessRepo.CountUrgentAssignmentIssues(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("count urgent assignment issues: %w", err)
	}

	var supervisors, escorts, coordinators int
	for _, a := range team {
		switch a.Role {
		case domain.RoleSupervisor:
			supervisors++
		case domain.RoleTalentEscort:
			escorts++
		case domain.RoleCoordinator:
			coordinators++
		}
	}

	summary := &domain.ProjectReadiness{
		ProjectID: projectID,

		HasDefaultLocations: customLocations == 0,
		CustomLocationCount: customLocations,
		LocationsFinalized:  prior.LocationsFinalized,
		LocationsStatus:     readiness.DeriveConfigStatus(customLocations, prior.LocationsFinalized.Finalized),

		HasDefaultRoles: customRoles == 0,
		CustomRoleCount: customRoles,
		RolesFinalized:  prior.RolesFinalized,
		RolesStatus:     readiness.DeriveConfigStatus(customRoles, prior.RolesFinalized.Finalized),

		TotalStaffAssigned: len(team),
		SupervisorCount:    supervisors,
		EscortCount:        escorts,
		CoordinatorCount:   coordinators,
		TeamFinalized:      prior.TeamFinalized,
		TeamStatus:         readiness.DerivePresenceStatus(len(team), prior.TeamFinalized.Finalized),

		TotalTalent:     talentCount,
		TalentFinalized: prior.TalentFinalized,
		TalentStatus:    readiness.DerivePresenceStatus(talentCount, prior.TalentFinalized.Finalized),

		UrgentAssignmentIssues: urgentIssues,
		LastUpdated:            time.Now().UTC(),
	}
	summary.OverallStatus = readiness.DeriveOverallStatus(summary)
	return summary, nil
}

// currentSummary loads the persisted summary, recomputing lazily when no row
// exists yet.
func (s *readinessService) currentSummary(ctx context.Context, projectID string) (*domain.ProjectReadiness, error) {
	summary, err := s.readinessRepo.FindReadinessByProjectID(ctx, projectID)
	if errors.Is(err, apperrors.ErrNotFound) {
		if _, err := s.projectSvc.GetProject(ctx, projectID); err != nil {
			return nil, err
		}
		summary, err = s.computeSummary(ctx, projectID)
		if err != nil {
			return nil, err
		}
		if err := s.readinessRepo.UpsertReadiness(ctx, *summary); err != nil {
			return nil, err
		}
		return summary, nil
	}
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *readinessService) buildResponse(ctx context.Context, summary *domain.ProjectReadiness) (*dto.ProjectReadinessResponse, error) {
	total, completed, err := s.readinessRepo.CountDailyAssignmentSlots(ctx, summary.ProjectID)
	if err != nil {
		s.LogError(ctx, err, "failed to count daily assignment slots", "projectID", summary.ProjectID)
		return nil, err
	}

	resp := dto.ToProjectReadinessResponse(
		summary,
		readiness.GenerateTodoItems(summary),
		readiness.CalculateFeatureAvailability(summary),
		readiness.CalculateAssignmentProgress(total, completed),
	)
	return &resp, nil
}

func (s *readinessService) invalidate(ctx context.Context, projectID string) {
	if err := s.cache.InvalidateSummary(ctx, projectID); err != nil {
		s.LogWarn(ctx, "readiness cache invalidation failed", "projectID", projectID, "error", err)
	}
}

func (s *readinessService) publish(ctx context.Context, event portsrepo.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogWarn(ctx, "readiness event publish failed", "event", event.Name, "projectID", event.ProjectID, "error", err)
	}
}

// finalizeBlockReason returns the human-readable blocker for finalizing an
// area, or "" when the precondition holds.
func finalizeBlockReason(summary *domain.ProjectReadiness, area domain.ReadinessArea) string {
	switch area {
	case domain.AreaLocations:
		if summary.LocationsStatus == domain.ConfigDefaultOnly {
			return "locations cannot be finalized while only default locations exist"
		}
	case domain.AreaRoles:
		if summary.RolesStatus == domain.ConfigDefaultOnly {
			return "roles cannot be finalized while only default role templates exist"
		}
	case domain.AreaTeam:
		if summary.TeamStatus == domain.PresenceNone {
			return "team cannot be finalized while no staff are assigned"
		}
	case domain.AreaTalent:
		if summary.TalentStatus == domain.PresenceNone {
			return "talent cannot be finalized while the roster is empty"
		}
	}
	return ""
}
