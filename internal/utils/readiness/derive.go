// Package readiness holds the pure derivation functions over a project
// readiness summary: todo items, feature availability, area and overall
// statuses, and assignment progress. No function here performs I/O.
package readiness

import (
	"fmt"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
)

// DeriveConfigStatus computes the status of a configuration area (locations,
// roles). Finalization wins over counts; a zero custom count means the project
// is still on defaults.
func DeriveConfigStatus(customCount int, finalized bool) domain.ConfigStatus {
	if finalized {
		return domain.ConfigFinalized
	}
	if customCount == 0 {
		return domain.ConfigDefaultOnly
	}
	return domain.ConfigConfigured
}

// DerivePresenceStatus computes the status of a population area (team, talent).
func DerivePresenceStatus(count int, finalized bool) domain.PresenceStatus {
	if finalized {
		return domain.PresenceFinalized
	}
	if count == 0 {
		return domain.PresenceNone
	}
	return domain.PresencePartial
}

// DeriveOverallStatus computes the aggregate operational status.
// Operational requires assigned staff, assigned talent, and at least one
// escort. Production-ready additionally requires all four areas finalized.
func DeriveOverallStatus(s *domain.ProjectReadiness) domain.OverallStatus {
	operational := s.TotalStaffAssigned > 0 && s.TotalTalent > 0 && s.EscortCount > 0
	if !operational {
		return domain.OverallGettingStarted
	}
	allFinalized := s.LocationsFinalized.Finalized &&
		s.RolesFinalized.Finalized &&
		s.TeamFinalized.Finalized &&
		s.TalentFinalized.Finalized
	if allFinalized {
		return domain.OverallProductionReady
	}
	return domain.OverallOperational
}

// GenerateTodoItems derives the prioritized setup task list from a summary.
// Each rule is independent and additive; items are ordered critical, then
// important, then optional.
func GenerateTodoItems(s *domain.ProjectReadiness) []domain.TodoItem {
	var critical, important, optional []domain.TodoItem

	route := func(suffix string) string {
		return fmt.Sprintf("/projects/%s/%s", s.ProjectID, suffix)
	}

	if s.TotalStaffAssigned == 0 {
		critical = append(critical, domain.TodoItem{
			ID:          "assign-team",
			Area:        domain.AreaTeam,
			Priority:    domain.PriorityCritical,
			Title:       "Assign team members",
			Description: "No staff are assigned to this project yet. Time tracking cannot start without a team.",
			ActionRoute: route("team"),
		})
	}
	if s.TotalTalent == 0 {
		critical = append(critical, domain.TodoItem{
			ID:          "add-talent",
			Area:        domain.AreaTalent,
			Priority:    domain.PriorityCritical,
			Title:       "Add talent",
			Description: "No talent are assigned to this project yet. Escort assignments need a talent roster.",
			ActionRoute: route("talent"),
		})
	}
	if s.TotalTalent > 0 && s.EscortCount == 0 {
		critical = append(critical, domain.TodoItem{
			ID:          "assign-escorts",
			Area:        domain.AreaTeam,
			Priority:    domain.PriorityCritical,
			Title:       "Assign talent escorts",
			Description: "Talent are on the roster but no escorts are assigned to supervise them.",
			ActionRoute: route("team"),
		})
	}
	if s.UrgentAssignmentIssues > 0 {
		critical = append(critical, domain.TodoItem{
			ID:          "resolve-urgent-assignments",
			Area:        domain.AreaTalent,
			Priority:    domain.PriorityCritical,
			Title:       "Resolve urgent assignment issues",
			Description: fmt.Sprintf("%d escort assignment issue(s) need attention.", s.UrgentAssignmentIssues),
			ActionRoute: route("assignments"),
		})
	}

	if s.LocationsStatus == domain.ConfigDefaultOnly {
		important = append(important, domain.TodoItem{
			ID:          "configure-locations",
			Area:        domain.AreaLocations,
			Priority:    domain.PriorityImportant,
			Title:       "Configure project locations",
			Description: "Only default locations exist. Add the locations used on this production.",
			ActionRoute: route("locations"),
		})
	}
	if s.RolesStatus == domain.ConfigDefaultOnly {
		important = append(important, domain.TodoItem{
			ID:          "configure-roles",
			Area:        domain.AreaRoles,
			Priority:    domain.PriorityImportant,
			Title:       "Configure project roles",
			Description: "Only default role templates exist. Add the roles and pay rates this project uses.",
			ActionRoute: route("roles"),
		})
	}

	if s.LocationsStatus == domain.ConfigConfigured {
		optional = append(optional, domain.TodoItem{
			ID:          "finalize-locations",
			Area:        domain.AreaLocations,
			Priority:    domain.PriorityOptional,
			Title:       "Finalize locations",
			Description: "Locations are configured but not yet marked final.",
			ActionRoute: route("locations"),
		})
	}
	if s.RolesStatus == domain.ConfigConfigured {
		optional = append(optional, domain.TodoItem{
			ID:          "finalize-roles",
			Area:        domain.AreaRoles,
			Priority:    domain.PriorityOptional,
			Title:       "Finalize roles",
			Description: "Roles are configured but not yet marked final.",
			ActionRoute: route("roles"),
		})
	}
	if s.TeamStatus == domain.PresencePartial {
		optional = append(optional, domain.TodoItem{
			ID:          "finalize-team",
			Area:        domain.AreaTeam,
			Priority:    domain.PriorityOptional,
			Title:       "Finalize team",
			Description: "Staff are assigned but the team is not yet marked final.",
			ActionRoute: route("team"),
		})
	}
	if s.TalentStatus == domain.PresencePartial {
		optional = append(optional, domain.TodoItem{
			ID:          "finalize-talent",
			Area:        domain.AreaTalent,
			Priority:    domain.PriorityOptional,
			Title:       "Finalize talent roster",
			Description: "Talent are assigned but the roster is not yet marked final.",
			ActionRoute: route("talent"),
		})
	}

	items := make([]domain.TodoItem, 0, len(critical)+len(important)+len(optional))
	items = append(items, critical...)
	items = append(items, important...)
	items = append(items, optional...)
	return items
}

// CalculateFeatureAvailability evaluates the fixed feature gates against a
// summary. Guidance and action routes are populated only for blocked features.
func CalculateFeatureAvailability(s *domain.ProjectReadiness) domain.FeatureSet {
	route := func(suffix string) string {
		return fmt.Sprintf("/projects/%s/%s", s.ProjectID, suffix)
	}

	features := domain.FeatureSet{
		TimeTracking: domain.FeatureAvailability{
			Available:   s.TotalStaffAssigned > 0,
			Requirement: "At least one staff member assigned",
		},
		Assignments: domain.FeatureAvailability{
			Available:   s.TotalTalent > 0 && s.EscortCount > 0,
			Requirement: "Talent on the roster and at least one escort assigned",
		},
		LocationTracking: domain.FeatureAvailability{
			Available:   s.LocationsStatus != domain.ConfigDefaultOnly,
			Requirement: "Project locations configured",
		},
		SupervisorCheckout: domain.FeatureAvailability{
			Available:   s.SupervisorCount > 0 && s.EscortCount > 0,
			Requirement: "A supervisor and at least one escort assigned",
		},
		ProjectOperations: domain.FeatureAvailability{
			Available:   DeriveOverallStatus(s) != domain.OverallGettingStarted,
			Requirement: "Staff, talent and escorts all assigned",
		},
	}

	if !features.TimeTracking.Available {
		features.TimeTracking.Guidance = "Assign staff to the project to enable time tracking."
		features.TimeTracking.ActionRoute = route("team")
	}
	if !features.Assignments.Available {
		if s.TotalTalent == 0 {
			features.Assignments.Guidance = "Add talent to the roster to enable escort assignments."
			features.Assignments.ActionRoute = route("talent")
		} else {
			features.Assignments.Guidance = "Assign at least one escort to enable escort assignments."
			features.Assignments.ActionRoute = route("team")
		}
	}
	if !features.LocationTracking.Available {
		features.LocationTracking.Guidance = "Add project locations to enable location tracking."
		features.LocationTracking.ActionRoute = route("locations")
	}
	if !features.SupervisorCheckout.Available {
		if s.SupervisorCount == 0 {
			features.SupervisorCheckout.Guidance = "Assign a supervisor to enable supervisor checkout."
		} else {
			features.SupervisorCheckout.Guidance = "Assign at least one escort to enable supervisor checkout."
		}
		features.SupervisorCheckout.ActionRoute = route("team")
	}
	if !features.ProjectOperations.Available {
		features.ProjectOperations.Guidance = "Complete team and talent setup to enable project operations."
		features.ProjectOperations.ActionRoute = route("readiness")
	}

	return features
}

// CalculateAssignmentProgress summarizes daily escort slots. Percent is zero
// when the project has no slots at all.
func CalculateAssignmentProgress(total, completed int) domain.AssignmentProgress {
	progress := domain.AssignmentProgress{
		TotalSlots:     total,
		CompletedSlots: completed,
	}
	if total > 0 {
		progress.PercentDone = float64(completed) / float64(total) * 100
	}
	return progress
}
