package mapping

import (
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/models"
)

// ToModelReadiness converts a domain readiness summary to its model form.
func ToModelReadiness(d domain.ProjectReadiness) models.ProjectReadiness {
	return models.ProjectReadiness{
		ProjectID:              d.ProjectID,
		HasDefaultLocations:    d.HasDefaultLocations,
		CustomLocationCount:    d.CustomLocationCount,
		LocationsFinalized:     d.LocationsFinalized.Finalized,
		LocationsFinalizedAt:   d.LocationsFinalized.FinalizedAt,
		LocationsFinalizedBy:   d.LocationsFinalized.FinalizedBy,
		LocationsStatus:        string(d.LocationsStatus),
		HasDefaultRoles:        d.HasDefaultRoles,
		CustomRoleCount:        d.CustomRoleCount,
		RolesFinalized:         d.RolesFinalized.Finalized,
		RolesFinalizedAt:       d.RolesFinalized.FinalizedAt,
		RolesFinalizedBy:       d.RolesFinalized.FinalizedBy,
		RolesStatus:            string(d.RolesStatus),
		TotalStaffAssigned:     d.TotalStaffAssigned,
		SupervisorCount:        d.SupervisorCount,
		EscortCount:            d.EscortCount,
		CoordinatorCount:       d.CoordinatorCount,
		TeamFinalized:          d.TeamFinalized.Finalized,
		TeamFinalizedAt:        d.TeamFinalized.FinalizedAt,
		TeamFinalizedBy:        d.TeamFinalized.FinalizedBy,
		TeamStatus:             string(d.TeamStatus),
		TotalTalent:            d.TotalTalent,
		TalentFinalized:        d.TalentFinalized.Finalized,
		TalentFinalizedAt:      d.TalentFinalized.FinalizedAt,
		TalentFinalizedBy:      d.TalentFinalized.FinalizedBy,
		TalentStatus:           string(d.TalentStatus),
		UrgentAssignmentIssues: d.UrgentAssignmentIssues,
		OverallStatus:          string(d.OverallStatus),
		LastUpdated:            d.LastUpdated,
	}
}

// ToDomainReadiness converts a model readiness summary to its domain form.
func ToDomainReadiness(m models.ProjectReadiness) domain.ProjectReadiness {
	return domain.ProjectReadiness{
		ProjectID:           m.ProjectID,
		HasDefaultLocations: m.HasDefaultLocations,
		CustomLocationCount: m.CustomLocationCount,
		LocationsFinalized: domain.AreaFinalization{
			Finalized:   m.LocationsFinalized,
			FinalizedAt: m.LocationsFinalizedAt,
			FinalizedBy: m.LocationsFinalizedBy,
		},
		LocationsStatus: domain.ConfigStatus(m.LocationsStatus),
		HasDefaultRoles: m.HasDefaultRoles,
		CustomRoleCount: m.CustomRoleCount,
		RolesFinalized: domain.AreaFinalization{
			Finalized:   m.RolesFinalized,
			FinalizedAt: m.RolesFinalizedAt,
			FinalizedBy: m.RolesFinalizedBy,
		},
		RolesStatus:        domain.ConfigStatus(m.RolesStatus),
		TotalStaffAssigned: m.TotalStaffAssigned,
		SupervisorCount:    m.SupervisorCount,
		EscortCount:        m.EscortCount,
		CoordinatorCount:   m.CoordinatorCount,
		TeamFinalized: domain.AreaFinalization{
			Finalized:   m.TeamFinalized,
			FinalizedAt: m.TeamFinalizedAt,
			FinalizedBy: m.TeamFinalizedBy,
		},
		TeamStatus:  domain.PresenceStatus(m.TeamStatus),
		TotalTalent: m.TotalTalent,
		TalentFinalized: domain.AreaFinalization{
			Finalized:   m.TalentFinalized,
			FinalizedAt: m.TalentFinalizedAt,
			FinalizedBy: m.TalentFinalizedBy,
		},
		TalentStatus:           domain.PresenceStatus(m.TalentStatus),
		UrgentAssignmentIssues: m.UrgentAssignmentIssues,
		OverallStatus:          domain.OverallStatus(m.OverallStatus),
		LastUpdated:            m.LastUpdated,
	}
}
