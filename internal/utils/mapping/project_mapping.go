package mapping

import (
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/models"
)

// ToDomainProject converts a model project to its domain form.
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

// ToDomainProjectSettings converts model project settings to their domain form.
func ToDomainProjectSettings(m models.ProjectSettings) domain.ProjectSettings {
	return domain.ProjectSettings{
		ProjectID:                      m.ProjectID,
		SupervisorCanApproveTimecards:  m.SupervisorCanApproveTimecards,
		CoordinatorCanApproveTimecards: m.CoordinatorCanApproveTimecards,
		EscortCanApproveTimecards:      m.EscortCanApproveTimecards,
	}
}
