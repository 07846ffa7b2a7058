package services

import (
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
	portssvc "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/services"
)

// NewServiceContainer wires all application services with their dependencies.
// cache and publisher are best-effort collaborators; passing a no-op
// implementation disables the respective concern without touching the services.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	cache portsrepo.SummaryCache,
	publisher portsrepo.EventPublisher,
	approvalDefaults domain.ProjectSettings,
) *portssvc.ServiceContainer {
	projectSvc := NewProjectService(repos.ProjectRepo, approvalDefaults)
	auditSvc := NewAuditLogService(repos.AuditLogRepo, repos.TimecardRepo, projectSvc)
	timecardSvc := NewTimecardService(repos.TimecardRepo, auditSvc, projectSvc)
	readinessSvc := NewReadinessService(repos.ReadinessRepo, projectSvc, cache, publisher)

	return &portssvc.ServiceContainer{
		Timecard:  timecardSvc,
		AuditLog:  auditSvc,
		Readiness: readinessSvc,
		Project:   projectSvc,
	}
}
