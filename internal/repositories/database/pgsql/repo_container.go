package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	timecardRepo := newPgxTimecardRepository(dbPool)
	auditLogRepo := newPgxAuditLogRepository(dbPool)
	readinessRepo := newPgxReadinessRepository(dbPool)
	projectRepo := newPgxProjectRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TimecardRepo:  timecardRepo,
		AuditLogRepo:  auditLogRepo,
		ReadinessRepo: readinessRepo,
		ProjectRepo:   projectRepo,
	}
}
