package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
	portssvc "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/services"
)

// --- Mock TimecardRepository ---
type MockTimecardRepository struct {
	mock.Mock
}

var _ portsrepo.TimecardRepositoryFacade = (*MockTimecardRepository)(nil)

func (m *MockTimecardRepository) FindTimecardByID(ctx context.Context, timecardID string) (*domain.TimecardHeader, error) {
	args := m.Called(ctx, timecardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimecardHeader), args.Error(1)
}

func (m *MockTimecardRepository) FindDailyEntriesByTimecardID(ctx context.Context, timecardID string) ([]domain.TimecardDailyEntry, error) {
	args := m.Called(ctx, timecardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimecardDailyEntry), args.Error(1)
}

func (m *MockTimecardRepository) SaveTimecard(ctx context.Context, header domain.TimecardHeader, entries []domain.TimecardDailyEntry) error {
	args := m.Called(ctx, header, entries)
	return args.Error(0)
}

func (m *MockTimecardRepository) UpdateTimecard(ctx context.Context, header domain.TimecardHeader, entries []domain.TimecardDailyEntry, expectedVersion int64) error {
	args := m.Called(ctx, header, entries, expectedVersion)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepositoryFacade = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) InsertEntries(ctx context.Context, entries []domain.AuditLogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListEntriesByTimecardID(ctx context.Context, timecardID string, limit int, nextToken *string) ([]domain.AuditLogEntry, *string, error) {
	args := m.Called(ctx, timecardID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.AuditLogEntry), returnedNextToken, args.Error(2)
}

// --- Mock ReadinessRepository ---
type MockReadinessRepository struct {
	mock.Mock
}

var _ portsrepo.ReadinessRepositoryFacade = (*MockReadinessRepository)(nil)

func (m *MockReadinessRepository) FindReadinessByProjectID(ctx context.Context, projectID string) (*domain.ProjectReadiness, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectReadiness), args.Error(1)
}

func (m *MockReadinessRepository) UpsertReadiness(ctx context.Context, summary domain.ProjectReadiness) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockReadinessRepository) SetAreaFinalized(ctx context.Context, projectID string, area domain.ReadinessArea, finalized bool, by string, at time.Time) error {
	args := m.Called(ctx, projectID, area, finalized, by, at)
	return args.Error(0)
}

func (m *MockReadinessRepository) CountCustomLocations(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *MockReadinessRepository) CountCustomRoles(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *MockReadinessRepository) ListActiveTeamAssignments(ctx context.Context, projectID string) ([]portsrepo.TeamAssignment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.TeamAssignment), args.Error(1)
}

func (m *MockReadinessRepository) CountActiveTalentAssignments(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *MockReadinessRepository) CountUrgentAssignmentIssues(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *MockReadinessRepository) CountDailyAssignmentSlots(ctx context.Context, projectID string) (int, int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Int(1), args.Error(2)
}

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

var _ portsrepo.ProjectRepositoryFacade = (*MockProjectRepository)(nil)

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectSettings(ctx context.Context, projectID string) (*domain.ProjectSettings, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectSettings), args.Error(1)
}

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

func (m *MockProjectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) GetProjectSettings(ctx context.Context, projectID string) (domain.ProjectSettings, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(domain.ProjectSettings), args.Error(1)
}

func (m *MockProjectService) AuthorizeApprover(ctx context.Context, actor domain.Actor, projectID string) error {
	args := m.Called(ctx, actor, projectID)
	return args.Error(0)
}

// --- Mock AuditLogRecorder ---
type MockAuditLogRecorder struct {
	mock.Mock
}

var _ portssvc.AuditLogRecorderSvc = (*MockAuditLogRecorder)(nil)

func (m *MockAuditLogRecorder) RecordChanges(ctx context.Context, timecardID string, diffs []domain.FieldDiff, actorID string, actionType domain.AuditActionType) {
	m.Called(ctx, timecardID, diffs, actorID, actionType)
}

// --- Mock SummaryCache ---
type MockSummaryCache struct {
	mock.Mock
}

var _ portsrepo.SummaryCache = (*MockSummaryCache)(nil)

func (m *MockSummaryCache) GetSummary(ctx context.Context, projectID string) (*domain.ProjectReadiness, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectReadiness), args.Error(1)
}

func (m *MockSummaryCache) SetSummary(ctx context.Context, summary domain.ProjectReadiness) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockSummaryCache) InvalidateSummary(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

var _ portsrepo.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) Publish(ctx context.Context, event portsrepo.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// helper used across test files
func ptr(s string) *string {
	return &s
}
