package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portsrepo "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/repositories"
	portssvc "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/services"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/services"
)

type ReadinessServiceTestSuite struct {
	suite.Suite
	mockReadinessRepo *MockReadinessRepository
	mockProjectSvc    *MockProjectService
	mockCache         *MockSummaryCache
	mockPublisher     *MockEventPublisher
	service           portssvc.ReadinessSvcFacade
	ctx               context.Context

	projectID string
	admin     domain.Actor
}

func (s *ReadinessServiceTestSuite) SetupTest() {
	s.mockReadinessRepo = new(MockReadinessRepository)
	s.mockProjectSvc = new(MockProjectService)
	s.mockCache = new(MockSummaryCache)
	s.mockPublisher = new(MockEventPublisher)
	s.service = services.NewReadinessService(s.mockReadinessRepo, s.mockProjectSvc, s.mockCache, s.mockPublisher)
	s.ctx = context.Background()

	s.projectID = uuid.NewString()
	s.admin = domain.Actor{ID: uuid.NewString(), Role: domain.RoleAdmin}
}

func TestReadinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReadinessServiceTestSuite))
}

// populatedSummary is a project with custom config and a working team.
func (s *ReadinessServiceTestSuite) populatedSummary() *domain.ProjectReadiness {
	return &domain.ProjectReadiness{
		ProjectID:           s.projectID,
		CustomLocationCount: 2,
		LocationsStatus:     domain.ConfigConfigured,
		CustomRoleCount:     1,
		RolesStatus:         domain.ConfigConfigured,
		TotalStaffAssigned:  4,
		SupervisorCount:     1,
		EscortCount:         2,
		CoordinatorCount:    1,
		TeamStatus:          domain.PresencePartial,
		TotalTalent:         5,
		TalentStatus:        domain.PresencePartial,
		OverallStatus:       domain.OverallOperational,
		LastUpdated:         time.Now().UTC(),
	}
}

// expectAssignmentCounts primes the five aggregation queries.
func (s *ReadinessServiceTestSuite) expectAssignmentCounts(locations, roles int, team []portsrepo.TeamAssignment, talent, urgent int) {
	s.mockReadinessRepo.On("CountCustomLocations", s.ctx, s.projectID).Return(locations, nil).Once()
	s.mockReadinessRepo.On("CountCustomRoles", s.ctx, s.projectID).Return(roles, nil).Once()
	s.mockReadinessRepo.On("ListActiveTeamAssignments", s.ctx, s.projectID).Return(team, nil).Once()
	s.mockReadinessRepo.On("CountActiveTalentAssignments", s.ctx, s.projectID).Return(talent, nil).Once()
	s.mockReadinessRepo.On("CountUrgentAssignmentIssues", s.ctx, s.projectID).Return(urgent, nil).Once()
}

func (s *ReadinessServiceTestSuite) expectSlots(total, completed int) {
	s.mockReadinessRepo.On("CountDailyAssignmentSlots", s.ctx, s.projectID).Return(total, completed, nil).Once()
}

func sampleTeam() []portsrepo.TeamAssignment {
	return []portsrepo.TeamAssignment{
		{UserID: uuid.NewString(), Role: domain.RoleSupervisor},
		{UserID: uuid.NewString(), Role: domain.RoleTalentEscort},
		{UserID: uuid.NewString(), Role: domain.RoleTalentEscort},
		{UserID: uuid.NewString(), Role: domain.RoleCoordinator},
	}
}

// --- GetReadiness ---

func (s *ReadinessServiceTestSuite) TestGetReadiness_CacheHitSkipsStore() {
	summary := s.populatedSummary()
	s.mockCache.On("GetSummary", s.ctx, s.projectID).Return(summary, nil).Once()
	s.expectSlots(10, 4)

	resp, err := s.service.GetReadiness(s.ctx, s.projectID, false, s.admin)

	s.Require().NoError(err)
	s.Equal(s.projectID, resp.ProjectID)
	s.Equal("operational", resp.OverallStatus)
	s.InDelta(40.0, resp.AssignmentProgress.PercentDone, 0.01)
	s.mockReadinessRepo.AssertNotCalled(s.T(), "FindReadinessByProjectID", mock.Anything, mock.Anything)
}

func (s *ReadinessServiceTestSuite) TestGetReadiness_CacheMissReadsStoreAndBackfills() {
	summary := s.populatedSummary()
	s.mockCache.On("GetSummary", s.ctx, s.projectID).Return(nil, nil).Once()
	s.mockReadinessRepo.On("FindReadinessByProjectID", s.ctx, s.projectID).Return(summary, nil).Once()
	s.mockCache.On("SetSummary", s.ctx, *summary).Return(nil).Once()
	s.expectSlots(0, 0)

	resp, err := s.service.GetReadiness(s.ctx, s.projectID, false, s.admin)

	s.Require().NoError(err)
	s.Equal(4, resp.TotalStaffAssigned)
	s.mockCache.AssertExpectations(s.T())
}

func (s *ReadinessServiceTestSuite) TestGetReadiness_MissingRowTriggersLazyRecalculation() {
	s.mockCache.On("GetSummary", s.ctx, s.projectID).Return(nil, nil).Once()
	// First read misses, then the recalculation reads the prior row again.
	s.mockReadinessRepo.On("FindReadinessByProjectID", s.ctx, s.projectID).Return(nil, apperrors.ErrNotFound).Twice()
	s.mockProjectSvc.On("GetProject", s.ctx, s.projectID).Return(&domain.Project{ProjectID: s.projectID}, nil).Once()
	s.expectAssignmentCounts(0, 0, nil, 0, 0)
	s.mockReadinessRepo.On("UpsertReadiness", s.ctx, mock.Anything).Return(nil).Once()
	s.mockCache.On("SetSummary", s.ctx, mock.Anything).Return(nil).Once()
	s.mockPublisher.On("Publish", s.ctx, mock.Anything).Return(nil).Once()
	s.expectSlots(0, 0)

	resp, err := s.service.GetReadiness(s.ctx, s.projectID, false, s.admin)

	s.Require().NoError(err)
	s.Equal("getting-started", resp.OverallStatus)
	s.mockReadinessRepo.AssertExpectations(s.T())
}

func (s *ReadinessServiceTestSuite) TestGetReadiness_RefreshBypassesCacheRead() {
	s.mockReadinessRepo.On("FindReadinessByProjectID", s.ctx, s.projectID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockProjectSvc.On("GetProject", s.ctx, s.projectID).Return(&domain.Project{ProjectID: s.projectID}, nil).Once()
	s.expectAssignmentCounts(2, 1, sampleTeam(), 5, 0)
	s.mockReadinessRepo.On("UpsertReadiness", s.ctx, mock.Anything).Return(nil).Once()
	s.mockCache.On("SetSummary", s.ctx, mock.Anything).Return(nil).Once()
	s.mockPublisher.On("Publish", s.ctx, mock.Anything).Return(nil).Once()
	s.expectSlots(20, 20)

	resp, err := s.service.GetReadiness(s.ctx, s.projectID, true, s.admin)

	s.Require().NoError(err)
	s.Equal("operational", resp.OverallStatus)
	s.mockCache.AssertNotCalled(s.T(), "GetSummary", mock.Anything, mock.Anything)
}

// --- Recalculate ---

func (s *ReadinessServiceTestSuite) TestRecalculate_DerivesCountsAndStatuses() {
	s.mockProjectSvc.On("GetProject", s.ctx, s.projectID).Return(&domain.Project{ProjectID: s.projectID}, nil).Once()
	s.mockReadinessRepo.On("FindReadinessByProjectID", s.ctx, s.projectID).Return(nil, apperrors.ErrNotFound).Once()
	s.expectAssignmentCounts(3, 0, sampleTeam(), 6, 2)

	var persisted domain.ProjectReadiness
	s.mockReadinessRepo.On("UpsertReadiness", s.ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(domain.ProjectReadiness)
		}).Return(nil).Once()
	s.mockCache.On("SetSummary", s.ctx, mock.Anything).Return(nil).Once()
	s.mockPublisher.On("Publish", s.ctx, mock.MatchedBy(func(e portsrepo.Event) bool {
		return e.Name == "readiness.recalculated" && e.ProjectID == s.projectID
	})).Return(nil).Once()
	s.expectSlots(0, 0)

	_, err := s.service.Recalculate(s.ctx, s.projectID, s.admin)

	s.Require().NoError(err)
	s.Equal(3, persisted.CustomLocationCount)
	s.False(persisted.HasDefaultLocations)
	s.Equal(domain.ConfigConfigured, persisted.LocationsStatus)
	s.True(persisted.HasDefaultRoles)
	s.Equal(domain.ConfigDefaultOnly, persisted.RolesStatus)
	s.Equal(4, persisted.TotalStaffAssigned)
	s.Equal(1, persisted.SupervisorCount)
	s.Equal(2, persisted.EscortCount)
	s.Equal(1, persisted.CoordinatorCount)
	s.Equal(domain.PresencePartial, persisted.TeamStatus)
	s.Equal(6, persisted.TotalTalent)
	s.Equal(2, persisted.UrgentAssignmentIssues)
	s.Equal(domain.OverallOperational, persisted.OverallStatus)
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *ReadinessServiceTestSuite) TestRecalculate_IsIdempotentApartFromTimestamp() {
	s.mockProjectSvc.On("GetProject", s.ctx, s.projectID).Return(&domain.Project{ProjectID: s.projectID}, nil).Twice()

	var persisted []domain.ProjectReadiness
	s.mockReadinessRepo.On("UpsertReadiness", s.ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = append(persisted, args.Get(1).(domain.ProjectReadiness))
		}).Return(nil).Twice()
	s.mockCache.On("SetSummary", s.ctx, mock.Anything).Return(nil).Twice()
	s.mockPublisher.On("Publish", s.ctx, mock.Anything).Return(nil).Twice()

	// Two rounds over identical source data. The second round reads back the
	// row the first round wrote.
	s.mockReadinessRepo.On("FindReadinessByProjectID", s.ctx, s.projectID).Return(nil, apperrors.ErrNotFound).Once()
	s.expectAssignmentCounts(2, 1, sampleTeam(), 5, 0)
	s.expectSlots(0, 0)
	_, err := s.service.Recalculate(s.ctx, s.projectID, s.admin)
	s.Require().NoError(err)

	first := persisted[0]
	s.mockReadinessRepo.On("FindReadinessByProjectID", s.ctx, s.projectID).Return(&first, nil).Once()
	s.expectAssignmentCounts(2, 1, sampleTeam(), 5, 0)
	s.expectSlots(0, 0)
	_, err = s.service.Recalculate(s.ctx, s.projectID, s.admin)
	s.Require().NoError(err)

	second := persisted[1]
	second.LastUpdated = first.LastUpdated
	// Team member IDs differ between rounds but only counts are persisted.
	s.Equal(first, second)
}

func (s *ReadinessServiceTestSuite) TestRecalculate_PreservesFinalization() {
	finalizedAt := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	finalizedBy := uuid.NewString()
	prior := s.populatedSummary()
	prior.TeamFinalized = domain.AreaFinalization{Finalized: true, FinalizedAt: &finalizedAt, FinalizedBy: &finalizedBy}
	prior.TeamStatus = domain.PresenceFinalized

	s.mockProjectSvc.On("GetProject", s.ctx, s.projectID).Return(&domain.Project{ProjectID: s.projectID}, nil).Once()
	s.mockReadinessRepo.On("FindReadinessByProjectID", s.ctx, s.projectID).Return(prior, nil).Once()
	s.expectAssignmentCounts(2, 1, sampleTeam(), 5, 0)

	var persisted domain.ProjectReadiness
	s.mockReadinessRepo.On("UpsertReadiness", s.ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(domain.ProjectReadiness)
		}).Return(nil).Once()
	s.mockCache.On("SetSummary", s.ctx, mock.Anything).Return(nil).Once()
	s.mockPublisher.On("Publish", s.ctx, mock.Anything).Return(nil).Once()
	s.expectSlots(0, 0)

	_, err := s.service.Recalculate(s.ctx, s.projectID, s.admin)

	s.Require().NoError(err)
	s.True(persisted.TeamFinalized.Finalized)
	s.Equal(&finalizedAt, persisted.TeamFinalized.FinalizedAt)
	s.Equal(domain.PresenceFinalized, persisted.TeamStatus)
	// The un-finalized areas still derive from counts.
	s.Equal(domain.PresencePartial, persisted.TalentStatus)
}

// --- FinalizeArea ---

func (s *ReadinessServiceTestSuite) TestFinalizeArea_StampsMarker() {
	summary := s.populatedSummary()
	s.mockReadinessRepo.On("FindReadinessByProjectID", s.ctx, s.projectID).Return(summary, nil).Once()
	s.mockReadinessRepo.On("SetAreaFinalized", s.ctx, s.projectID, domain.AreaLocations, true, s.admin.ID, mock.Anything).Return(nil).Once()
	s.mockCache.On("InvalidateSummary", s.ctx, s.projectID).Return(nil).Once()
	s.mockPublisher.On("Publish", s.ctx, mock.MatchedBy(func(e portsrepo.Event) bool {
		return e.Name == "readiness.area_finalized"
	})).Return(nil).Once()

	resp, err := s.service.FinalizeArea(s.ctx, s.projectID, domain.AreaLocations, s.admin)

	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal("locations", resp.Area)
	s.Equal(s.admin.ID, resp.FinalizedBy)
	s.mockReadinessRepo.AssertExpectations(s.T())
}

func (s *ReadinessServiceTestSuite) TestFinalizeArea_BlocksDefaultOnlyConfig() {
	summary := s.populatedSummary()
	summary.CustomLocationCount = 0
	summary.LocationsStatus = domain.ConfigDefaultOnly
	s.mockReadinessRepo.On("FindReadinessByProjectID", s.ctx, s.projectID).Return(summary, nil).Once()

	resp, err := s.service.FinalizeArea(s.ctx, s.projectID, domain.AreaLocations, s.admin)

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrCannotFinalize)
	s.mockReadinessRepo.AssertNotCalled(s.T(), "SetAreaFinalized",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReadinessServiceTestSuite) TestFinalizeArea_BlocksEmptyTeam() {
	summary := s.populatedSummary()
	summary.TotalStaffAssigned = 0
	summary.TeamStatus = domain.PresenceNone
	s.mockReadinessRepo.On("FindReadinessByProjectID", s.ctx, s.projectID).Return(summary, nil).Once()

	resp, err := s.service.FinalizeArea(s.ctx, s.projectID, domain.AreaTeam, s.admin)

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrCannotFinalize)
}

func (s *ReadinessServiceTestSuite) TestFinalizeArea_RequiresElevatedRole() {
	escort := domain.Actor{ID: uuid.NewString(), Role: domain.RoleTalentEscort}

	resp, err := s.service.FinalizeArea(s.ctx, s.projectID, domain.AreaTeam, escort)

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockReadinessRepo.AssertNotCalled(s.T(), "FindReadinessByProjectID", mock.Anything, mock.Anything)
}

func (s *ReadinessServiceTestSuite) TestFinalizeArea_RejectsUnknownArea() {
	resp, err := s.service.FinalizeArea(s.ctx, s.projectID, domain.ReadinessArea("budget"), s.admin)

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- UnfinalizeArea ---

func (s *ReadinessServiceTestSuite) TestUnfinalizeArea_AdminClearsMarker() {
	summary := s.populatedSummary()
	s.mockReadinessRepo.On("FindReadinessByProjectID", s.ctx, s.projectID).Return(summary, nil).Once()
	s.mockReadinessRepo.On("SetAreaFinalized", s.ctx, s.projectID, domain.AreaTalent, false, s.admin.ID, mock.Anything).Return(nil).Once()
	s.mockCache.On("InvalidateSummary", s.ctx, s.projectID).Return(nil).Once()
	s.mockPublisher.On("Publish", s.ctx, mock.MatchedBy(func(e portsrepo.Event) bool {
		return e.Name == "readiness.area_unfinalized"
	})).Return(nil).Once()

	err := s.service.UnfinalizeArea(s.ctx, s.projectID, domain.AreaTalent, s.admin)

	s.NoError(err)
	s.mockReadinessRepo.AssertExpectations(s.T())
}

func (s *ReadinessServiceTestSuite) TestUnfinalizeArea_InHouseCannotClear() {
	inHouse := domain.Actor{ID: uuid.NewString(), Role: domain.RoleInHouse}

	err := s.service.UnfinalizeArea(s.ctx, s.projectID, domain.AreaTalent, inHouse)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockReadinessRepo.AssertNotCalled(s.T(), "SetAreaFinalized",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
