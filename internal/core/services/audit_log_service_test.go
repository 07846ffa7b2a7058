package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portssvc "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/services"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/services"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/dto"
)

type AuditLogServiceTestSuite struct {
	suite.Suite
	mockAuditRepo    *MockAuditLogRepository
	mockTimecardRepo *MockTimecardRepository
	mockProjectSvc   *MockProjectService
	service          portssvc.AuditLogSvcFacade
	ctx              context.Context
}

func (s *AuditLogServiceTestSuite) SetupTest() {
	s.mockAuditRepo = new(MockAuditLogRepository)
	s.mockTimecardRepo = new(MockTimecardRepository)
	s.mockProjectSvc = new(MockProjectService)
	s.service = services.NewAuditLogService(s.mockAuditRepo, s.mockTimecardRepo, s.mockProjectSvc)
	s.ctx = context.Background()
}

func TestAuditLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogServiceTestSuite))
}

func (s *AuditLogServiceTestSuite) TestRecordChanges_SkipsWhenNothingChanged() {
	same := ptr("09:00")
	diffs := []domain.FieldDiff{
		{FieldName: "check_in_time", OldValue: same, NewValue: ptr("09:00")},
		{FieldName: "check_out_time", OldValue: nil, NewValue: nil},
	}

	s.service.RecordChanges(s.ctx, uuid.NewString(), diffs, uuid.NewString(), domain.ActionUserEdit)

	s.mockAuditRepo.AssertNotCalled(s.T(), "InsertEntries", mock.Anything, mock.Anything)
}

func (s *AuditLogServiceTestSuite) TestRecordChanges_GroupsRowsUnderOneChangeID() {
	timecardID := uuid.NewString()
	actorID := uuid.NewString()
	workDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	diffs := []domain.FieldDiff{
		{FieldName: "check_in_time", OldValue: nil, NewValue: ptr("09:00"), WorkDate: &workDate},
		{FieldName: "check_out_time", OldValue: ptr("17:00"), NewValue: ptr("18:30"), WorkDate: &workDate},
		{FieldName: "total_hours", OldValue: ptr("8"), NewValue: ptr("9.5")},
	}

	var inserted []domain.AuditLogEntry
	s.mockAuditRepo.On("InsertEntries", s.ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).([]domain.AuditLogEntry)
		}).
		Return(nil).Once()

	s.service.RecordChanges(s.ctx, timecardID, diffs, actorID, domain.ActionAdminEdit)

	s.Require().Len(inserted, 3)
	changeID := inserted[0].ChangeID
	changedAt := inserted[0].ChangedAt
	s.NotEmpty(changeID)
	for _, e := range inserted {
		s.Equal(changeID, e.ChangeID)
		s.Equal(changedAt, e.ChangedAt)
		s.Equal(timecardID, e.TimecardID)
		s.Equal(actorID, e.ChangedBy)
		s.Equal(domain.ActionAdminEdit, e.ActionType)
		s.NotEmpty(e.AuditID)
	}
	s.NotEqual(inserted[0].AuditID, inserted[1].AuditID)
	s.mockAuditRepo.AssertExpectations(s.T())
}

func (s *AuditLogServiceTestSuite) TestRecordChanges_CanonicalizesDailyColumnNames() {
	diffs := []domain.FieldDiff{
		{FieldName: "check_in_time", OldValue: nil, NewValue: ptr("09:00")},
		{FieldName: "break_start_time", OldValue: nil, NewValue: ptr("12:00")},
		{FieldName: "break_end_time", OldValue: nil, NewValue: ptr("12:30")},
		{FieldName: "check_out_time", OldValue: nil, NewValue: ptr("17:00")},
		{FieldName: "status", OldValue: ptr("draft"), NewValue: ptr("submitted")},
	}

	var inserted []domain.AuditLogEntry
	s.mockAuditRepo.On("InsertEntries", s.ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).([]domain.AuditLogEntry)
		}).
		Return(nil).Once()

	s.service.RecordChanges(s.ctx, uuid.NewString(), diffs, uuid.NewString(), domain.ActionUserEdit)

	s.Require().Len(inserted, 5)
	got := make([]string, len(inserted))
	for i, e := range inserted {
		s.Require().NotNil(e.FieldName)
		got[i] = *e.FieldName
	}
	s.Equal([]string{"check_in", "break_start", "break_end", "check_out", "status"}, got)
}

func (s *AuditLogServiceTestSuite) TestRecordChanges_SwallowsPersistenceFailure() {
	diffs := []domain.FieldDiff{
		{FieldName: "check_in_time", OldValue: nil, NewValue: ptr("09:00")},
	}
	s.mockAuditRepo.On("InsertEntries", s.ctx, mock.Anything).
		Return(errors.New("connection reset")).Once()

	s.NotPanics(func() {
		s.service.RecordChanges(s.ctx, uuid.NewString(), diffs, uuid.NewString(), domain.ActionUserEdit)
	})
	s.mockAuditRepo.AssertExpectations(s.T())
}

func (s *AuditLogServiceTestSuite) TestListChanges_OwnerCanRead() {
	timecardID := uuid.NewString()
	ownerID := uuid.NewString()
	header := &domain.TimecardHeader{TimecardID: timecardID, UserID: ownerID, ProjectID: uuid.NewString()}
	entry := domain.AuditLogEntry{
		AuditID:    uuid.NewString(),
		TimecardID: timecardID,
		ChangeID:   uuid.NewString(),
		FieldName:  ptr("check_in"),
		NewValue:   ptr("09:00"),
		ChangedBy:  ownerID,
		ChangedAt:  time.Now().UTC(),
		ActionType: domain.ActionUserEdit,
	}

	s.mockTimecardRepo.On("FindTimecardByID", s.ctx, timecardID).Return(header, nil).Once()
	s.mockAuditRepo.On("ListEntriesByTimecardID", s.ctx, timecardID, 50, (*string)(nil)).
		Return([]domain.AuditLogEntry{entry}, nil, nil).Once()

	resp, err := s.service.ListChanges(s.ctx, timecardID, domain.Actor{ID: ownerID, Role: domain.RoleTalentEscort}, dto.ListAuditLogParams{})

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 1)
	s.Equal(entry.AuditID, resp.Entries[0].AuditID)
	s.Nil(resp.NextToken)
	s.mockProjectSvc.AssertNotCalled(s.T(), "AuthorizeApprover", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuditLogServiceTestSuite) TestListChanges_HidesExistenceFromOutsiders() {
	timecardID := uuid.NewString()
	header := &domain.TimecardHeader{TimecardID: timecardID, UserID: uuid.NewString(), ProjectID: uuid.NewString()}
	outsider := domain.Actor{ID: uuid.NewString(), Role: domain.RoleTalentEscort}

	s.mockTimecardRepo.On("FindTimecardByID", s.ctx, timecardID).Return(header, nil).Once()
	s.mockProjectSvc.On("AuthorizeApprover", s.ctx, outsider, header.ProjectID).
		Return(apperrors.ErrForbidden).Once()

	resp, err := s.service.ListChanges(s.ctx, timecardID, outsider, dto.ListAuditLogParams{})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockAuditRepo.AssertNotCalled(s.T(), "ListEntriesByTimecardID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuditLogServiceTestSuite) TestListChanges_ClampsPageSize() {
	timecardID := uuid.NewString()
	ownerID := uuid.NewString()
	header := &domain.TimecardHeader{TimecardID: timecardID, UserID: ownerID, ProjectID: uuid.NewString()}

	s.mockTimecardRepo.On("FindTimecardByID", s.ctx, timecardID).Return(header, nil).Once()
	s.mockAuditRepo.On("ListEntriesByTimecardID", s.ctx, timecardID, 100, (*string)(nil)).
		Return([]domain.AuditLogEntry{}, nil, nil).Once()

	_, err := s.service.ListChanges(s.ctx, timecardID, domain.Actor{ID: ownerID}, dto.ListAuditLogParams{Limit: 5000})

	s.NoError(err)
	s.mockAuditRepo.AssertExpectations(s.T())
}

func (s *AuditLogServiceTestSuite) TestListChanges_PassesTokenThrough() {
	timecardID := uuid.NewString()
	ownerID := uuid.NewString()
	header := &domain.TimecardHeader{TimecardID: timecardID, UserID: ownerID, ProjectID: uuid.NewString()}
	inToken := ptr("b3BhcXVl")

	s.mockTimecardRepo.On("FindTimecardByID", s.ctx, timecardID).Return(header, nil).Once()
	s.mockAuditRepo.On("ListEntriesByTimecardID", s.ctx, timecardID, 10, inToken).
		Return([]domain.AuditLogEntry{}, "next-page", nil).Once()

	resp, err := s.service.ListChanges(s.ctx, timecardID, domain.Actor{ID: ownerID}, dto.ListAuditLogParams{Limit: 10, NextToken: inToken})

	s.Require().NoError(err)
	s.Require().NotNil(resp.NextToken)
	s.Equal("next-page", *resp.NextToken)
}
