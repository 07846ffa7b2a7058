package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/apperrors"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
	portssvc "github.com/nicopkrauss/Talenttracker2-sub019/internal/core/ports/services"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/dto"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/handlers"
	"github.com/nicopkrauss/Talenttracker2-sub019/internal/middleware"
)

// --- Mock TimecardService ---
type MockTimecardService struct {
	mock.Mock
}

var _ portssvc.TimecardSvcFacade = (*MockTimecardService)(nil)

func (m *MockTimecardService) GetTimecard(ctx context.Context, timecardID string, actor domain.Actor) (*dto.TimecardResponse, error) {
	args := m.Called(ctx, timecardID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TimecardResponse), args.Error(1)
}

func (m *MockTimecardService) OpenTimecard(ctx context.Context, req dto.OpenTimecardRequest, actor domain.Actor) (*dto.TimecardResponse, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TimecardResponse), args.Error(1)
}

func (m *MockTimecardService) EditTimecard(ctx context.Context, timecardID string, req dto.EditTimecardRequest, actor domain.Actor) (*dto.EditTimecardResponse, error) {
	args := m.Called(ctx, timecardID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EditTimecardResponse), args.Error(1)
}

// --- Mock AuditLogService ---
type MockAuditLogService struct {
	mock.Mock
}

var _ portssvc.AuditLogSvcFacade = (*MockAuditLogService)(nil)

func (m *MockAuditLogService) RecordChanges(ctx context.Context, timecardID string, diffs []domain.FieldDiff, actorID string, actionType domain.AuditActionType) {
	m.Called(ctx, timecardID, diffs, actorID, actionType)
}

func (m *MockAuditLogService) ListChanges(ctx context.Context, timecardID string, actor domain.Actor, params dto.ListAuditLogParams) (*dto.ListAuditLogResponse, error) {
	args := m.Called(ctx, timecardID, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListAuditLogResponse), args.Error(1)
}

// --- Test Suite ---
type TimecardHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockTimecardService *MockTimecardService
	mockAuditLogService *MockAuditLogService
	jwtSecret           string
}

func (suite *TimecardHandlerTestSuite) generateTestToken(userID string, role domain.StaffRole) string {
	claims := middleware.StaffClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TimecardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTimecardService = new(MockTimecardService)
	suite.mockAuditLogService = new(MockAuditLogService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTimecardRoutes(v1, suite.mockTimecardService, suite.mockAuditLogService)
}

func TestTimecardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TimecardHandlerTestSuite))
}

// editRequest performs an authenticated PATCH and returns the recorder.
func (suite *TimecardHandlerTestSuite) editRequest(timecardID string, body string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/timecards/"+timecardID, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TimecardHandlerTestSuite) errorCode(w *httptest.ResponseRecorder) string {
	var payload map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &payload))
	code, _ := payload["code"].(string)
	return code
}

func (suite *TimecardHandlerTestSuite) TestEditTimecard_Success() {
	timecardID := uuid.NewString()
	userID := uuid.NewString()
	token := suite.generateTestToken(userID, domain.RoleTalentEscort)

	expected := &dto.EditTimecardResponse{
		Success: true,
		Message: "Timecard updated successfully",
		Changes: []dto.ChangedField{{Field: "check_in"}},
	}
	suite.mockTimecardService.On("EditTimecard", mock.Anything, timecardID, mock.Anything,
		domain.Actor{ID: userID, Role: domain.RoleTalentEscort}).Return(expected, nil).Once()

	w := suite.editRequest(timecardID, `{"dailyUpdates":{"day_0":{"check_in_time":"09:00"}}}`, token)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EditTimecardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.mockTimecardService.AssertExpectations(suite.T())
}

func (suite *TimecardHandlerTestSuite) TestEditTimecard_MissingTokenIsUnauthorized() {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/timecards/"+uuid.NewString(), bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("UNAUTHORIZED", suite.errorCode(w))
	suite.mockTimecardService.AssertNotCalled(suite.T(), "EditTimecard", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimecardHandlerTestSuite) TestEditTimecard_ErrorCodeMapping() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleAdmin)

	testCases := []struct {
		name         string
		serviceErr   error
		expectedCode int
		expectedBody string
	}{
		{"no changes", apperrors.ErrNoChanges, http.StatusBadRequest, "NO_CHANGES_DETECTED"},
		{"validation", apperrors.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden, "INSUFFICIENT_PERMISSIONS"},
		{"not found", apperrors.ErrNotFound, http.StatusNotFound, "TIMECARD_NOT_FOUND"},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, "CONFLICT"},
		{"internal", apperrors.ErrInternal, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			timecardID := uuid.NewString()
			suite.mockTimecardService.On("EditTimecard", mock.Anything, timecardID, mock.Anything, mock.Anything).
				Return(nil, tc.serviceErr).Once()

			w := suite.editRequest(timecardID, `{"updates":{"status":"submitted"}}`, token)

			suite.Equal(tc.expectedCode, w.Code)
			suite.Equal(tc.expectedBody, suite.errorCode(w))
		})
	}
}

func (suite *TimecardHandlerTestSuite) TestEditTimecard_MalformedBodyIsValidationError() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleAdmin)

	w := suite.editRequest(uuid.NewString(), `{"dailyUpdates":`, token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", suite.errorCode(w))
}

func (suite *TimecardHandlerTestSuite) TestEditTimecard_BindingRejectsBadTimeOfDay() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleAdmin)

	w := suite.editRequest(uuid.NewString(), `{"dailyUpdates":{"day_0":{"check_in_time":"25:99"}}}`, token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", suite.errorCode(w))
	suite.mockTimecardService.AssertNotCalled(suite.T(), "EditTimecard", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimecardHandlerTestSuite) TestListAuditLog_Success() {
	timecardID := uuid.NewString()
	userID := uuid.NewString()
	token := suite.generateTestToken(userID, domain.RoleSupervisor)

	expected := &dto.ListAuditLogResponse{
		Entries: []dto.AuditLogEntryResponse{{
			AuditID:    uuid.NewString(),
			ChangeID:   uuid.NewString(),
			ActionType: string(domain.ActionUserEdit),
			ChangedAt:  time.Now().UTC(),
		}},
	}
	suite.mockAuditLogService.On("ListChanges", mock.Anything, timecardID,
		domain.Actor{ID: userID, Role: domain.RoleSupervisor},
		dto.ListAuditLogParams{Limit: 25}).Return(expected, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/timecards/"+timecardID+"/audit-log?limit=25", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAuditLogResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
	suite.mockAuditLogService.AssertExpectations(suite.T())
}

func (suite *TimecardHandlerTestSuite) TestOpenTimecard_Created() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID, domain.RoleTalentEscort)

	expected := &dto.TimecardResponse{TimecardID: uuid.NewString(), Status: string(domain.TimecardDraft)}
	suite.mockTimecardService.On("OpenTimecard", mock.Anything, mock.Anything,
		domain.Actor{ID: userID, Role: domain.RoleTalentEscort}).Return(expected, nil).Once()

	body := `{"userID":"` + userID + `","projectID":"` + uuid.NewString() +
		`","periodStartDate":"2026-03-02T00:00:00Z","periodEndDate":"2026-03-08T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/timecards", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockTimecardService.AssertExpectations(suite.T())
}
