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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/caterops/staffdesk/internal/apperrors"
	portssvc "github.com/caterops/staffdesk/internal/core/ports/services"
	"github.com/caterops/staffdesk/internal/dto"
	"github.com/caterops/staffdesk/internal/handlers"
	"github.com/caterops/staffdesk/internal/models"
	"github.com/caterops/staffdesk/internal/platform/config"
)

// --- Mock EventService ---
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorUserID string) (*models.Event, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}
func (m *MockEventService) GetEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}
func (m *MockEventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}
func (m *MockEventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, updaterUserID string) (*models.Event, error) {
	args := m.Called(ctx, eventID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}
func (m *MockEventService) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

var _ portssvc.EventSvcFacade = (*MockEventService)(nil)

// --- Test Suite ---
type EventHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockEventService *MockEventService
	jwtSecret        string
}

func (suite *EventHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "staffdesk-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockEventService = new(MockEventService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	services := &portssvc.ServiceContainer{Event: suite.mockEventService}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *EventHandlerTestSuite) doRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EventHandlerTestSuite) TestListEventsReturnsEnvelope() {
	events := []models.Event{
		{EventID: "e1", Title: "Gala", Status: "Upcoming", Slots: []models.EventSlot{{Name: "A", Total: 5, Booked: 3}}},
	}
	suite.mockEventService.On("ListEvents", mock.Anything).Return(events, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/events", nil, suite.generateTestToken("user-admin"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEventsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Events, 1)
	suite.Equal("e1", resp.Events[0].ID)
	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestSingularRouteFamilyAlsoServed() {
	suite.mockEventService.On("ListEvents", mock.Anything).Return([]models.Event{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/event", nil, suite.generateTestToken("user-admin"))

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *EventHandlerTestSuite) TestListEventsRequiresToken() {
	w := suite.doRequest(http.MethodGet, "/api/events", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *EventHandlerTestSuite) TestCreateEvent() {
	created := &models.Event{EventID: "e9", Title: "New Event", Status: "Upcoming"}
	suite.mockEventService.On("CreateEvent", mock.Anything, mock.AnythingOfType("dto.CreateEventRequest"), "user-admin").
		Return(created, nil).Once()

	body := dto.CreateEventRequest{Title: "New Event", Date: "2025-11-15"}
	w := suite.doRequest(http.MethodPost, "/api/events/create", body, suite.generateTestToken("user-admin"))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EventResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("e9", resp.ID)
	suite.mockEventService.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestUpdateMissingEventReturns404() {
	suite.mockEventService.On("UpdateEvent", mock.Anything, "missing", mock.Anything, "user-admin").
		Return(nil, apperrors.ErrNotFound).Once()

	body := dto.UpdateEventRequest{Title: "Gala", Date: "2025-11-15"}
	w := suite.doRequest(http.MethodPut, "/api/events/update/missing", body, suite.generateTestToken("user-admin"))

	suite.Equal(http.StatusNotFound, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Event not found", resp["error"])
}

func (suite *EventHandlerTestSuite) TestDeleteEvent() {
	suite.mockEventService.On("DeleteEvent", mock.Anything, "e1").Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/event/delete/e1", nil, suite.generateTestToken("user-admin"))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockEventService.AssertExpectations(suite.T())
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}
