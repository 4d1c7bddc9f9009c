package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

// MockTripService is a mock implementation of TripServiceInterface
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) SaveTrip(ctx context.Context, userId string, req request_models.SaveTripRequest) (*response_models.TripResponse, error) {
	args := m.Called(ctx, userId, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.TripResponse), args.Error(1)
}

func (m *MockTripService) ListTrips(ctx context.Context, userId string) ([]response_models.TripResponse, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response_models.TripResponse), args.Error(1)
}

func (m *MockTripService) GetTrip(ctx context.Context, userId string, tripId string) (*response_models.TripResponse, error) {
	args := m.Called(ctx, userId, tripId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.TripResponse), args.Error(1)
}

func (m *MockTripService) DeleteTrip(ctx context.Context, userId string, tripId string) error {
	args := m.Called(ctx, userId, tripId)
	return args.Error(0)
}

var _ services.TripServiceInterface = (*MockTripService)(nil)

const testUserId = "2d4a0b3e-9f1c-4a6b-8d5e-7c3f2a1b0e9d"

func newTripRouter(svc services.TripServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUserId)
		c.Next()
	})

	controller := NewTripController(svc)
	r.POST("/api/itinerary/save", controller.Save)
	r.GET("/api/itinerary/saved", controller.List)
	r.GET("/api/itinerary/saved/:id", controller.Get)
	r.DELETE("/api/itinerary/saved/:id", controller.Delete)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestTripController_Save(t *testing.T) {
	svc := new(MockTripService)
	svc.On("SaveTrip", mock.Anything, testUserId, mock.MatchedBy(func(req request_models.SaveTripRequest) bool {
		return req.Destination == "Lisbon" && req.Duration == 4
	})).Return(&response_models.TripResponse{
		ID:          uuid.NewString(),
		Destination: "Lisbon",
		Duration:    4,
	}, nil)

	rr := doRequest(newTripRouter(svc), http.MethodPost, "/api/itinerary/save",
		`{"destination": "Lisbon", "duration": 4, "itineraryData": {"destination": "Lisbon", "days": []}}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestTripController_Save_MissingItineraryData(t *testing.T) {
	svc := new(MockTripService)

	rr := doRequest(newTripRouter(svc), http.MethodPost, "/api/itinerary/save",
		`{"destination": "Lisbon", "duration": 4}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "SaveTrip", mock.Anything, mock.Anything, mock.Anything)
}

func TestTripController_List(t *testing.T) {
	svc := new(MockTripService)
	svc.On("ListTrips", mock.Anything, testUserId).Return([]response_models.TripResponse{
		{ID: uuid.NewString(), Destination: "Lisbon", Duration: 4},
		{ID: uuid.NewString(), Destination: "Kyoto", Duration: 7},
	}, nil)

	rr := doRequest(newTripRouter(svc), http.MethodGet, "/api/itinerary/saved", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	trips, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, trips, 2)
}

func TestTripController_Get_ForeignTripNotFound(t *testing.T) {
	tripId := uuid.NewString()
	svc := new(MockTripService)
	svc.On("GetTrip", mock.Anything, testUserId, tripId).Return(nil, utils.ErrTripNotFound)

	rr := doRequest(newTripRouter(svc), http.MethodGet, "/api/itinerary/saved/"+tripId, "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Itinerary not found")
}

func TestTripController_Get_MalformedId(t *testing.T) {
	svc := new(MockTripService)
	svc.On("GetTrip", mock.Anything, testUserId, "not-a-uuid").Return(nil, utils.ErrInvalidInput)

	rr := doRequest(newTripRouter(svc), http.MethodGet, "/api/itinerary/saved/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTripController_Delete(t *testing.T) {
	tripId := uuid.NewString()
	svc := new(MockTripService)
	svc.On("DeleteTrip", mock.Anything, testUserId, tripId).Return(nil)

	rr := doRequest(newTripRouter(svc), http.MethodDelete, "/api/itinerary/saved/"+tripId, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":true`)
}

func TestTripController_Delete_AlreadyGone(t *testing.T) {
	tripId := uuid.NewString()
	svc := new(MockTripService)
	svc.On("DeleteTrip", mock.Anything, testUserId, tripId).Return(utils.ErrTripNotFound)

	rr := doRequest(newTripRouter(svc), http.MethodDelete, "/api/itinerary/saved/"+tripId, "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
