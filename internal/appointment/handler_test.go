package appointment_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/murtaDuElama/FitnessCenter/internal/api"
	"github.com/murtaDuElama/FitnessCenter/internal/appointment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) GetAvailableSlots(ctx context.Context, trainerID int, date time.Time) ([]string, error) {
	args := m.Called(ctx, trainerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, userID int, memberName string, req appointment.CreateAppointmentRequest) (*appointment.Appointment, error) {
	args := m.Called(ctx, userID, memberName, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.Appointment), args.Error(1)
}

func (m *MockService) GetUserAppointments(ctx context.Context, userID int) ([]appointment.AppointmentWithDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appointment.AppointmentWithDetails), args.Error(1)
}

func (m *MockService) Cancel(ctx context.Context, userID, appointmentID int) error {
	return m.Called(ctx, userID, appointmentID).Error(0)
}

func (m *MockService) List(ctx context.Context, filter appointment.AdminFilter) ([]appointment.AppointmentWithDetails, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appointment.AppointmentWithDetails), args.Error(1)
}

func (m *MockService) Approve(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) Unapprove(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func setupRouter(service appointment.Service, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	if authed {
		router.Use(func(c *gin.Context) {
			c.Set("user_id", 1)
			c.Set("user_name", "Ada")
		})
	}

	h := appointment.NewHandler(service)
	router.GET("/trainers/:trainerID/slots", h.GetSlots)
	router.POST("/appointments", h.Create)
	router.GET("/appointments", h.ListMine)
	router.DELETE("/appointments/:appointmentID", h.Cancel)
	router.GET("/admin/appointments", h.List)
	router.POST("/admin/appointments/:appointmentID/approve", h.Approve)

	return router
}

func TestGetSlots_PastDateClampedWithWarning(t *testing.T) {
	service := new(MockService)
	service.On("GetAvailableSlots", mock.Anything, 7, mock.Anything).Return([]string{"09:00", "10:00"}, nil)

	router := setupRouter(service, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/trainers/7/slots?date=2020-01-01", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.Date)
	assert.NotEmpty(t, resp.Warning)
	assert.Equal(t, []string{"09:00", "10:00"}, resp.Slots)
}

func TestGetSlots_InvalidDate(t *testing.T) {
	router := setupRouter(new(MockService), true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/trainers/7/slots?date=not-a-date", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate_Unauthenticated(t *testing.T) {
	router := setupRouter(new(MockService), false)

	body := bytes.NewBufferString(`{"service_id":1,"trainer_id":7,"date":"2026-09-10","time":"10:00"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/appointments", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreate_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"blank time", appointment.ErrInvalidInput, http.StatusBadRequest},
		{"past date", appointment.ErrPastDate, http.StatusBadRequest},
		{"trainer conflict", appointment.ErrTrainerSlotTaken, http.StatusConflict},
		{"member conflict", appointment.ErrMemberSlotTaken, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			service.On("Create", mock.Anything, 1, "Ada", mock.Anything).Return(nil, tt.serviceErr)

			router := setupRouter(service, true)

			body := bytes.NewBufferString(`{"service_id":1,"trainer_id":7,"date":"2026-09-10","time":"10:00"}`)
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/appointments", body)
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreate_Success(t *testing.T) {
	service := new(MockService)
	service.On("Create", mock.Anything, 1, "Ada", mock.Anything).Return(&appointment.Appointment{
		ID: 1, UserID: 1, ServiceID: 1, TrainerID: 7, Time: "10:00",
	}, nil)

	router := setupRouter(service, true)

	body := bytes.NewBufferString(`{"service_id":1,"trainer_id":7,"date":"2026-09-10","time":"10:00"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/appointments", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var appt appointment.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appt))
	assert.Equal(t, "10:00", appt.Time)
}

func TestCancel_NotOwner(t *testing.T) {
	service := new(MockService)
	service.On("Cancel", mock.Anything, 1, 10).Return(appointment.ErrNotOwner)

	router := setupRouter(service, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/appointments/10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminList_FilterParsing(t *testing.T) {
	service := new(MockService)
	service.On("List", mock.Anything, mock.MatchedBy(func(f appointment.AdminFilter) bool {
		return f.From != nil && f.Approved != nil && *f.Approved && f.TrainerID != nil && *f.TrainerID == 7
	})).Return([]appointment.AppointmentWithDetails{}, nil)

	router := setupRouter(service, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/appointments?from=2026-09-01&approved=true&trainer_id=7", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestAdminList_BadFilter(t *testing.T) {
	router := setupRouter(new(MockService), true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/appointments?approved=maybe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApprove_NotFound(t *testing.T) {
	service := new(MockService)
	service.On("Approve", mock.Anything, 99).Return(appointment.ErrAppointmentNotFound)

	router := setupRouter(service, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/appointments/99/approve", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
