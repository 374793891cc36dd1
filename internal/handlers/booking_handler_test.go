package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/velvetrow/salon-booking/internal/models"

	domain "github.com/velvetrow/salon-booking/internal/domain/booking"
	usecase "github.com/velvetrow/salon-booking/internal/usecase/booking"
)

type slotRepoStub struct {
	service      *models.Service
	appointments []models.Appointment
}

func (s *slotRepoStub) GetBusinessHours(ctx context.Context, weekday int) (*models.BusinessHours, error) {
	return &models.BusinessHours{OpeningTime: "10:00:00", ClosingTime: "12:00:00"}, nil
}

func (s *slotRepoStub) GetService(ctx context.Context, serviceID int64) (*models.Service, error) {
	return s.service, nil
}

func (s *slotRepoStub) ListAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return s.appointments, nil
}

func (s *slotRepoStub) ListAppointmentsByUser(ctx context.Context, userID int64) ([]models.Appointment, error) {
	return nil, nil
}

func (s *slotRepoStub) ListAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	return nil, nil
}

func (s *slotRepoStub) ListAppointmentsBefore(ctx context.Context, date string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *slotRepoStub) CreateAppointment(ctx context.Context, ap *models.Appointment) (*models.Appointment, error) {
	return ap, nil
}

func (s *slotRepoStub) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	return nil
}

var _ domain.Repository = (*slotRepoStub)(nil)

func timeSlotsRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewBookingHandler(nil, usecase.NewGetAvailability(repo), nil, zap.NewNop())
	r := gin.New()
	r.POST("/api/time-slots", h.TimeSlots)
	return r
}

func TestTimeSlotsEndpoint(t *testing.T) {
	duration := models.FlexID(30)
	sid := models.FlexID(2)
	repo := &slotRepoStub{
		service: &models.Service{ID: 1, Duration: &duration},
		appointments: []models.Appointment{
			{Date: "2025-01-06", Time: "10:30", StylistID: &sid, Status: models.StatusScheduled},
		},
	}
	router := timeSlotsRouter(repo)

	body := `{"date": "2025-01-06", "stylist_id": 2, "service_id": 1}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/time-slots", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"time_slots": ["10:00", "11:00", "11:30"]}`, w.Body.String())
}

func TestTimeSlotsRejectsIncompleteRequest(t *testing.T) {
	router := timeSlotsRouter(&slotRepoStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/time-slots", strings.NewReader(`{"date": "2025-01-06"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}

func TestTimeSlotsInvalidDateReturnsEmptyList(t *testing.T) {
	duration := models.FlexID(30)
	router := timeSlotsRouter(&slotRepoStub{service: &models.Service{ID: 1, Duration: &duration}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/time-slots",
		strings.NewReader(`{"date": "06/01/2025", "stylist_id": 2, "service_id": 1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"time_slots": []}`, w.Body.String())
}
