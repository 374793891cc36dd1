package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetrow/salon-booking/internal/models"
	"github.com/velvetrow/salon-booking/internal/supabase"
)

func storeStub(t *testing.T, responses map[string]string) (*supabase.Client, *[]*http.Request) {
	t.Helper()

	var seen []*http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clone := r.Clone(r.Context())
		seen = append(seen, clone)

		if body, ok := responses[r.URL.Path]; ok {
			w.Write([]byte(body))
			return
		}
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	return supabase.NewClient(srv.URL, "anon", "secret"), &seen
}

func TestListAppointmentsByDateSkipsMalformedRows(t *testing.T) {
	client, seen := storeStub(t, map[string]string{
		"/rest/v1/appointments": `[
			{"id": 1, "date": "2025-01-06", "time": "10:00", "stylist_id": 2, "status": "scheduled"},
			{"id": "garbage", "date": "2025-01-06", "time": "10:30"},
			{"id": 3, "date": "2025-01-06", "time": "11:00", "stylist_id": "2", "status": "canceled"}
		]`,
	})
	repo := NewBookingSupabaseRepository(client)

	rows, err := repo.ListAppointmentsByDate(context.Background(), "2025-01-06")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ID.Int64())
	assert.Equal(t, models.StatusCanceled, rows[1].Status)

	require.Len(t, *seen, 1)
	assert.Contains(t, (*seen)[0].URL.RawQuery, "date=eq.2025-01-06")
}

func TestGetBusinessHoursAbsentRow(t *testing.T) {
	client, seen := storeStub(t, nil)
	repo := NewBookingSupabaseRepository(client)

	hours, err := repo.GetBusinessHours(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, hours)

	require.Len(t, *seen, 1)
	assert.Contains(t, (*seen)[0].URL.RawQuery, "day_of_week=eq.2")
}

func TestCreateAppointmentUsesRepresentation(t *testing.T) {
	client, _ := storeStub(t, map[string]string{
		"/rest/v1/appointments": `[{"id": 42, "date": "2025-01-06", "time": "10:00", "status": "scheduled"}]`,
	})
	repo := NewBookingSupabaseRepository(client)

	created, err := repo.CreateAppointment(context.Background(), &models.Appointment{
		CustomerName: "Priya",
		ServiceID:    1,
		Date:         "2025-01-06",
		Time:         "10:00",
		Status:       models.StatusScheduled,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID.Int64())
}

func TestCreateAppointmentFallsBackToInputRow(t *testing.T) {
	// A store configured without return=representation support answers with
	// an empty body.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	repo := NewBookingSupabaseRepository(supabase.NewClient(srv.URL, "anon", "secret"))

	in := &models.Appointment{CustomerName: "Priya", Date: "2025-01-06", Time: "10:00"}
	created, err := repo.CreateAppointment(context.Background(), in)

	require.NoError(t, err)
	assert.Same(t, in, created)
}

func TestUpdateAppointmentStatusUsesElevatedKey(t *testing.T) {
	client, seen := storeStub(t, nil)
	repo := NewBookingSupabaseRepository(client)

	err := repo.UpdateAppointmentStatus(context.Background(), 9, models.StatusCompleted)
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "id=eq.9", req.URL.RawQuery)
	assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
}

func TestListRecentAppointmentsWindow(t *testing.T) {
	client, seen := storeStub(t, nil)
	repo := NewBookingSupabaseRepository(client)

	_, err := repo.ListRecentAppointments(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Contains(t, req.URL.RawQuery, "order=created_at.desc")
	assert.Equal(t, "0-4", req.Header.Get("Range"))
}
