package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velvetrow/salon-booking/internal/models"
)

func userAppointment(userID int64, date string) models.Appointment {
	uid := models.FlexID(userID)
	return models.Appointment{UserID: &uid, Date: date, Time: "10:00"}
}

func TestUpcomingFiltersByDateAndUser(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	repo := &fakeRepo{
		appointments: []models.Appointment{
			userAppointment(1, "2025-01-09"), // past
			userAppointment(1, "2025-01-10"), // today counts
			userAppointment(1, "2025-02-01"),
			userAppointment(2, "2025-02-01"), // other user
		},
	}
	uc := NewUpcoming(repo)

	userID := int64(1)
	got := uc.Execute(context.Background(), &userID, now)

	assert.Len(t, got, 2)
	for _, ap := range got {
		assert.Equal(t, int64(1), ap.UserID.Int64())
		assert.GreaterOrEqual(t, ap.Date, "2025-01-10")
	}
}

func TestUpcomingAllUsers(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	repo := &fakeRepo{
		appointments: []models.Appointment{
			userAppointment(1, "2025-01-09"),
			userAppointment(1, "2025-01-11"),
			userAppointment(2, "2025-01-12"),
		},
	}
	uc := NewUpcoming(repo)

	got := uc.Execute(context.Background(), nil, now)

	assert.Len(t, got, 2)
}
