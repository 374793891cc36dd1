package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetrow/salon-booking/internal/httperr"
	"github.com/velvetrow/salon-booking/internal/models"
)

func TestCreateBookingHappyPath(t *testing.T) {
	repo := &fakeRepo{
		services: map[int64]*models.Service{1: serviceWithDuration(30)},
	}
	uc := NewCreateBooking(repo)

	userID := int64(7)
	ap, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:        &userID,
		CustomerName:  "Priya",
		CustomerPhone: "+919876543210",
		ServiceID:     1,
		StylistID:     2,
		Date:          monday,
		Time:          "10:00",
	})

	require.NoError(t, err)
	require.NotNil(t, ap)
	assert.Equal(t, models.StatusScheduled, ap.Status)
	assert.Equal(t, "10:00", ap.Time)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	require.NotNil(t, created.UserID)
	assert.Equal(t, int64(7), created.UserID.Int64())
	require.NotNil(t, created.StylistID)
	assert.Equal(t, int64(2), created.StylistID.Int64())
}

func TestCreateBookingSlotTaken(t *testing.T) {
	repo := &fakeRepo{
		services: map[int64]*models.Service{1: serviceWithDuration(30)},
		appointments: []models.Appointment{
			bookedSlot(monday, "10:00", 2, models.StatusScheduled),
		},
	}
	uc := NewCreateBooking(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Priya",
		CustomerPhone: "+919876543210",
		ServiceID:     1,
		StylistID:     2,
		Date:          monday,
		Time:          "10:00",
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
	assert.Empty(t, repo.created)
}

func TestCreateBookingInvalidDateRejected(t *testing.T) {
	repo := &fakeRepo{
		services: map[int64]*models.Service{1: serviceWithDuration(30)},
	}
	uc := NewCreateBooking(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Priya",
		CustomerPhone: "+919876543210",
		ServiceID:     1,
		StylistID:     2,
		Date:          "not-a-date",
		Time:          "10:00",
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateBookingAnonymousHasNoUser(t *testing.T) {
	repo := &fakeRepo{
		services: map[int64]*models.Service{1: serviceWithDuration(30)},
	}
	uc := NewCreateBooking(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Walk In",
		CustomerPhone: "9876543210",
		ServiceID:     1,
		StylistID:     2,
		Date:          monday,
		Time:          "09:00",
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Nil(t, repo.created[0].UserID)
}
