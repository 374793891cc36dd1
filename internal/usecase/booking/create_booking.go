package booking

import (
	"context"

	"github.com/velvetrow/salon-booking/internal/httperr"
	"github.com/velvetrow/salon-booking/internal/models"

	domain "github.com/velvetrow/salon-booking/internal/domain/booking"
)

type CreateBookingInput struct {
	UserID *int64

	CustomerName  string
	CustomerPhone string

	ServiceID int64
	StylistID int64

	Date string
	Time string

	SpecialRequests string
}

type CreateBooking struct {
	repo         domain.Repository
	availability *GetAvailability
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{
		repo:         repo,
		availability: NewGetAvailability(repo),
	}
}

// Execute re-checks availability and inserts the appointment. The check and
// the insert are two independent store round trips; two concurrent bookings
// for the same slot can both pass the check. The store exposes no
// conditional write through this gateway, so the window is accepted.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	slots := uc.availability.Execute(ctx, domain.AvailabilityInput{
		Date:      in.Date,
		StylistID: in.StylistID,
		ServiceID: in.ServiceID,
	})

	available := false
	for _, s := range slots {
		if s == in.Time {
			available = true
			break
		}
	}
	if !available {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	ap := &models.Appointment{
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		ServiceID:       models.FlexID(in.ServiceID),
		Date:            in.Date,
		Time:            in.Time,
		Status:          models.StatusScheduled,
		SpecialRequests: in.SpecialRequests,
	}
	stylistID := models.FlexID(in.StylistID)
	ap.StylistID = &stylistID
	if in.UserID != nil {
		userID := models.FlexID(*in.UserID)
		ap.UserID = &userID
	}

	return uc.repo.CreateAppointment(ctx, ap)
}
