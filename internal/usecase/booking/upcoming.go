package booking

import (
	"context"
	"time"

	"github.com/velvetrow/salon-booking/internal/models"

	domain "github.com/velvetrow/salon-booking/internal/domain/booking"
)

type Upcoming struct {
	repo domain.Repository
}

func NewUpcoming(repo domain.Repository) *Upcoming {
	return &Upcoming{repo: repo}
}

// Execute returns the appointments dated today or later, for one user or for
// everyone when userID is nil. Dates are zero-padded ISO strings, so the
// lexicographic comparison is a correct date comparison.
func (uc *Upcoming) Execute(ctx context.Context, userID *int64, now time.Time) []models.Appointment {
	today := now.Format("2006-01-02")

	var (
		appointments []models.Appointment
		err          error
	)
	if userID != nil {
		appointments, err = uc.repo.ListAppointmentsByUser(ctx, *userID)
	} else {
		appointments, err = uc.repo.ListAllAppointments(ctx)
	}
	if err != nil {
		return nil
	}

	upcoming := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if ap.Date >= today {
			upcoming = append(upcoming, ap)
		}
	}
	return upcoming
}
