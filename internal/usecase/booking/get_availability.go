package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/velvetrow/salon-booking/internal/models"

	domain "github.com/velvetrow/salon-booking/internal/domain/booking"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute computes the bookable "HH:MM" labels for a date, stylist and
// service, in chronological order. Upstream failures and malformed rows
// degrade to "no data": the result is empty or unfiltered, never an error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) []string {

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return []string{}
	}

	// Monday=0 .. Sunday=6
	weekday := (int(date.Weekday()) + 6) % 7

	opening, closing := salonHoursFor(ctx, uc.repo, weekday)
	if opening < 0 {
		return []string{} // closed on this day
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || service == nil {
		return []string{}
	}
	duration, ok := service.DurationMinutes()
	if !ok {
		return []string{}
	}

	// Candidate grid: fixed 30-minute steps, slot valid while the whole
	// service still fits before closing (boundary inclusive).
	var slots []string
	for cur := opening; cur+duration <= closing; cur += domain.SlotStepMinutes {
		slots = append(slots, minutesToLabel(cur))
	}

	taken := takenLabels(ctx, uc.repo, in)
	if len(taken) == 0 {
		if slots == nil {
			return []string{}
		}
		return slots
	}

	remaining := make([]string, 0, len(slots))
	for _, s := range slots {
		if !taken[s] {
			remaining = append(remaining, s)
		}
	}
	return remaining
}

// salonHoursFor returns opening and closing as minutes since midnight, or
// (-1, -1) when the salon is closed that day. A missing row or malformed
// time labels fall back to the default hours.
func salonHoursFor(ctx context.Context, repo domain.Repository, weekday int) (int, int) {
	defOpen, _ := labelToMinutes(domain.DefaultOpening)
	defClose, _ := labelToMinutes(domain.DefaultClosing)

	hours, err := repo.GetBusinessHours(ctx, weekday)
	if err != nil || hours == nil {
		return defOpen, defClose
	}
	if hours.IsClosed.Bool() {
		return -1, -1
	}

	opening, err1 := parseClockLabel(hours.OpeningTime)
	closing, err2 := parseClockLabel(hours.ClosingTime)
	if err1 != nil || err2 != nil {
		return defOpen, defClose
	}
	return opening, closing
}

// takenLabels collects the time labels already booked for the requested
// stylist. The day's appointments are fetched unfiltered and narrowed
// locally; rows without a usable stylist id are skipped, and canceled
// appointments do not block a slot.
func takenLabels(ctx context.Context, repo domain.Repository, in domain.AvailabilityInput) map[string]bool {
	appointments, err := repo.ListAppointmentsByDate(ctx, in.Date)
	if err != nil {
		return nil
	}

	taken := make(map[string]bool)
	for _, ap := range appointments {
		if ap.StylistID == nil || ap.StylistID.Int64() != in.StylistID {
			continue
		}
		if ap.Status == models.StatusCanceled {
			continue
		}
		taken[ap.Time] = true
	}
	return taken
}

// parseClockLabel accepts the store's "HH:MM:SS" labels as well as bare
// "HH:MM".
func parseClockLabel(label string) (int, error) {
	if t, err := time.Parse("15:04:05", label); err == nil {
		return t.Hour()*60 + t.Minute(), nil
	}
	return labelToMinutes(label)
}

func labelToMinutes(label string) (int, error) {
	t, err := time.Parse("15:04", label)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minutesToLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
