package booking

import (
	"context"
	"time"

	domain "github.com/velvetrow/salon-booking/internal/domain/booking"
)

type CleanupOld struct {
	repo domain.Repository
}

func NewCleanupOld(repo domain.Repository) *CleanupOld {
	return &CleanupOld{repo: repo}
}

// Execute deletes appointments dated before yesterday and returns how many
// were removed. It runs inline on admin dashboard loads and is best effort:
// a failed fetch removes nothing, a failed delete is skipped.
func (uc *CleanupOld) Execute(ctx context.Context, now time.Time) int {
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	old, err := uc.repo.ListAppointmentsBefore(ctx, yesterday)
	if err != nil {
		return 0
	}

	deleted := 0
	for _, ap := range old {
		if err := uc.repo.DeleteAppointment(ctx, ap.ID.Int64()); err == nil {
			deleted++
		}
	}
	return deleted
}
