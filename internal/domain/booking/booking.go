package booking

// AvailabilityInput identifies one availability question: a calendar date
// ("2006-01-02"), a stylist and a service.
type AvailabilityInput struct {
	Date      string
	StylistID int64
	ServiceID int64
}

// Default salon hours, used whenever a weekday has no business-hours row or
// the row's time labels are malformed.
const (
	DefaultOpening = "09:00"
	DefaultClosing = "20:00"
)

// SlotStepMinutes is the fixed spacing of the candidate slot grid.
const SlotStepMinutes = 30
