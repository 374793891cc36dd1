package models

// Appointment statuses. Date is a zero-padded ISO date ("2006-01-02") and
// Time a "HH:MM" slot label, both stored as strings.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

type Appointment struct {
	ID              FlexID  `json:"id"`
	UserID          *FlexID `json:"user_id,omitempty"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	ServiceID       FlexID  `json:"service_id"`
	StylistID       *FlexID `json:"stylist_id,omitempty"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"special_requests"`
	CreatedAt       string  `json:"created_at"`

	// Denormalized for rendering, never stored.
	ServiceName  string `json:"service_name,omitempty"`
	ServicePrice string `json:"service_price,omitempty"`
	StylistName  string `json:"stylist_name,omitempty"`
}
