package models

type Review struct {
	ID            FlexID   `json:"id"`
	UserID        FlexID   `json:"user_id"`
	ServiceID     *FlexID  `json:"service_id,omitempty"`
	StylistID     *FlexID  `json:"stylist_id,omitempty"`
	AppointmentID *FlexID  `json:"appointment_id,omitempty"`
	Rating        FlexID   `json:"rating"`
	Comment       string   `json:"comment"`
	IsApproved    FlexBool `json:"is_approved"`
	CreatedAt     string   `json:"created_at"`

	// Denormalized for rendering, never stored.
	ServiceName string `json:"service_name,omitempty"`
	StylistName string `json:"stylist_name,omitempty"`
	Username    string `json:"username,omitempty"`
}
