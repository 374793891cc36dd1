package models

type Stylist struct {
	ID              FlexID   `json:"id"`
	Name            string   `json:"name"`
	Bio             string   `json:"bio"`
	ProfileImage    string   `json:"profile_image"`
	ExperienceYears FlexID   `json:"experience_years"`
	IsActive        FlexBool `json:"is_active"`

	// Denormalized for rendering, never stored.
	Services   []Service `json:"services,omitempty"`
	ServiceIDs []int64   `json:"service_ids,omitempty"`
}

// StylistService is the stylist/service many-to-many join row.
type StylistService struct {
	ID        FlexID `json:"id"`
	StylistID FlexID `json:"stylist_id"`
	ServiceID FlexID `json:"service_id"`
}
