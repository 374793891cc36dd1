package models

type ServiceCategory struct {
	ID          FlexID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Service struct {
	ID          FlexID    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  FlexID    `json:"category_id"`
	Price       FlexFloat `json:"price"`
	Duration    *FlexID   `json:"duration"`
	IsActive    FlexBool  `json:"is_active"`

	// Denormalized for rendering, never stored.
	FormattedPrice string           `json:"formatted_price,omitempty"`
	CategoryName   string           `json:"category_name,omitempty"`
	Category       *ServiceCategory `json:"category,omitempty"`
}

// DurationMinutes returns the service duration and whether it was present.
func (s *Service) DurationMinutes() (int, bool) {
	if s == nil || s.Duration == nil {
		return 0, false
	}
	return int(s.Duration.Int64()), true
}
