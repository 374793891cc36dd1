package models

// BusinessHours is the optional per-weekday override of salon hours.
// DayOfWeek is Monday=0 .. Sunday=6. Times are "HH:MM:SS" labels.
type BusinessHours struct {
	ID          FlexID   `json:"id"`
	DayOfWeek   FlexID   `json:"day_of_week"`
	OpeningTime string   `json:"opening_time"`
	ClosingTime string   `json:"closing_time"`
	IsClosed    FlexBool `json:"is_closed"`
}
