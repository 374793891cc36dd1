package repository

import (
	"context"

	"github.com/velvetrow/salon-booking/internal/models"
	"github.com/velvetrow/salon-booking/internal/supabase"

	domain "github.com/velvetrow/salon-booking/internal/domain/booking"
)

// BookingSupabaseRepository resolves the booking domain's data needs against
// the remote store.
type BookingSupabaseRepository struct {
	client *supabase.Client
}

func NewBookingSupabaseRepository(client *supabase.Client) *BookingSupabaseRepository {
	return &BookingSupabaseRepository{client: client}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingSupabaseRepository) GetBusinessHours(
	ctx context.Context,
	weekday int,
) (*models.BusinessHours, error) {

	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "business_hours",
		Filter: &supabase.Filter{Column: "day_of_week", Op: supabase.OpEq, Value: itoa(int64(weekday))},
	})
	if err != nil {
		return nil, err
	}
	return supabase.Row[models.BusinessHours]("business_hours", raw)
}

func (r *BookingSupabaseRepository) GetService(
	ctx context.Context,
	serviceID int64,
) (*models.Service, error) {

	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "services",
		Filter: &supabase.Filter{Column: "id", Op: supabase.OpEq, Value: itoa(serviceID)},
	})
	if err != nil {
		return nil, err
	}
	return supabase.Row[models.Service]("services", raw)
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

// Appointment listings decode row by row: one malformed upstream row is
// skipped, never fatal.

func (r *BookingSupabaseRepository) ListAppointmentsByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "appointments",
		Filter: &supabase.Filter{Column: "date", Op: supabase.OpEq, Value: date},
	})
	if err != nil {
		return nil, err
	}
	return supabase.LenientRows[models.Appointment]("appointments", raw)
}

func (r *BookingSupabaseRepository) ListAppointmentsByUser(
	ctx context.Context,
	userID int64,
) ([]models.Appointment, error) {

	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "appointments",
		Filter: &supabase.Filter{Column: "user_id", Op: supabase.OpEq, Value: itoa(userID)},
		Order:  "date.asc,time.asc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.LenientRows[models.Appointment]("appointments", raw)
}

func (r *BookingSupabaseRepository) ListAllAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table: "appointments",
		Order: "date.asc,time.asc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.LenientRows[models.Appointment]("appointments", raw)
}

func (r *BookingSupabaseRepository) ListAppointmentsBefore(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "appointments",
		Filter: &supabase.Filter{Column: "date", Op: supabase.OpLt, Value: date},
	})
	if err != nil {
		return nil, err
	}
	return supabase.LenientRows[models.Appointment]("appointments", raw)
}

type appointmentPayload struct {
	UserID          *int64 `json:"user_id,omitempty"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	ServiceID       int64  `json:"service_id"`
	StylistID       int64  `json:"stylist_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Status          string `json:"status"`
	SpecialRequests string `json:"special_requests"`
}

func (r *BookingSupabaseRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) (*models.Appointment, error) {

	payload := appointmentPayload{
		CustomerName:    ap.CustomerName,
		CustomerPhone:   ap.CustomerPhone,
		ServiceID:       ap.ServiceID.Int64(),
		Date:            ap.Date,
		Time:            ap.Time,
		Status:          ap.Status,
		SpecialRequests: ap.SpecialRequests,
	}
	if ap.StylistID != nil {
		payload.StylistID = ap.StylistID.Int64()
	}
	if ap.UserID != nil {
		id := ap.UserID.Int64()
		payload.UserID = &id
	}

	raw, err := r.client.Insert(ctx, "appointments", payload)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return ap, nil
	}

	created, err := supabase.Row[models.Appointment]("appointments", raw)
	if err != nil || created == nil {
		return ap, nil
	}
	return created, nil
}

func (r *BookingSupabaseRepository) UpdateAppointmentStatus(
	ctx context.Context,
	appointmentID int64,
	status string,
) error {

	patch := struct {
		Status string `json:"status"`
	}{Status: status}

	_, err := r.client.AsAdmin().Update(ctx, "appointments", itoa(appointmentID), patch)
	return err
}

func (r *BookingSupabaseRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID int64,
) error {
	return r.client.AsAdmin().Delete(ctx, "appointments", itoa(appointmentID))
}

func (r *BookingSupabaseRepository) CountAppointments(ctx context.Context) int {
	return countRows(ctx, r.client, "appointments")
}

// ListRecentAppointments returns the newest rows first, capped at limit.
func (r *BookingSupabaseRepository) ListRecentAppointments(
	ctx context.Context,
	limit int,
) ([]models.Appointment, error) {

	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:   "appointments",
		Order:   "created_at.desc",
		RangeTo: limit - 1, // Range bounds are inclusive
	})
	if err != nil {
		return nil, err
	}
	return supabase.LenientRows[models.Appointment]("appointments", raw)
}

// Compile-time check
var _ domain.Repository = (*BookingSupabaseRepository)(nil)
