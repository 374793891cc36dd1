package booking

import (
	"context"

	"github.com/velvetrow/salon-booking/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetBusinessHours(
		ctx context.Context,
		weekday int,
	) (*models.BusinessHours, error)

	GetService(
		ctx context.Context,
		serviceID int64,
	) (*models.Service, error)

	// -------- Appointments --------
	ListAppointmentsByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsByUser(
		ctx context.Context,
		userID int64,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsBefore(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		appointmentID int64,
	) error
}
