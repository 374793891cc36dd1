package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velvetrow/salon-booking/internal/infra/repository"
	"github.com/velvetrow/salon-booking/internal/middleware"
	"github.com/velvetrow/salon-booking/internal/models"
	"github.com/velvetrow/salon-booking/internal/pricing"

	usecase "github.com/velvetrow/salon-booking/internal/usecase/booking"
)

type ProfileHandler struct {
	booking  *repository.BookingSupabaseRepository
	catalog  *repository.CatalogSupabaseRepository
	upcoming *usecase.Upcoming
	log      *zap.Logger
}

func NewProfileHandler(
	booking *repository.BookingSupabaseRepository,
	catalog *repository.CatalogSupabaseRepository,
	upcoming *usecase.Upcoming,
	log *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		booking:  booking,
		catalog:  catalog,
		upcoming: upcoming,
		log:      log,
	}
}

// Profile shows the logged-in user's appointments, upcoming ones first.
func (h *ProfileHandler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)
	user := sess.User()

	userID := user.ID
	upcoming := h.upcoming.Execute(ctx, &userID, time.Now())
	h.decorateAppointments(c, upcoming)

	history, err := h.booking.ListAppointmentsByUser(ctx, userID)
	if err != nil {
		h.log.Warn("profile: load appointments", zap.Error(err))
	}
	h.decorateAppointments(c, history)

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Upcoming":     upcoming,
		"Appointments": history,
		"User":         user,
		"Flashes":      sess.PopFlashes(),
	})
}

func (h *ProfileHandler) decorateAppointments(c *gin.Context, appointments []models.Appointment) {
	ctx := c.Request.Context()
	for i := range appointments {
		ap := &appointments[i]
		if service, err := h.catalog.GetService(ctx, ap.ServiceID.Int64()); err == nil && service != nil {
			ap.ServiceName = service.Name
			ap.ServicePrice = pricing.Format(service.Price)
		}
		if ap.StylistID != nil {
			ap.StylistName = h.catalog.GetStylistName(ctx, ap.StylistID.Int64())
		}
	}
}
