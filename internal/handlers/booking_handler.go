package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velvetrow/salon-booking/internal/httperr"
	"github.com/velvetrow/salon-booking/internal/httpresp"
	"github.com/velvetrow/salon-booking/internal/infra/repository"
	"github.com/velvetrow/salon-booking/internal/middleware"
	"github.com/velvetrow/salon-booking/internal/pricing"

	domain "github.com/velvetrow/salon-booking/internal/domain/booking"
	usecase "github.com/velvetrow/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	catalog      *repository.CatalogSupabaseRepository
	availability *usecase.GetAvailability
	create       *usecase.CreateBooking
	log          *zap.Logger
}

func NewBookingHandler(
	catalog *repository.CatalogSupabaseRepository,
	availability *usecase.GetAvailability,
	create *usecase.CreateBooking,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		catalog:      catalog,
		availability: availability,
		create:       create,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName    string `form:"customer_name" binding:"required"`
	CustomerPhone   string `form:"customer_phone" binding:"required"`
	ServiceID       int64  `form:"service_id" binding:"required"`
	StylistID       int64  `form:"stylist_id" binding:"required"`
	Date            string `form:"date" binding:"required"`
	Time            string `form:"time" binding:"required"`
	SpecialRequests string `form:"special_requests"`
}

type TimeSlotsRequest struct {
	Date      string `json:"date" binding:"required"`
	StylistID int64  `json:"stylist_id" binding:"required"`
	ServiceID int64  `json:"service_id" binding:"required"`
}

// ======================================================
// BOOKING FORM
// ======================================================

// ShowBookingForm renders the booking page. A service or stylist query
// parameter pre-selects the matching dropdown entry.
func (h *BookingHandler) ShowBookingForm(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	services, err := h.catalog.ListActiveServices(ctx)
	if err != nil {
		h.log.Warn("booking form: load services", zap.Error(err))
	}
	formatServicePrices(services)

	stylists, err := h.catalog.ListActiveStylists(ctx)
	if err != nil {
		h.log.Warn("booking form: load stylists", zap.Error(err))
	}

	selectedService, _ := strconv.ParseInt(c.Query("service"), 10, 64)
	selectedStylist, _ := strconv.ParseInt(c.Query("stylist"), 10, 64)

	c.HTML(http.StatusOK, "booking.html", gin.H{
		"Services":        services,
		"Stylists":        stylists,
		"SelectedService": selectedService,
		"SelectedStylist": selectedStylist,
		"User":            sess.User(),
		"Flashes":         sess.PopFlashes(),
	})
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req CreateBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		sess.Flash("error", "Please fill in all booking fields.")
		c.Redirect(http.StatusFound, "/booking")
		return
	}

	in := usecase.CreateBookingInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ServiceID:       req.ServiceID,
		StylistID:       req.StylistID,
		Date:            req.Date,
		Time:            req.Time,
		SpecialRequests: req.SpecialRequests,
	}
	if user := sess.User(); user != nil {
		id := user.ID
		in.UserID = &id
	}

	ap, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			sess.Flash("error", "That time slot is no longer available. Please pick another.")
		} else {
			h.log.Error("create booking", zap.Error(err))
			sess.Flash("error", "Could not create your appointment. Please try again.")
		}
		c.Redirect(http.StatusFound, "/booking")
		return
	}

	ctx := c.Request.Context()
	if service, err := h.catalog.GetService(ctx, ap.ServiceID.Int64()); err == nil && service != nil {
		ap.ServiceName = service.Name
		ap.ServicePrice = pricing.Format(service.Price)
	}
	if ap.StylistID != nil {
		ap.StylistName = h.catalog.GetStylistName(ctx, ap.StylistID.Int64())
	}

	c.HTML(http.StatusOK, "booking_success.html", gin.H{
		"Appointment": ap,
		"User":        sess.User(),
		"Flashes":     sess.PopFlashes(),
	})
}

// ======================================================
// TIME SLOTS API
// ======================================================

// TimeSlots serves the booking page's slot picker. Errors in the lookup
// degrade to an empty list rather than failing the page.
func (h *BookingHandler) TimeSlots(c *gin.Context) {
	var req TimeSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "date, stylist_id and service_id are required.")
		return
	}

	slots := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:      req.Date,
		StylistID: req.StylistID,
		ServiceID: req.ServiceID,
	})

	httpresp.OK(c, gin.H{"time_slots": slots})
}
