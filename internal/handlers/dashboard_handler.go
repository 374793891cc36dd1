package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velvetrow/salon-booking/internal/infra/repository"
	"github.com/velvetrow/salon-booking/internal/media"
	"github.com/velvetrow/salon-booking/internal/middleware"
	"github.com/velvetrow/salon-booking/internal/models"
	"github.com/velvetrow/salon-booking/internal/pricing"

	usecase "github.com/velvetrow/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	booking  *repository.BookingSupabaseRepository
	catalog  *repository.CatalogSupabaseRepository
	accounts *repository.AccountSupabaseRepository
	reviews  *repository.ReviewSupabaseRepository
	cleanup  *usecase.CleanupOld
	uploader *media.Uploader
	log      *zap.Logger
}

func NewDashboardHandler(
	booking *repository.BookingSupabaseRepository,
	catalog *repository.CatalogSupabaseRepository,
	accounts *repository.AccountSupabaseRepository,
	reviews *repository.ReviewSupabaseRepository,
	cleanup *usecase.CleanupOld,
	uploader *media.Uploader,
	log *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		booking:  booking,
		catalog:  catalog,
		accounts: accounts,
		reviews:  reviews,
		cleanup:  cleanup,
		uploader: uploader,
		log:      log,
	}
}

// ======================================================
// OVERVIEW
// ======================================================

// Overview is the dashboard landing page. Loading it also sweeps
// appointments older than yesterday, so stale rows never need a cron job.
func (h *DashboardHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	if removed := h.cleanup.Execute(ctx, time.Now()); removed > 0 {
		h.log.Info("cleaned up old appointments", zap.Int("removed", removed))
	}

	recent, err := h.booking.ListRecentAppointments(ctx, 5)
	if err != nil {
		h.log.Warn("dashboard: load recent appointments", zap.Error(err))
	}
	h.decorateAppointments(c, recent)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"AppointmentCount": h.booking.CountAppointments(ctx),
		"ServiceCount":     h.catalog.CountServices(ctx),
		"StylistCount":     h.catalog.CountStylists(ctx),
		"UserCount":        h.accounts.CountUsers(ctx),
		"Recent":           recent,
		"User":             sess.User(),
		"Flashes":          sess.PopFlashes(),
	})
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *DashboardHandler) Appointments(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	appointments, err := h.booking.ListAllAppointments(ctx)
	if err != nil {
		h.log.Warn("dashboard: load appointments", zap.Error(err))
	}
	h.decorateAppointments(c, appointments)

	c.HTML(http.StatusOK, "dashboard_appointments.html", gin.H{
		"Appointments": appointments,
		"User":         sess.User(),
		"Flashes":      sess.PopFlashes(),
	})
}

type UpdateStatusRequest struct {
	Status string `form:"status" binding:"required"`
}

func (h *DashboardHandler) UpdateAppointmentStatus(c *gin.Context) {
	sess := middleware.GetSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Appointment not found.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil || !validStatus(req.Status) {
		sess.Flash("error", "Invalid appointment status.")
		c.Redirect(http.StatusFound, "/dashboard/appointments")
		return
	}

	if err := h.booking.UpdateAppointmentStatus(c.Request.Context(), id, req.Status); err != nil {
		h.log.Error("update appointment status", zap.Error(err))
		sess.Flash("error", "Could not update the appointment.")
		c.Redirect(http.StatusFound, "/dashboard/appointments")
		return
	}

	sess.Flash("success", "Appointment updated.")
	c.Redirect(http.StatusFound, "/dashboard/appointments")
}

func validStatus(status string) bool {
	switch status {
	case models.StatusScheduled, models.StatusCompleted, models.StatusCanceled:
		return true
	}
	return false
}

// ======================================================
// SERVICES
// ======================================================

func (h *DashboardHandler) Services(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	services, err := h.catalog.ListAllServices(ctx)
	if err != nil {
		h.log.Warn("dashboard: load services", zap.Error(err))
	}
	formatServicePrices(services)

	categories, err := h.catalog.ListCategories(ctx)
	if err != nil {
		h.log.Warn("dashboard: load categories", zap.Error(err))
	}
	categoryNames := make(map[int64]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.ID.Int64()] = cat.Name
	}
	for i := range services {
		services[i].CategoryName = categoryNames[services[i].CategoryID.Int64()]
	}

	c.HTML(http.StatusOK, "dashboard_services.html", gin.H{
		"Services":   services,
		"Categories": categories,
		"User":       sess.User(),
		"Flashes":    sess.PopFlashes(),
	})
}

type ServiceForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	CategoryID  int64  `form:"category_id" binding:"required"`
	Price       string `form:"price" binding:"required"`
	Duration    int    `form:"duration" binding:"required"`
	IsActive    bool   `form:"is_active"`
}

func (f ServiceForm) input() repository.ServiceInput {
	return repository.ServiceInput{
		Name:        f.Name,
		Description: f.Description,
		CategoryID:  f.CategoryID,
		Price:       f.Price,
		Duration:    f.Duration,
		IsActive:    f.IsActive,
	}
}

func (h *DashboardHandler) CreateService(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req ServiceForm
	if err := c.ShouldBind(&req); err != nil {
		sess.Flash("error", "Please fill in all service fields.")
		c.Redirect(http.StatusFound, "/dashboard/services")
		return
	}

	if err := h.catalog.CreateService(c.Request.Context(), req.input()); err != nil {
		h.log.Error("create service", zap.Error(err))
		sess.Flash("error", "Could not create the service.")
	} else {
		sess.Flash("success", "Service created.")
	}
	c.Redirect(http.StatusFound, "/dashboard/services")
}

func (h *DashboardHandler) UpdateService(c *gin.Context) {
	sess := middleware.GetSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Service not found.")
		return
	}

	var req ServiceForm
	if err := c.ShouldBind(&req); err != nil {
		sess.Flash("error", "Please fill in all service fields.")
		c.Redirect(http.StatusFound, "/dashboard/services")
		return
	}

	if err := h.catalog.UpdateService(c.Request.Context(), id, req.input()); err != nil {
		h.log.Error("update service", zap.Error(err))
		sess.Flash("error", "Could not update the service.")
	} else {
		sess.Flash("success", "Service updated.")
	}
	c.Redirect(http.StatusFound, "/dashboard/services")
}

func (h *DashboardHandler) DeleteService(c *gin.Context) {
	sess := middleware.GetSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Service not found.")
		return
	}

	if err := h.catalog.DeleteService(c.Request.Context(), id); err != nil {
		h.log.Error("delete service", zap.Error(err))
		sess.Flash("error", "Could not delete the service.")
	} else {
		sess.Flash("success", "Service deleted.")
	}
	c.Redirect(http.StatusFound, "/dashboard/services")
}

type CategoryForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}

func (h *DashboardHandler) CreateCategory(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req CategoryForm
	if err := c.ShouldBind(&req); err != nil {
		sess.Flash("error", "Please enter a category name.")
		c.Redirect(http.StatusFound, "/dashboard/services")
		return
	}

	if err := h.catalog.CreateCategory(c.Request.Context(), repository.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}); err != nil {
		h.log.Error("create category", zap.Error(err))
		sess.Flash("error", "Could not create the category.")
	} else {
		sess.Flash("success", "Category created.")
	}
	c.Redirect(http.StatusFound, "/dashboard/services")
}

// ======================================================
// STYLISTS
// ======================================================

func (h *DashboardHandler) Stylists(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	stylists, err := h.catalog.ListAllStylists(ctx)
	if err != nil {
		h.log.Warn("dashboard: load stylists", zap.Error(err))
	}
	for i := range stylists {
		ids, err := h.catalog.ListStylistServiceIDs(ctx, stylists[i].ID.Int64())
		if err != nil {
			continue
		}
		stylists[i].ServiceIDs = ids
	}

	services, err := h.catalog.ListActiveServices(ctx)
	if err != nil {
		h.log.Warn("dashboard: load services", zap.Error(err))
	}

	c.HTML(http.StatusOK, "dashboard_stylists.html", gin.H{
		"Stylists": stylists,
		"Services": services,
		"User":     sess.User(),
		"Flashes":  sess.PopFlashes(),
	})
}

type StylistForm struct {
	Name            string  `form:"name" binding:"required"`
	Bio             string  `form:"bio"`
	ExperienceYears int     `form:"experience_years"`
	IsActive        bool    `form:"is_active"`
	ServiceIDs      []int64 `form:"service_ids"`
}

func (h *DashboardHandler) CreateStylist(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	var req StylistForm
	if err := c.ShouldBind(&req); err != nil {
		sess.Flash("error", "Please fill in the stylist's name.")
		c.Redirect(http.StatusFound, "/dashboard/stylists")
		return
	}

	id, err := h.catalog.CreateStylist(ctx, repository.StylistInput{
		Name:            req.Name,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		IsActive:        req.IsActive,
	})
	if err != nil {
		h.log.Error("create stylist", zap.Error(err))
		sess.Flash("error", "Could not create the stylist.")
		c.Redirect(http.StatusFound, "/dashboard/stylists")
		return
	}

	if id > 0 && len(req.ServiceIDs) > 0 {
		if err := h.catalog.ReplaceStylistServices(ctx, id, req.ServiceIDs); err != nil {
			h.log.Error("attach stylist services", zap.Error(err))
		}
	}

	if id > 0 {
		h.attachUploadedPhoto(c, id)
	}

	sess.Flash("success", "Stylist created.")
	c.Redirect(http.StatusFound, "/dashboard/stylists")
}

func (h *DashboardHandler) UpdateStylist(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Stylist not found.")
		return
	}

	var req StylistForm
	if err := c.ShouldBind(&req); err != nil {
		sess.Flash("error", "Please fill in the stylist's name.")
		c.Redirect(http.StatusFound, "/dashboard/stylists")
		return
	}

	if err := h.catalog.UpdateStylist(ctx, id, repository.StylistInput{
		Name:            req.Name,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		IsActive:        req.IsActive,
	}); err != nil {
		h.log.Error("update stylist", zap.Error(err))
		sess.Flash("error", "Could not update the stylist.")
		c.Redirect(http.StatusFound, "/dashboard/stylists")
		return
	}

	if err := h.catalog.ReplaceStylistServices(ctx, id, req.ServiceIDs); err != nil {
		h.log.Error("attach stylist services", zap.Error(err))
	}

	h.attachUploadedPhoto(c, id)

	sess.Flash("success", "Stylist updated.")
	c.Redirect(http.StatusFound, "/dashboard/stylists")
}

func (h *DashboardHandler) DeleteStylist(c *gin.Context) {
	sess := middleware.GetSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Stylist not found.")
		return
	}

	if err := h.catalog.DeleteStylist(c.Request.Context(), id); err != nil {
		h.log.Error("delete stylist", zap.Error(err))
		sess.Flash("error", "Could not delete the stylist.")
	} else {
		sess.Flash("success", "Stylist deleted.")
	}
	c.Redirect(http.StatusFound, "/dashboard/stylists")
}

// attachUploadedPhoto stores the optional "photo" form file and points the
// stylist's profile_image at it. Upload failures only log; the stylist keeps
// the previous image.
func (h *DashboardHandler) attachUploadedPhoto(c *gin.Context, stylistID int64) {
	file, err := c.FormFile("photo")
	if err != nil {
		return
	}

	src, err := file.Open()
	if err != nil {
		h.log.Error("open uploaded photo", zap.Error(err))
		return
	}
	defer src.Close()

	url, err := h.uploader.UploadPhoto(c.Request.Context(), "stylists", src)
	if err != nil {
		h.log.Error("upload stylist photo", zap.Error(err))
		return
	}

	if err := h.catalog.SetStylistPhoto(c.Request.Context(), stylistID, url); err != nil {
		h.log.Error("set stylist photo", zap.Error(err))
	}
}

// ======================================================
// REVIEWS
// ======================================================

func (h *DashboardHandler) Reviews(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	reviews, err := h.reviews.ListAll(ctx)
	if err != nil {
		h.log.Warn("dashboard: load reviews", zap.Error(err))
	}
	for i := range reviews {
		r := &reviews[i]
		r.Username = h.accounts.GetUsername(ctx, r.UserID.Int64())
		if r.ServiceID != nil {
			r.ServiceName = h.catalog.GetServiceName(ctx, r.ServiceID.Int64())
		}
		if r.StylistID != nil {
			r.StylistName = h.catalog.GetStylistName(ctx, r.StylistID.Int64())
		}
	}

	c.HTML(http.StatusOK, "dashboard_reviews.html", gin.H{
		"Reviews": reviews,
		"User":    sess.User(),
		"Flashes": sess.PopFlashes(),
	})
}

func (h *DashboardHandler) ApproveReview(c *gin.Context) {
	sess := middleware.GetSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Review not found.")
		return
	}

	if err := h.reviews.ApproveReview(c.Request.Context(), id); err != nil {
		h.log.Error("approve review", zap.Error(err))
		sess.Flash("error", "Could not approve the review.")
	} else {
		sess.Flash("success", "Review approved.")
	}
	c.Redirect(http.StatusFound, "/dashboard/reviews")
}

// RejectReview removes the review outright. There is no rejected state in
// the store.
func (h *DashboardHandler) RejectReview(c *gin.Context) {
	sess := middleware.GetSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Review not found.")
		return
	}

	if err := h.reviews.DeleteReview(c.Request.Context(), id); err != nil {
		h.log.Error("reject review", zap.Error(err))
		sess.Flash("error", "Could not reject the review.")
	} else {
		sess.Flash("success", "Review rejected.")
	}
	c.Redirect(http.StatusFound, "/dashboard/reviews")
}

// ======================================================
// HELPERS
// ======================================================

func (h *DashboardHandler) decorateAppointments(c *gin.Context, appointments []models.Appointment) {
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
