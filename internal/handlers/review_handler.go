package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velvetrow/salon-booking/internal/infra/repository"
	"github.com/velvetrow/salon-booking/internal/middleware"
	"github.com/velvetrow/salon-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ReviewHandler struct {
	reviews  *repository.ReviewSupabaseRepository
	booking  *repository.BookingSupabaseRepository
	catalog  *repository.CatalogSupabaseRepository
	accounts *repository.AccountSupabaseRepository
	log      *zap.Logger
}

func NewReviewHandler(
	reviews *repository.ReviewSupabaseRepository,
	booking *repository.BookingSupabaseRepository,
	catalog *repository.CatalogSupabaseRepository,
	accounts *repository.AccountSupabaseRepository,
	log *zap.Logger,
) *ReviewHandler {
	return &ReviewHandler{
		reviews:  reviews,
		booking:  booking,
		catalog:  catalog,
		accounts: accounts,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ReviewForm struct {
	Rating  int    `form:"rating" binding:"required"`
	Comment string `form:"comment"`
}

type AppointmentReviewForm struct {
	AppointmentID int64  `form:"appointment_id" binding:"required"`
	Rating        int    `form:"rating" binding:"required"`
	Comment       string `form:"comment"`
}

// ======================================================
// REVIEWS PAGE
// ======================================================

func (h *ReviewHandler) ReviewsPage(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	approved, err := h.reviews.ListApproved(ctx)
	if err != nil {
		h.log.Warn("reviews: load", zap.Error(err))
	}
	h.decorate(c, approved)

	// Completed, not-yet-reviewed appointments of the logged-in user feed
	// the "leave a review" form.
	var reviewable []models.Appointment
	if user := sess.User(); user != nil {
		appointments, err := h.booking.ListAppointmentsByUser(ctx, user.ID)
		if err != nil {
			h.log.Warn("reviews: load appointments", zap.Error(err))
		}
		for _, ap := range appointments {
			if ap.Status != models.StatusCompleted {
				continue
			}
			if h.reviews.HasReviewForAppointment(ctx, ap.ID.Int64()) {
				continue
			}
			ap.ServiceName = h.catalog.GetServiceName(ctx, ap.ServiceID.Int64())
			if ap.StylistID != nil {
				ap.StylistName = h.catalog.GetStylistName(ctx, ap.StylistID.Int64())
			}
			reviewable = append(reviewable, ap)
		}
	}

	c.HTML(http.StatusOK, "reviews.html", gin.H{
		"Reviews":    approved,
		"Reviewable": reviewable,
		"User":       sess.User(),
		"Flashes":    sess.PopFlashes(),
	})
}

// ======================================================
// CREATE
// ======================================================

// CreateReview records a review tied to one of the user's completed
// appointments. The appointment must belong to the user and not be reviewed
// already.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	user := sess.User()
	if user == nil {
		sess.Flash("error", "Please log in to leave a review.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var req AppointmentReviewForm
	if err := c.ShouldBind(&req); err != nil || req.Rating < 1 || req.Rating > 5 {
		sess.Flash("error", "Please choose a rating between 1 and 5.")
		c.Redirect(http.StatusFound, "/reviews")
		return
	}

	appointments, err := h.booking.ListAppointmentsByUser(ctx, user.ID)
	if err != nil {
		h.log.Error("review: load appointments", zap.Error(err))
		sess.Flash("error", "Could not submit your review. Please try again.")
		c.Redirect(http.StatusFound, "/reviews")
		return
	}

	var target *models.Appointment
	for i := range appointments {
		if appointments[i].ID.Int64() == req.AppointmentID {
			target = &appointments[i]
			break
		}
	}
	if target == nil || target.Status != models.StatusCompleted {
		sess.Flash("error", "You can only review your own completed appointments.")
		c.Redirect(http.StatusFound, "/reviews")
		return
	}
	if h.reviews.HasReviewForAppointment(ctx, req.AppointmentID) {
		sess.Flash("error", "You already reviewed this appointment.")
		c.Redirect(http.StatusFound, "/reviews")
		return
	}

	serviceID := target.ServiceID.Int64()
	in := repository.ReviewInput{
		UserID:        user.ID,
		ServiceID:     &serviceID,
		AppointmentID: &req.AppointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if target.StylistID != nil {
		stylistID := target.StylistID.Int64()
		in.StylistID = &stylistID
	}

	if err := h.reviews.CreateReview(ctx, in); err != nil {
		h.log.Error("review: create", zap.Error(err))
		sess.Flash("error", "Could not submit your review. Please try again.")
		c.Redirect(http.StatusFound, "/reviews")
		return
	}

	sess.Flash("success", "Thanks! Your review is awaiting approval.")
	c.Redirect(http.StatusFound, "/reviews")
}

// ======================================================
// HELPERS
// ======================================================

func (h *ReviewHandler) decorate(c *gin.Context, reviews []models.Review) {
	ctx := c.Request.Context()
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
}
