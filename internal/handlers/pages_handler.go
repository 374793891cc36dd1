package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velvetrow/salon-booking/internal/infra/repository"
	"github.com/velvetrow/salon-booking/internal/middleware"
	"github.com/velvetrow/salon-booking/internal/models"
	"github.com/velvetrow/salon-booking/internal/pricing"
)

// ======================================================
// HANDLER
// ======================================================

type PagesHandler struct {
	catalog  *repository.CatalogSupabaseRepository
	reviews  *repository.ReviewSupabaseRepository
	accounts *repository.AccountSupabaseRepository
	log      *zap.Logger
}

func NewPagesHandler(
	catalog *repository.CatalogSupabaseRepository,
	reviews *repository.ReviewSupabaseRepository,
	accounts *repository.AccountSupabaseRepository,
	log *zap.Logger,
) *PagesHandler {
	return &PagesHandler{
		catalog:  catalog,
		reviews:  reviews,
		accounts: accounts,
		log:      log,
	}
}

// ======================================================
// HOME
// ======================================================

func (h *PagesHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	services, err := h.catalog.ListServicesShowcase(ctx)
	if err != nil {
		h.log.Warn("home: load services", zap.Error(err))
	}
	formatServicePrices(services)

	stylists, err := h.catalog.ListStylistsShowcase(ctx)
	if err != nil {
		h.log.Warn("home: load stylists", zap.Error(err))
	}

	reviews, err := h.reviews.ListApprovedShowcase(ctx)
	if err != nil {
		h.log.Warn("home: load reviews", zap.Error(err))
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Services": services,
		"Stylists": stylists,
		"Reviews":  reviews,
		"User":     sess.User(),
		"Flashes":  sess.PopFlashes(),
	})
}

// ======================================================
// SERVICES
// ======================================================

func (h *PagesHandler) Services(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	categories, err := h.catalog.ListCategories(ctx)
	if err != nil {
		h.log.Warn("services: load categories", zap.Error(err))
	}

	var services []models.Service
	selected := int64(0)
	if raw := c.Query("category"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			selected = id
		}
	}
	if selected > 0 {
		services, err = h.catalog.ListServicesByCategory(ctx, selected)
	} else {
		services, err = h.catalog.ListActiveServices(ctx)
	}
	if err != nil {
		h.log.Warn("services: load services", zap.Error(err))
	}
	formatServicePrices(services)

	c.HTML(http.StatusOK, "services.html", gin.H{
		"Categories":       categories,
		"Services":         services,
		"SelectedCategory": selected,
		"User":             sess.User(),
		"Flashes":          sess.PopFlashes(),
	})
}

func (h *PagesHandler) ServiceDetail(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Service not found.")
		return
	}

	service, err := h.catalog.GetServiceWithCategory(ctx, id)
	if err != nil || service == nil {
		c.String(http.StatusNotFound, "Service not found.")
		return
	}
	service.FormattedPrice = pricing.Format(service.Price)

	reviews, err := h.reviews.ListByService(ctx, id)
	if err != nil {
		h.log.Warn("service detail: load reviews", zap.Error(err))
	}
	h.decorateReviews(c, reviews)

	c.HTML(http.StatusOK, "service_detail.html", gin.H{
		"Service": service,
		"Reviews": reviews,
		"User":    sess.User(),
		"Flashes": sess.PopFlashes(),
	})
}

// ======================================================
// STYLISTS
// ======================================================

func (h *PagesHandler) Stylists(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	stylists, err := h.catalog.ListActiveStylists(ctx)
	if err != nil {
		h.log.Warn("stylists: load", zap.Error(err))
	}

	c.HTML(http.StatusOK, "stylists.html", gin.H{
		"Stylists": stylists,
		"User":     sess.User(),
		"Flashes":  sess.PopFlashes(),
	})
}

func (h *PagesHandler) StylistDetail(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Stylist not found.")
		return
	}

	stylist, err := h.catalog.GetStylistDetails(ctx, id)
	if err != nil || stylist == nil {
		c.String(http.StatusNotFound, "Stylist not found.")
		return
	}
	formatServicePrices(stylist.Services)

	reviews, err := h.reviews.ListByStylist(ctx, id)
	if err != nil {
		h.log.Warn("stylist detail: load reviews", zap.Error(err))
	}
	h.decorateReviews(c, reviews)

	c.HTML(http.StatusOK, "stylist_detail.html", gin.H{
		"Stylist": stylist,
		"Reviews": reviews,
		"User":    sess.User(),
		"Flashes": sess.PopFlashes(),
	})
}

// StylistReviewCreate records a review left on a stylist's page. Requires a
// logged-in customer.
func (h *PagesHandler) StylistReviewCreate(c *gin.Context) {
	sess := middleware.GetSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Stylist not found.")
		return
	}
	back := "/stylists/" + strconv.FormatInt(id, 10)

	user := sess.User()
	if user == nil {
		sess.Flash("error", "Please log in to leave a review.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var req ReviewForm
	if err := c.ShouldBind(&req); err != nil || req.Rating < 1 || req.Rating > 5 {
		sess.Flash("error", "Please choose a rating between 1 and 5.")
		c.Redirect(http.StatusFound, back)
		return
	}

	if err := h.reviews.CreateReview(c.Request.Context(), repository.ReviewInput{
		UserID:    user.ID,
		StylistID: &id,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}); err != nil {
		h.log.Error("stylist review: create", zap.Error(err))
		sess.Flash("error", "Could not submit your review. Please try again.")
		c.Redirect(http.StatusFound, back)
		return
	}

	sess.Flash("success", "Thanks! Your review is awaiting approval.")
	c.Redirect(http.StatusFound, back)
}

// ======================================================
// HELPERS
// ======================================================

func formatServicePrices(services []models.Service) {
	for i := range services {
		services[i].FormattedPrice = pricing.Format(services[i].Price)
	}
}

func (h *PagesHandler) decorateReviews(c *gin.Context, reviews []models.Review) {
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
