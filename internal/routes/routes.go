package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/velvetrow/salon-booking/internal/config"
	"github.com/velvetrow/salon-booking/internal/handlers"
	"github.com/velvetrow/salon-booking/internal/media"
	"github.com/velvetrow/salon-booking/internal/middleware"
	"github.com/velvetrow/salon-booking/internal/session"
	"github.com/velvetrow/salon-booking/internal/supabase"

	infraRepo "github.com/velvetrow/salon-booking/internal/infra/repository"
	ucBooking "github.com/velvetrow/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	rdb *redis.Client,
	log *zap.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	sessionStore := session.NewStore(
		rdb,
		cfg.SessionSecret,
		cfg.SessionTTL(),
	)
	r.Use(middleware.SessionMiddleware(sessionStore))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	store := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseSecretKey)

	bookingRepo := infraRepo.NewBookingSupabaseRepository(store)
	catalogRepo := infraRepo.NewCatalogSupabaseRepository(store)
	accountRepo := infraRepo.NewAccountSupabaseRepository(store)
	reviewRepo := infraRepo.NewReviewSupabaseRepository(store)

	uploader := media.NewUploader(cfg.Media)

	// ======================================================
	// USE CASES - BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo)
	cleanupUC := ucBooking.NewCleanupOld(bookingRepo)
	upcomingUC := ucBooking.NewUpcoming(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accountRepo, log)
	pagesHandler := handlers.NewPagesHandler(catalogRepo, reviewRepo, accountRepo, log)
	bookingHandler := handlers.NewBookingHandler(catalogRepo, availabilityUC, createBookingUC, log)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, bookingRepo, catalogRepo, accountRepo, log)
	profileHandler := handlers.NewProfileHandler(bookingRepo, catalogRepo, upcomingUC, log)

	dashboardHandler := handlers.NewDashboardHandler(
		bookingRepo,
		catalogRepo,
		accountRepo,
		reviewRepo,
		cleanupUC,
		uploader,
		log,
	)

	// ======================================================
	// AUTH (reachable by everyone, admins included)
	// ======================================================
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// ======================================================
	// PUBLIC PAGES (admins are redirected to the dashboard)
	// ======================================================
	public := r.Group("/")
	public.Use(middleware.AdminRedirect())
	{
		public.GET("", pagesHandler.Home)
		public.GET("/services", pagesHandler.Services)
		public.GET("/services/:id", pagesHandler.ServiceDetail)
		public.GET("/stylists", pagesHandler.Stylists)
		public.GET("/stylists/:id", pagesHandler.StylistDetail)
		public.POST("/stylists/:id/reviews", pagesHandler.StylistReviewCreate)

		public.GET("/signup", authHandler.ShowSignup)
		public.POST("/signup", authHandler.Signup)

		public.GET("/booking", bookingHandler.ShowBookingForm)
		public.POST("/booking", bookingHandler.CreateBooking)

		public.GET("/reviews", reviewHandler.ReviewsPage)
		public.POST("/reviews", reviewHandler.CreateReview)

		profile := public.Group("/profile")
		profile.Use(middleware.RequireLogin())
		{
			profile.GET("", profileHandler.Profile)
		}
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/time-slots", bookingHandler.TimeSlots)
	}

	// ======================================================
	// DASHBOARD (admin only)
	// ======================================================
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AdminOnly())
	{
		dashboard.GET("", dashboardHandler.Overview)

		dashboard.GET("/appointments", dashboardHandler.Appointments)
		dashboard.POST("/appointments/:id/status", dashboardHandler.UpdateAppointmentStatus)

		dashboard.GET("/services", dashboardHandler.Services)
		dashboard.POST("/services", dashboardHandler.CreateService)
		dashboard.POST("/services/:id", dashboardHandler.UpdateService)
		dashboard.POST("/services/:id/delete", dashboardHandler.DeleteService)
		dashboard.POST("/categories", dashboardHandler.CreateCategory)

		dashboard.GET("/stylists", dashboardHandler.Stylists)
		dashboard.POST("/stylists", dashboardHandler.CreateStylist)
		dashboard.POST("/stylists/:id", dashboardHandler.UpdateStylist)
		dashboard.POST("/stylists/:id/delete", dashboardHandler.DeleteStylist)

		dashboard.GET("/reviews", dashboardHandler.Reviews)
		dashboard.POST("/reviews/:id/approve", dashboardHandler.ApproveReview)
		dashboard.POST("/reviews/:id/reject", dashboardHandler.RejectReview)
	}
}
