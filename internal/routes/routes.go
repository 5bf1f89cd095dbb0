package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sebastian26-ui/barbershop-backend/internal/audit"
	"github.com/sebastian26-ui/barbershop-backend/internal/config"
	"github.com/sebastian26-ui/barbershop-backend/internal/handlers"
	infraRepo "github.com/sebastian26-ui/barbershop-backend/internal/infra/repository"
	"github.com/sebastian26-ui/barbershop-backend/internal/middleware"
	ucBooking "github.com/sebastian26-ui/barbershop-backend/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	limiter := middleware.NewRateLimiter(10, 20)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	findAvailableBarbersUC := ucBooking.NewFindAvailableBarbers(bookingRepo)

	createReservationUC := ucBooking.NewCreateReservation(
		bookingRepo,
		auditDispatcher,
	)

	updateStatusUC := ucBooking.NewUpdateReservationStatus(
		bookingRepo,
		auditDispatcher,
	)

	addWindowUC := ucBooking.NewAddWindow(bookingRepo, auditDispatcher)
	removeWindowUC := ucBooking.NewRemoveWindow(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(
		db,
		addWindowUC,
		removeWindowUC,
	)

	reservationHandler := handlers.NewReservationHandler(
		db,
		createReservationUC,
		updateStatusUC,
		findAvailableBarbersUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(limiter.Middleware())
	{
		// ------------------------------
		// PUBLIC (booking page)
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/barbers", barberHandler.List)
		api.GET("/available-barbers", reservationHandler.AvailableBarbers)
		api.POST("/reservations", reservationHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// BARBER DASHBOARD (token required)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/barber/:id/services", barberHandler.ListOfferings)
			secured.POST("/barber/:id/services", barberHandler.ReplaceOfferings)

			secured.GET("/barber/:id/availability", availabilityHandler.List)
			secured.POST("/barber/:id/availability", availabilityHandler.Create)
			secured.DELETE("/barber/availability/:id", availabilityHandler.Delete)

			secured.GET("/barber/:id/reservations", reservationHandler.ListForBarber)

			secured.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)
		}
	}
}
