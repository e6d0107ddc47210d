package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/config"
	"github.com/yeremiapane/reservation-app/controllers"
	"github.com/yeremiapane/reservation-app/middlewares"
	"github.com/yeremiapane/reservation-app/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi service
	scheduleSvc := services.NewScheduleService(db)
	availabilitySvc := services.NewAvailabilityService(db, scheduleSvc)
	reservationSvc := services.NewReservationService(db, availabilitySvc)
	reservationSvc.AutoConfirm = config.AutoConfirmReservations()
	bookingSvc := services.NewBookingService(availabilitySvc, reservationSvc)

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	tableCtrl := controllers.NewTableController(db)
	scheduleCtrl := controllers.NewScheduleController(db, scheduleSvc)
	availabilityCtrl := controllers.NewAvailabilityController(availabilitySvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)
	bookingCtrl := controllers.NewBookingController(bookingSvc)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// -- CUSTOMER (Tanpa Auth) --
	// Lihat restoran
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)

	// Jadwal buka hasil resolve (override > jadwal mingguan)
	r.GET("/restaurants/:restaurant_id/schedule", scheduleCtrl.GetResolvedSchedule)

	// Availability: slot per tanggal, meja per slot
	r.GET("/restaurants/:restaurant_id/availability", availabilityCtrl.GetSlots)
	r.GET("/restaurants/:restaurant_id/tables", availabilityCtrl.GetTables)

	// Membuat reservasi (customer tidak perlu login)
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.GET("/reservations/:code", reservationCtrl.GetReservationByCode)

	// Booking wizard (4 step)
	r.POST("/booking/sessions", bookingCtrl.StartSession)
	r.GET("/booking/sessions/:session_id", bookingCtrl.GetSession)
	r.PATCH("/booking/sessions/:session_id", bookingCtrl.AdvanceSession)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	// RESTAURANTS (admin)
	auth.POST("/restaurants", middlewares.RequireRole("admin"), restaurantCtrl.CreateRestaurant)
	auth.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)

	// TABLES (staff/admin)
	auth.GET("/restaurants/:restaurant_id/tables", tableCtrl.GetAllTables)
	auth.POST("/restaurants/:restaurant_id/tables", tableCtrl.CreateTable)
	auth.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
	auth.PATCH("/tables/:table_id/position", tableCtrl.UpdateTablePosition)
	auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

	// SCHEDULE (staff/admin)
	auth.GET("/restaurants/:restaurant_id/hours", scheduleCtrl.GetWeeklySchedule)
	auth.PUT("/restaurants/:restaurant_id/hours", scheduleCtrl.PutWeeklySchedule)
	auth.GET("/restaurants/:restaurant_id/overrides", scheduleCtrl.GetOverrides)
	auth.POST("/restaurants/:restaurant_id/overrides", scheduleCtrl.CreateOverride)
	auth.DELETE("/restaurants/:restaurant_id/overrides/:override_id", scheduleCtrl.DeleteOverride)

	// RESERVATIONS (staff/admin)
	auth.GET("/reservations", reservationCtrl.GetAllReservations)
	auth.PATCH("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)

	// Dashboard
	auth.GET("/dashboard/stats", adminCtrl.GetDashboardStats)

	return r
}
