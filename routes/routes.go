package routes

import (
	"os"
	"strings"

	"github.com/Jadson00749/podiatry-planner-pro-sub001/config"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/controllers"
	"github.com/Jadson00749/podiatry-planner-pro-sub001/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public booking page, resolved by slug; no authentication
	booking := r.Group("/booking/:slug")
	{
		booking.GET("", controllers.GetBookingPage)
		booking.GET("/days", controllers.GetBookableDays)
		booking.GET("/slots", controllers.GetAvailableSlots)
		booking.POST("/appointments", controllers.CreatePublicBooking)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Procedure routes
		procedures := api.Group("/procedures")
		{
			procedures.POST("", controllers.CreateProcedure)
			procedures.GET("", controllers.GetProcedures)
			procedures.GET("/:id", controllers.GetProcedure)
			procedures.PUT("/:id", controllers.UpdateProcedure)
			procedures.DELETE("/:id", controllers.DeleteProcedure)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.PATCH("/:id/status", controllers.UpdateAppointmentStatus)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
			profile.PUT("/booking-settings", controllers.UpdateBookingSettings)
			profile.PUT("/notifications", controllers.UpdateNotificationSettings)
			profile.POST("/booking-slug", controllers.RegenerateBookingSlug)
			profile.GET("/reminder-template", controllers.GetReminderTemplate)
			profile.PUT("/reminder-template", controllers.UpdateReminderTemplate)
		}
	}

	return r
}
