package routes

import (
	"os"
	"strings"

	"clinicpro-backend/config"
	"clinicpro-backend/controllers"
	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func allowedOrigins() []string {
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}

func SetupRouter(db *gorm.DB, reminders *services.ReminderService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	appointmentController := controllers.NewAppointmentController(db, reminders)
	patientController := controllers.NewPatientController(db)
	doctorController := controllers.NewDoctorController(db)
	settingsController := controllers.NewSettingsController(db)
	dashboardController := controllers.NewDashboardController(db)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Patient routes
		patients := api.Group("/patients")
		{
			patients.POST("", patientController.CreatePatient)
			patients.GET("", patientController.GetPatients)
			patients.GET("/:id", patientController.GetPatient)
			patients.PUT("/:id", patientController.UpdatePatient)
		}

		// Doctor routes
		doctors := api.Group("/doctors")
		{
			doctors.POST("", doctorController.CreateDoctor)
			doctors.GET("", doctorController.GetDoctors)
			doctors.GET("/:id", doctorController.GetDoctor)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.GET("/:id", appointmentController.GetAppointment)
			appointments.PUT("/:id/status", appointmentController.UpdateAppointmentStatus)
			appointments.POST("/:id/reminder", appointmentController.SendReminder)
			appointments.GET("/:id/reminders", appointmentController.GetReminderLogs)
		}

		// Reminder settings routes
		settings := api.Group("/settings")
		{
			settings.GET("/reminders", settingsController.GetReminderSettings)
			settings.PUT("/reminders", settingsController.UpdateReminderSettings)
			settings.POST("/reminders/preview", settingsController.PreviewTemplate)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
