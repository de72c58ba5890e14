package main

import (
	"fmt"
	"log"
	"os"

	"clinicpro-backend/config"
	"clinicpro-backend/models"
	"clinicpro-backend/routes"
	"clinicpro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Doctor{},
		&models.Appointment{},
		&models.ReminderSettings{},
		&models.ReminderLog{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	r := routes.SetupRouter(config.DB, reminders)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
