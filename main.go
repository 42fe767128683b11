package main

import (
	"fmt"
	"log"
	"os"
	"securetrack-backend/config"
	"securetrack-backend/controllers"
	"securetrack-backend/models"
	"securetrack-backend/routes"
	"securetrack-backend/services"

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
		&models.Shop{},
		&models.PurchasedItem{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Category{},
		&models.Brand{},
		&models.BusinessProfile{},
		&models.ReminderTemplate{},
		&models.ReminderLog{},
	)

	controllers.SeedCatalog()
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.NewReminderService(config.DB).StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
