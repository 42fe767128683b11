package routes

import (
	"os"
	"securetrack-backend/config"
	"securetrack-backend/controllers"
	"securetrack-backend/utils"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			origins = append(origins, strings.TrimSpace(o))
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.PUT("/change-password", controllers.ChangePassword)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Shop (vendor ledger) routes
		shops := api.Group("/shops")
		{
			shops.POST("", controllers.CreateShop)
			shops.GET("", controllers.GetShops)
			shops.GET("/:id", controllers.GetShop)
			shops.PUT("/:id", controllers.UpdateShop)
			shops.DELETE("/:id", controllers.DeleteShop)
		}

		// Purchase routes
		purchases := api.Group("/purchases")
		{
			purchases.POST("", controllers.CreatePurchase)
			purchases.GET("", controllers.GetPurchases)
			purchases.GET("/:id", controllers.GetPurchase)
			purchases.PUT("/:id", controllers.UpdatePurchase)
			purchases.DELETE("/:id", controllers.DeletePurchase)
			purchases.GET("/:id/qr", controllers.GetPurchaseQR)
		}

		// QR scanning
		api.POST("/qr/scan", controllers.ScanQR)

		// Serial number lookup
		api.GET("/search/serials", controllers.SearchSerials)

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", controllers.CreateInvoice)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id", controllers.UpdateInvoice)
			invoices.DELETE("/:id", controllers.DeleteInvoice)
		}

		// Quotations are print-only, never persisted
		api.POST("/quotations/preview", controllers.PreviewQuotation)

		// Catalog routes
		api.GET("/categories", controllers.GetCategories)
		api.POST("/categories", controllers.CreateCategory)
		api.GET("/brands", controllers.GetBrands)
		api.POST("/brands", controllers.CreateBrand)

		// Dashboard
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Reports
		api.GET("/reports/invoices/export", controllers.ExportInvoicesExcel)
		api.GET("/reports/purchases/export", controllers.ExportPurchasesExcel)

		// Business profile
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
		}

		// Payment reminders
		reminders := api.Group("/reminders")
		{
			reminders.GET("/logs", controllers.GetReminderLogs)
			reminders.POST("/run", controllers.RunReminders)
		}
	}

	return r
}
