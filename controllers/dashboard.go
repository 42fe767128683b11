// controllers/dashboard.go
package controllers

import (
	"net/http"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"securetrack-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type DailyPurchases struct {
	PurchaseDate   string  `json:"purchase_date"`
	TotalPurchases int     `json:"total_purchases"`
	TotalQuantity  int     `json:"total_quantity"`
	TotalAmount    float64 `json:"total_amount"`
}

type MonthlyPurchases struct {
	Month          string  `json:"month"`
	TotalPurchases int     `json:"total_purchases"`
	TotalQuantity  int     `json:"total_quantity"`
	TotalAmount    float64 `json:"total_amount"`
	ShopsContacted int     `json:"shops_interacted"`
}

type CategoryBreakdown struct {
	Category       string  `json:"category"`
	TotalPurchases int     `json:"total_purchases"`
	TotalQuantity  int     `json:"total_quantity"`
	TotalAmount    float64 `json:"total_amount"`
}

type TopShop struct {
	ID             string  `json:"id"`
	ShopName       string  `json:"shop_name"`
	MobNo          string  `json:"mob_no"`
	TotalPurchases int     `json:"total_purchases"`
	TotalQuantity  int     `json:"total_quantity"`
	TotalAmount    float64 `json:"total_amount"`
}

// GetDashboardOverview aggregates the ledger into the dashboard payload:
// headline totals, 30-day and 12-month purchase series, category breakdown,
// top shops by spend and the latest purchases.
func GetDashboardOverview(c *gin.Context) {
	var totalShops int64
	config.DB.Model(&models.Shop{}).Count(&totalShops)

	var totalPurchases int64
	config.DB.Model(&models.PurchasedItem{}).Count(&totalPurchases)

	var totalQuantity int64
	config.DB.Model(&models.PurchasedItem{}).Select("COALESCE(SUM(quantity), 0)").Scan(&totalQuantity)

	var totalSpent float64
	config.DB.Model(&models.PurchasedItem{}).Select("COALESCE(SUM(unit_price * quantity), 0)").Scan(&totalSpent)

	var totalInvoices int64
	config.DB.Model(&models.Invoice{}).Count(&totalInvoices)

	// This month's invoiced revenue
	now := time.Now()
	firstOfMonth := utils.BeginningOfDay(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	var monthlyRevenue float64
	config.DB.Model(&models.Invoice{}).
		Where("invoice_date >= ?", firstOfMonth).
		Select("COALESCE(SUM(total), 0)").Scan(&monthlyRevenue)

	var outstandingReceivables float64
	config.DB.Model(&models.Invoice{}).Select("COALESCE(SUM(remaining_amount), 0)").Scan(&outstandingReceivables)

	// Last 30 days, one row per purchase day
	var daily []DailyPurchases
	config.DB.Raw(`
        SELECT TO_CHAR(purchase_date, 'YYYY-MM-DD') AS purchase_date,
               COUNT(*) AS total_purchases,
               SUM(quantity) AS total_quantity,
               SUM(unit_price * quantity) AS total_amount
        FROM purchased_items
        WHERE purchase_date >= ?
        GROUP BY TO_CHAR(purchase_date, 'YYYY-MM-DD')
        ORDER BY purchase_date
    `, now.AddDate(0, 0, -30)).Scan(&daily)

	// Last 12 months
	var monthly []MonthlyPurchases
	config.DB.Raw(`
        SELECT TO_CHAR(purchase_date, 'YYYY-MM') AS month,
               COUNT(*) AS total_purchases,
               SUM(quantity) AS total_quantity,
               SUM(unit_price * quantity) AS total_amount,
               COUNT(DISTINCT shop_id) AS shops_contacted
        FROM purchased_items
        WHERE purchase_date >= ?
        GROUP BY TO_CHAR(purchase_date, 'YYYY-MM')
        ORDER BY month
    `, now.AddDate(-1, 0, 0)).Scan(&monthly)

	var categories []CategoryBreakdown
	config.DB.Raw(`
        SELECT category,
               COUNT(*) AS total_purchases,
               SUM(quantity) AS total_quantity,
               SUM(unit_price * quantity) AS total_amount
        FROM purchased_items
        GROUP BY category
        ORDER BY total_amount DESC
    `).Scan(&categories)

	var topShops []TopShop
	config.DB.Raw(`
        SELECT s.id, s.shop_name, s.mob_no,
               COUNT(p.id) AS total_purchases,
               COALESCE(SUM(p.quantity), 0) AS total_quantity,
               COALESCE(SUM(p.unit_price * p.quantity), 0) AS total_amount
        FROM shops s
        JOIN purchased_items p ON p.shop_id = s.id
        WHERE s.deleted_at IS NULL
        GROUP BY s.id, s.shop_name, s.mob_no
        ORDER BY total_amount DESC
        LIMIT 5
    `).Scan(&topShops)

	var recentPurchases []models.PurchasedItem
	config.DB.Preload("Shop").Order("created_at DESC").Limit(5).Find(&recentPurchases)

	c.JSON(http.StatusOK, gin.H{
		"totalShops":             totalShops,
		"totalPurchases":         totalPurchases,
		"totalQuantity":          totalQuantity,
		"totalSpent":             totalSpent,
		"totalInvoices":          totalInvoices,
		"monthlyRevenue":         monthlyRevenue,
		"outstandingReceivables": outstandingReceivables,
		"dailyPurchases":         daily,
		"monthlyPurchases":       monthly,
		"categoryBreakdown":      categories,
		"topShops":               topShops,
		"recentPurchases":        recentPurchases,
	})
}
