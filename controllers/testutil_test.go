package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
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
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
	return db
}

// testRouter mounts every handler without the auth middleware; the JWT layer
// is exercised separately.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/api/shops", CreateShop)
	r.GET("/api/shops", GetShops)
	r.GET("/api/shops/:id", GetShop)
	r.PUT("/api/shops/:id", UpdateShop)
	r.DELETE("/api/shops/:id", DeleteShop)

	r.POST("/api/purchases", CreatePurchase)
	r.GET("/api/purchases", GetPurchases)
	r.GET("/api/purchases/:id", GetPurchase)
	r.PUT("/api/purchases/:id", UpdatePurchase)
	r.DELETE("/api/purchases/:id", DeletePurchase)
	r.GET("/api/purchases/:id/qr", GetPurchaseQR)

	r.POST("/api/qr/scan", ScanQR)
	r.GET("/api/search/serials", SearchSerials)

	r.POST("/api/invoices", CreateInvoice)
	r.GET("/api/invoices", GetInvoices)
	r.GET("/api/invoices/:id", GetInvoice)
	r.PUT("/api/invoices/:id", UpdateInvoice)
	r.DELETE("/api/invoices/:id", DeleteInvoice)

	r.POST("/api/quotations/preview", PreviewQuotation)

	r.GET("/api/categories", GetCategories)
	r.POST("/api/categories", CreateCategory)
	r.GET("/api/brands", GetBrands)
	r.POST("/api/brands", CreateBrand)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func seedShop(t *testing.T, db *gorm.DB, name string) models.Shop {
	t.Helper()
	shop := models.Shop{ShopName: name, MobNo: "0300-1234567"}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("seed shop: %v", err)
	}
	return shop
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, want, w.Body.String())
	}
}
