package controllers

import (
	"net/http"
	"securetrack-backend/models"
	"testing"
)

func TestCreatePurchaseEmbedsQRPayload(t *testing.T) {
	db := setupTestDB(t, t.Name())
	r := testRouter()
	shop := seedShop(t, db, "Alpha Traders")

	w := doJSON(t, r, "POST", "/api/purchases", map[string]interface{}{
		"shop_id":        shop.ID.String(),
		"serial_numbers": "SN1\n\nSN2\n  \nSN3",
		"product_name":   "Dome Camera",
		"category":       "Camera",
		"brand":          "Hikvision",
		"model_code":     "DS-2CE56",
		"quantity":       3,
		"unit_price":     1500,
		"purchase_date":  "2024-03-07",
		"paid_amount":    2000,
	})
	assertStatus(t, w, http.StatusCreated)

	var created models.PurchasedItem
	decodeBody(t, w, &created)

	if len(created.SerialNumbers) != 3 {
		t.Fatalf("serials = %v, want 3 entries with blanks dropped", created.SerialNumbers)
	}
	if created.SerialNumbers[0] != "SN1" || created.SerialNumbers[2] != "SN3" {
		t.Fatalf("serials parsed wrong: %v", created.SerialNumbers)
	}

	// remaining = 3*1500 - 2000, floored at 0
	if created.RemainingAmount != 2500 {
		t.Fatalf("remaining = %v, want 2500", created.RemainingAmount)
	}

	if created.QRCodeData == nil {
		t.Fatal("expected QR payload on created purchase")
	}
	if created.QRCodeData.ID != created.ID.String() {
		t.Fatalf("payload id = %q, want %q", created.QRCodeData.ID, created.ID)
	}
	if created.QRCodeData.ShopName != "Alpha Traders" {
		t.Fatalf("payload shop name = %q", created.QRCodeData.ShopName)
	}
	if created.QRCodeData.TotalAmount != 4500 {
		t.Fatalf("payload total = %v, want 4500", created.QRCodeData.TotalAmount)
	}

	// The payload round-trips through the stored column too.
	var reloaded models.PurchasedItem
	if err := db.First(&reloaded, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.QRCodeData == nil || reloaded.QRCodeData.ID != created.ID.String() {
		t.Fatalf("stored payload corrupted: %+v", reloaded.QRCodeData)
	}
}

func TestCreatePurchaseRejectsEmptySerials(t *testing.T) {
	db := setupTestDB(t, t.Name())
	r := testRouter()
	shop := seedShop(t, db, "Alpha Traders")

	w := doJSON(t, r, "POST", "/api/purchases", map[string]interface{}{
		"shop_id":        shop.ID.String(),
		"serial_numbers": "\n   \n\t\n",
		"product_name":   "Dome Camera",
		"quantity":       1,
		"unit_price":     1000,
	})
	assertStatus(t, w, http.StatusBadRequest)

	var count int64
	db.Model(&models.PurchasedItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no purchase persisted, got %d", count)
	}
}

func TestCreatePurchaseUnknownShop(t *testing.T) {
	setupTestDB(t, t.Name())
	r := testRouter()

	w := doJSON(t, r, "POST", "/api/purchases", map[string]interface{}{
		"shop_id":        "7f9f4c1e-9af2-4f47-9a39-df4f5d2a1b10",
		"serial_numbers": "SN1",
		"product_name":   "Dome Camera",
		"quantity":       1,
		"unit_price":     1000,
	})
	assertStatus(t, w, http.StatusBadRequest)
}

func TestUpdatePurchaseRecomputesRemainingKeepsQR(t *testing.T) {
	db := setupTestDB(t, t.Name())
	r := testRouter()
	shop := seedShop(t, db, "Alpha Traders")

	w := doJSON(t, r, "POST", "/api/purchases", map[string]interface{}{
		"shop_id":        shop.ID.String(),
		"serial_numbers": "SN1\nSN2",
		"product_name":   "Dome Camera",
		"quantity":       2,
		"unit_price":     1000,
		"paid_amount":    500,
	})
	assertStatus(t, w, http.StatusCreated)
	var created models.PurchasedItem
	decodeBody(t, w, &created)

	w = doJSON(t, r, "PUT", "/api/purchases/"+created.ID.String(), map[string]interface{}{
		"product_name": "Bullet Camera",
		"paid_amount":  1600,
	})
	assertStatus(t, w, http.StatusOK)

	var updated models.PurchasedItem
	if err := db.First(&updated, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if updated.ProductName != "Bullet Camera" {
		t.Fatalf("product name = %q", updated.ProductName)
	}
	if updated.RemainingAmount != 400 {
		t.Fatalf("remaining = %v, want 400", updated.RemainingAmount)
	}
	// Serials and the QR snapshot never change on edit.
	if len(updated.SerialNumbers) != 2 {
		t.Fatalf("serials changed: %v", updated.SerialNumbers)
	}
	if updated.QRCodeData == nil || updated.QRCodeData.ProductName != "Dome Camera" {
		t.Fatalf("QR snapshot was rewritten: %+v", updated.QRCodeData)
	}
}

func TestDeletePurchase(t *testing.T) {
	db := setupTestDB(t, t.Name())
	r := testRouter()
	shop := seedShop(t, db, "Alpha Traders")

	p := models.PurchasedItem{
		ShopID:        shop.ID,
		SerialNumbers: models.StringList{"SN1"},
		ProductName:   "Dome Camera",
		Quantity:      1,
		UnitPrice:     1000,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed purchase: %v", err)
	}

	w := doJSON(t, r, "DELETE", "/api/purchases/"+p.ID.String(), nil)
	assertStatus(t, w, http.StatusOK)

	var count int64
	db.Model(&models.PurchasedItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected purchase removed, got %d rows", count)
	}

	w = doJSON(t, r, "DELETE", "/api/purchases/"+p.ID.String(), nil)
	assertStatus(t, w, http.StatusNotFound)
}
