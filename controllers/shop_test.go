package controllers

import (
	"net/http"
	"securetrack-backend/models"
	"testing"
)

func TestCreateShopValidation(t *testing.T) {
	db := setupTestDB(t, t.Name())
	r := testRouter()

	// Missing mobile number
	w := doJSON(t, r, "POST", "/api/shops", map[string]interface{}{"shop_name": "Alpha Traders"})
	assertStatus(t, w, http.StatusBadRequest)

	// Whitespace-only name
	w = doJSON(t, r, "POST", "/api/shops", map[string]interface{}{"shop_name": "   ", "mob_no": "0300-1234567"})
	assertStatus(t, w, http.StatusBadRequest)

	var count int64
	db.Model(&models.Shop{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no shops persisted, got %d", count)
	}

	w = doJSON(t, r, "POST", "/api/shops", map[string]interface{}{"shop_name": "Alpha Traders", "mob_no": "0300-1234567"})
	assertStatus(t, w, http.StatusCreated)

	var shop models.Shop
	decodeBody(t, w, &shop)
	if shop.ShopName != "Alpha Traders" || shop.MobNo != "0300-1234567" {
		t.Fatalf("unexpected shop: %+v", shop)
	}
}

func TestUpdateShop(t *testing.T) {
	db := setupTestDB(t, t.Name())
	r := testRouter()
	shop := seedShop(t, db, "Alpha Traders")

	w := doJSON(t, r, "PUT", "/api/shops/"+shop.ID.String(), map[string]interface{}{"shop_name": "Beta Traders"})
	assertStatus(t, w, http.StatusOK)

	var updated models.Shop
	if err := db.First(&updated, "id = ?", shop.ID).Error; err != nil {
		t.Fatalf("reload shop: %v", err)
	}
	if updated.ShopName != "Beta Traders" {
		t.Fatalf("shop name = %q, want Beta Traders", updated.ShopName)
	}
	if updated.MobNo != shop.MobNo {
		t.Fatalf("mob no changed unexpectedly: %q", updated.MobNo)
	}
}

func TestDeleteShopCascadesPurchases(t *testing.T) {
	db := setupTestDB(t, t.Name())
	r := testRouter()
	shop := seedShop(t, db, "Alpha Traders")
	other := seedShop(t, db, "Beta Traders")

	for _, s := range []models.Shop{shop, other} {
		p := models.PurchasedItem{
			ShopID:        s.ID,
			SerialNumbers: models.StringList{"SN-" + s.ShopName},
			ProductName:   "Dome Camera",
			Quantity:      1,
			UnitPrice:     1000,
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed purchase: %v", err)
		}
	}

	w := doJSON(t, r, "DELETE", "/api/shops/"+shop.ID.String(), nil)
	assertStatus(t, w, http.StatusOK)

	var remaining int64
	db.Model(&models.PurchasedItem{}).Count(&remaining)
	if remaining != 1 {
		t.Fatalf("expected only the other shop's purchase to survive, got %d", remaining)
	}

	var orphans int64
	db.Model(&models.PurchasedItem{}).Where("shop_id = ?", shop.ID).Count(&orphans)
	if orphans != 0 {
		t.Fatalf("expected no purchases left for deleted shop, got %d", orphans)
	}
}

func TestDeleteShopNotFound(t *testing.T) {
	setupTestDB(t, t.Name())
	r := testRouter()

	w := doJSON(t, r, "DELETE", "/api/shops/7f9f4c1e-9af2-4f47-9a39-df4f5d2a1b10", nil)
	assertStatus(t, w, http.StatusNotFound)
}
