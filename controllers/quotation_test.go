package controllers

import (
	"net/http"
	"securetrack-backend/models"
	"strings"
	"testing"
)

func TestPreviewQuotationComputesTotals(t *testing.T) {
	db := setupTestDB(t, t.Name())
	r := testRouter()

	w := doJSON(t, r, "POST", "/api/quotations/preview", map[string]interface{}{
		"customer_name":  "Karim",
		"quotation_date": "2024-03-07",
		"items": []map[string]interface{}{
			{"item_name": "Dome Camera", "unit_price": 1200, "quantity": 2},
			{"item_name": "DVR 4ch", "unit_price": 300, "quantity": 1},
		},
		"discount": 300,
		"tax":      100,
	})
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		QuotationNumber string               `json:"quotation_number"`
		QuotationDate   string               `json:"quotation_date"`
		Items           []models.InvoiceItem `json:"items"`
		Subtotal        float64              `json:"subtotal"`
		Total           float64              `json:"total"`
	}
	decodeBody(t, w, &resp)

	if !strings.HasPrefix(resp.QuotationNumber, "QT-20240307-") {
		t.Fatalf("quotation number = %q", resp.QuotationNumber)
	}
	if resp.QuotationDate != "2024-03-07" {
		t.Fatalf("quotation date = %q", resp.QuotationDate)
	}
	if resp.Subtotal != 2700 || resp.Total != 2500 {
		t.Fatalf("totals = %v / %v, want 2700 / 2500", resp.Subtotal, resp.Total)
	}
	if len(resp.Items) != 2 || resp.Items[0].LineTotal != 2400 {
		t.Fatalf("items = %+v", resp.Items)
	}

	// A quotation never touches the invoice table.
	var count int64
	db.Model(&models.Invoice{}).Count(&count)
	if count != 0 {
		t.Fatalf("invoice rows = %d, want 0 after preview", count)
	}
}

func TestPreviewQuotationFallsBackToProfileTerms(t *testing.T) {
	db := setupTestDB(t, t.Name())
	r := testRouter()

	profile := models.BusinessProfile{Name: "SecureTrack", DefaultTerms: "Goods once sold are not returnable."}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	w := doJSON(t, r, "POST", "/api/quotations/preview", map[string]interface{}{
		"customer_name": "Karim",
		"items": []map[string]interface{}{
			{"item_name": "Dome Camera", "unit_price": 1200, "quantity": 1},
		},
	})
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		TermsConditions string `json:"terms_conditions"`
	}
	decodeBody(t, w, &resp)
	if resp.TermsConditions != profile.DefaultTerms {
		t.Fatalf("terms = %q, want profile default", resp.TermsConditions)
	}
}

func TestPreviewQuotationRequiresCustomerAndItems(t *testing.T) {
	setupTestDB(t, t.Name())
	r := testRouter()

	w := doJSON(t, r, "POST", "/api/quotations/preview", map[string]interface{}{
		"customer_name": "   ",
		"items": []map[string]interface{}{
			{"item_name": "Dome Camera", "unit_price": 1200, "quantity": 1},
		},
	})
	assertStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, r, "POST", "/api/quotations/preview", map[string]interface{}{
		"customer_name": "Karim",
		"items":         []map[string]interface{}{},
	})
	assertStatus(t, w, http.StatusBadRequest)
}
