// controllers/quotation.go
package controllers

import (
	"net/http"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"securetrack-backend/utils"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// QuotationInput mirrors the invoice input; quotations share its computation.
type QuotationInput struct {
	QuotationDate    string             `json:"quotation_date"` // YYYY-MM-DD, defaults to today
	CustomerName     string             `json:"customer_name" binding:"required"`
	CustomerLocation string             `json:"customer_location"`
	CustomerPhone    string             `json:"customer_phone"`
	Items            []InvoiceItemInput `json:"items" binding:"required,min=1,dive"`
	Discount         float64            `json:"discount" binding:"min=0"`
	Tax              float64            `json:"tax" binding:"min=0"`
	Notes            string             `json:"notes"`
	TermsConditions  string             `json:"terms_conditions"`
}

// PreviewQuotation computes a print-ready quotation. Nothing is ever written
// to the store on this path; the document exists only in the response.
func PreviewQuotation(c *gin.Context) {
	var input QuotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if strings.TrimSpace(input.CustomerName) == "" || len(input.Items) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter customer name and add at least one item")
		return
	}

	quotationDate := time.Now()
	if input.QuotationDate != "" {
		parsed, err := time.Parse("2006-01-02", input.QuotationDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid quotation date, expected YYYY-MM-DD")
			return
		}
		quotationDate = parsed
	}

	items, subtotal := buildInvoiceItems(input.Items)
	total := utils.Total(subtotal, input.Discount, input.Tax)

	terms := input.TermsConditions
	if terms == "" {
		var profile models.BusinessProfile
		if err := config.DB.First(&profile).Error; err == nil {
			terms = profile.DefaultTerms
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"quotation_number":  "QT-" + quotationDate.Format("20060102") + "-" + time.Now().Format("1504"),
		"quotation_date":    quotationDate.Format("2006-01-02"),
		"customer_name":     strings.TrimSpace(input.CustomerName),
		"customer_location": input.CustomerLocation,
		"customer_phone":    input.CustomerPhone,
		"items":             items,
		"subtotal":          subtotal,
		"discount":          input.Discount,
		"tax":               input.Tax,
		"total":             total,
		"notes":             input.Notes,
		"terms_conditions":  terms,
	})
}
