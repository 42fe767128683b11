// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"securetrack-backend/utils"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceItemInput defines the structure for one billed line
type InvoiceItemInput struct {
	ItemName    string  `json:"item_name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	ModelCode   string  `json:"model_code"`
	UnitPrice   float64 `json:"unit_price" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	InvoiceNumber    string             `json:"invoice_number"`
	InvoiceDate      string             `json:"invoice_date"` // YYYY-MM-DD, defaults to today
	CustomerName     string             `json:"customer_name" binding:"required"`
	CustomerID       string             `json:"customer_id"`
	CustomerLocation string             `json:"customer_location"`
	CustomerPhone    string             `json:"customer_phone"`
	Items            []InvoiceItemInput `json:"items" binding:"required,min=1,dive"`
	Discount         float64            `json:"discount" binding:"min=0"`
	Tax              float64            `json:"tax" binding:"min=0"`
	PaidAmount       float64            `json:"paid_amount" binding:"min=0"`
	PaymentMethod    string             `json:"payment_method"`
	Notes            string             `json:"notes"`
	TermsConditions  string             `json:"terms_conditions"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an invoice
type UpdateInvoiceInput struct {
	InvoiceDate      *string             `json:"invoice_date"`
	CustomerName     *string             `json:"customer_name"`
	CustomerLocation *string             `json:"customer_location"`
	CustomerPhone    *string             `json:"customer_phone"`
	Items            *[]InvoiceItemInput `json:"items"`
	Discount         *float64            `json:"discount" binding:"omitempty,min=0"`
	Tax              *float64            `json:"tax" binding:"omitempty,min=0"`
	PaidAmount       *float64            `json:"paid_amount" binding:"omitempty,min=0"`
	PaymentMethod    *string             `json:"payment_method"`
	Notes            *string             `json:"notes"`
	TermsConditions  *string             `json:"terms_conditions"`
}

// buildInvoiceItems freezes line totals at add time.
func buildInvoiceItems(inputs []InvoiceItemInput) ([]models.InvoiceItem, float64) {
	var subtotal float64
	items := make([]models.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		lineTotal := utils.LineTotal(in.UnitPrice, in.Quantity)
		subtotal += lineTotal
		items = append(items, models.InvoiceItem{
			ItemName:    in.ItemName,
			Description: in.Description,
			Category:    in.Category,
			Brand:       in.Brand,
			ModelCode:   in.ModelCode,
			UnitPrice:   in.UnitPrice,
			Quantity:    in.Quantity,
			LineTotal:   lineTotal,
		})
	}
	return items, subtotal
}

// CreateInvoice creates a new invoice with its line items in one transaction
func CreateInvoice(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if strings.TrimSpace(input.CustomerName) == "" || len(input.Items) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter customer name and add at least one item")
		return
	}

	invoiceDate := time.Now()
	if input.InvoiceDate != "" {
		parsed, err := time.Parse("2006-01-02", input.InvoiceDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice date, expected YYYY-MM-DD")
			return
		}
		invoiceDate = parsed
	}

	items, subtotal := buildInvoiceItems(input.Items)
	total := utils.Total(subtotal, input.Discount, input.Tax)
	remaining := utils.Remaining(total, input.PaidAmount)
	status := utils.PaymentStatus(input.PaidAmount, total)

	invoiceNumber := input.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = utils.GenerateInvoiceNumber(time.Now())
	}
	customerID := input.CustomerID
	if customerID == "" {
		customerID = utils.GenerateCustomerID(time.Now())
	}

	invoice := models.Invoice{
		InvoiceNumber:    invoiceNumber,
		InvoiceDate:      invoiceDate,
		CustomerName:     strings.TrimSpace(input.CustomerName),
		CustomerID:       customerID,
		CustomerLocation: input.CustomerLocation,
		CustomerPhone:    input.CustomerPhone,
		Subtotal:         subtotal,
		Discount:         input.Discount,
		Tax:              input.Tax,
		Total:            total,
		PaidAmount:       input.PaidAmount,
		RemainingAmount:  remaining,
		PaymentMethod:    input.PaymentMethod,
		PaymentStatus:    status,
		Notes:            input.Notes,
		TermsConditions:  input.TermsConditions,
		Items:            items,
	}

	if err := createInvoiceTx(&invoice); err != nil {
		// The timestamp-based number is not unique by construction: retry
		// once with a random suffix before giving up.
		if input.InvoiceNumber == "" {
			invoice.InvoiceNumber = invoiceNumber + "-" + utils.GenerateRandomString(4)
			if err := createInvoiceTx(&invoice); err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
				return
			}
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
			return
		}
	}

	c.JSON(http.StatusCreated, invoice)
}

func createInvoiceTx(invoice *models.Invoice) error {
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(invoice).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// GetInvoices retrieves all invoices with their items
func GetInvoices(c *gin.Context) {
	var invoices []models.Invoice
	if err := config.DB.Preload("Items").Order("created_at DESC").Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice by ID
func GetInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Items").Where("id = ?", invoiceUUID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice edits an invoice. When the item set changes the old lines are
// deleted and the new set reinserted; the whole edit, totals included, runs
// inside a single transaction so a failure cannot leave the invoice and its
// items out of step.
func UpdateInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Items != nil && len(*input.Items) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "An invoice needs at least one item")
		return
	}
	if input.CustomerName != nil && strings.TrimSpace(*input.CustomerName) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer name cannot be empty")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Preload("Items").Where("id = ?", invoiceUUID).First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.InvoiceDate != nil {
		parsed, err := time.Parse("2006-01-02", *input.InvoiceDate)
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice date, expected YYYY-MM-DD")
			return
		}
		invoice.InvoiceDate = parsed
	}
	if input.CustomerName != nil {
		invoice.CustomerName = strings.TrimSpace(*input.CustomerName)
	}
	if input.CustomerLocation != nil {
		invoice.CustomerLocation = *input.CustomerLocation
	}
	if input.CustomerPhone != nil {
		invoice.CustomerPhone = *input.CustomerPhone
	}
	if input.Discount != nil {
		invoice.Discount = *input.Discount
	}
	if input.Tax != nil {
		invoice.Tax = *input.Tax
	}
	if input.PaidAmount != nil {
		invoice.PaidAmount = *input.PaidAmount
	}
	if input.PaymentMethod != nil {
		invoice.PaymentMethod = *input.PaymentMethod
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}
	if input.TermsConditions != nil {
		invoice.TermsConditions = *input.TermsConditions
	}

	if input.Items != nil {
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing items")
			return
		}

		newItems, subtotal := buildInvoiceItems(*input.Items)
		for i := range newItems {
			newItems[i].InvoiceID = invoice.ID
		}
		if err := tx.Create(&newItems).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to insert items")
			return
		}
		invoice.Items = newItems
		invoice.Subtotal = subtotal
	}

	// Derived fields are recomputed on every persisted change.
	invoice.Total = utils.Total(invoice.Subtotal, invoice.Discount, invoice.Tax)
	invoice.RemainingAmount = utils.Remaining(invoice.Total, invoice.PaidAmount)
	invoice.PaymentStatus = utils.PaymentStatus(invoice.PaidAmount, invoice.Total)

	if err := tx.Omit("Items").Save(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice and its items
func DeleteInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Where("id = ?", invoiceUUID).First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice items")
		return
	}

	if err := tx.Delete(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
