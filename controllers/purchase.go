// controllers/purchase.go
package controllers

import (
	"errors"
	"net/http"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"securetrack-backend/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePurchaseInput defines the expected JSON structure for recording a
// purchase. SerialNumbers is the raw textarea block, one serial per line.
type CreatePurchaseInput struct {
	ShopID        uuid.UUID `json:"shop_id" binding:"required"`
	SerialNumbers string    `json:"serial_numbers" binding:"required"`
	ProductName   string    `json:"product_name" binding:"required"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	ModelCode     string    `json:"model_code"`
	Quantity      int       `json:"quantity" binding:"required,min=1"`
	UnitPrice     float64   `json:"unit_price" binding:"min=0"`
	PurchaseDate  string    `json:"purchase_date"` // YYYY-MM-DD, defaults to today
	PaymentMethod string    `json:"payment_method"`
	PaidAmount    float64   `json:"paid_amount" binding:"min=0"`
	Discount      float64   `json:"discount" binding:"min=0"`
}

// UpdatePurchaseInput defines the expected JSON structure for editing a
// purchase. The id and the serial number provenance are never altered.
type UpdatePurchaseInput struct {
	ProductName   *string  `json:"product_name"`
	Category      *string  `json:"category"`
	Brand         *string  `json:"brand"`
	ModelCode     *string  `json:"model_code"`
	Quantity      *int     `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice     *float64 `json:"unit_price" binding:"omitempty,min=0"`
	PurchaseDate  *string  `json:"purchase_date"`
	PaymentMethod *string  `json:"payment_method"`
	PaidAmount    *float64 `json:"paid_amount" binding:"omitempty,min=0"`
	Discount      *float64 `json:"discount" binding:"omitempty,min=0"`
}

// CreatePurchase records an inbound stock acquisition. The row id is
// generated before the insert so the QR payload can embed its own id and the
// whole write stays a single transactional insert.
func CreatePurchase(c *gin.Context) {
	var input CreatePurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serials := utils.ParseSerialNumbers(input.SerialNumbers)
	if len(serials) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter at least one serial number")
		return
	}

	var shop models.Shop
	if err := config.DB.Where("id = ?", input.ShopID).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	purchaseDate := time.Now()
	if input.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", input.PurchaseDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid purchase date, expected YYYY-MM-DD")
			return
		}
		purchaseDate = parsed
	}

	totalPrice := utils.LineTotal(input.UnitPrice, input.Quantity)
	remaining := utils.Remaining(utils.Total(totalPrice, input.Discount, 0), input.PaidAmount)

	purchaseID := uuid.New()
	qrData := models.QRData{
		ID:            purchaseID.String(),
		SerialNumbers: serials,
		ShopName:      shop.ShopName,
		Date:          purchaseDate.Format("2006-01-02"),
		Category:      input.Category,
		ItemType:      input.ProductName,
		ProductName:   input.ProductName,
		Brand:         input.Brand,
		ModelCode:     input.ModelCode,
		TotalAmount:   totalPrice,
	}

	purchase := models.PurchasedItem{
		ID:              purchaseID,
		ShopID:          shop.ID,
		SerialNumbers:   serials,
		ItemType:        input.ProductName,
		ProductName:     input.ProductName,
		Category:        input.Category,
		Brand:           input.Brand,
		ModelCode:       input.ModelCode,
		UnitPrice:       input.UnitPrice,
		Quantity:        input.Quantity,
		PurchaseDate:    purchaseDate,
		PaymentMethod:   input.PaymentMethod,
		PaidAmount:      input.PaidAmount,
		RemainingAmount: remaining,
		Discount:        input.Discount,
		QRCodeData:      &qrData,
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create purchase")
		return
	}

	tx.Commit()

	purchase.Shop = &shop
	c.JSON(http.StatusCreated, purchase)
}

// GetPurchases retrieves all purchases with their shops
func GetPurchases(c *gin.Context) {
	var purchases []models.PurchasedItem
	if err := config.DB.Preload("Shop").Order("created_at DESC").Find(&purchases).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve purchases")
		return
	}

	c.JSON(http.StatusOK, purchases)
}

// GetPurchase retrieves a specific purchase by ID
func GetPurchase(c *gin.Context) {
	purchaseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid purchase ID format")
		return
	}

	var purchase models.PurchasedItem
	if err := config.DB.Preload("Shop").Where("id = ?", purchaseUUID).First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Purchase not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, purchase)
}

// UpdatePurchase overwrites the mutable fields of a purchase and recomputes
// the remaining amount. The QR payload stays the encode-time snapshot.
func UpdatePurchase(c *gin.Context) {
	purchaseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid purchase ID format")
		return
	}

	var input UpdatePurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var purchase models.PurchasedItem
	if err := config.DB.Where("id = ?", purchaseUUID).First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Purchase not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ProductName != nil {
		purchase.ProductName = *input.ProductName
		purchase.ItemType = *input.ProductName
	}
	if input.Category != nil {
		purchase.Category = *input.Category
	}
	if input.Brand != nil {
		purchase.Brand = *input.Brand
	}
	if input.ModelCode != nil {
		purchase.ModelCode = *input.ModelCode
	}
	if input.Quantity != nil {
		purchase.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		purchase.UnitPrice = *input.UnitPrice
	}
	if input.PurchaseDate != nil {
		parsed, err := time.Parse("2006-01-02", *input.PurchaseDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid purchase date, expected YYYY-MM-DD")
			return
		}
		purchase.PurchaseDate = parsed
	}
	if input.PaymentMethod != nil {
		purchase.PaymentMethod = *input.PaymentMethod
	}
	if input.PaidAmount != nil {
		purchase.PaidAmount = *input.PaidAmount
	}
	if input.Discount != nil {
		purchase.Discount = *input.Discount
	}

	totalPrice := utils.LineTotal(purchase.UnitPrice, purchase.Quantity)
	purchase.RemainingAmount = utils.Remaining(utils.Total(totalPrice, purchase.Discount, 0), purchase.PaidAmount)

	if err := config.DB.Save(&purchase).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update purchase")
		return
	}

	c.JSON(http.StatusOK, purchase)
}

// DeletePurchase removes a purchase; nothing depends on it
func DeletePurchase(c *gin.Context) {
	purchaseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid purchase ID format")
		return
	}

	result := config.DB.Where("id = ?", purchaseUUID).Delete(&models.PurchasedItem{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete purchase")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Purchase not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Purchase deleted successfully"})
}
