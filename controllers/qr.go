// controllers/qr.go
package controllers

import (
	"errors"
	"net/http"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"securetrack-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// ScanInput carries the raw text read from a QR symbol.
type ScanInput struct {
	Data string `json:"data" binding:"required"`
}

// GetPurchaseQR renders the stored QR payload of a purchase as a PNG symbol
// (error correction level M, 256px, matching the generator the symbol was
// originally printed from).
func GetPurchaseQR(c *gin.Context) {
	purchaseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid purchase ID format")
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

	if purchase.QRCodeData == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Purchase has no QR payload")
		return
	}

	payload, err := purchase.QRCodeData.Encode()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to encode QR payload")
		return
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render QR code")
		return
	}

	c.Header("Content-Disposition", `inline; filename="qr-`+purchase.ID.String()[:8]+`.png"`)
	c.Data(http.StatusOK, "image/png", png)
}

// ScanQR decodes scanned text and looks up the authoritative record by the
// embedded id. A payload that fails the strict parse never reaches the store.
// When the record is gone, the frozen snapshot is all that can be shown, so
// it rides along with the not-found answer.
func ScanQR(c *gin.Context) {
	var input ScanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	scanned, err := models.DecodeQRData(input.Data)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid QR code data format")
		return
	}

	var purchase models.PurchasedItem
	if err := config.DB.Preload("Shop").Where("id = ?", scanned.ID).First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Purchase not found",
				"scanned": scanned,
			})
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scanned":  scanned,
		"purchase": purchase,
	})
}
