// controllers/shop.go
package controllers

import (
	"errors"
	"net/http"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"securetrack-backend/utils"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateShopInput defines the expected JSON structure for creating a shop
type CreateShopInput struct {
	ShopName string `json:"shop_name" binding:"required"`
	MobNo    string `json:"mob_no" binding:"required"`
}

// UpdateShopInput defines the expected JSON structure for updating a shop
type UpdateShopInput struct {
	ShopName *string `json:"shop_name"`
	MobNo    *string `json:"mob_no"`
}

// CreateShop creates a new vendor ledger entry
func CreateShop(c *gin.Context) {
	var input CreateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// binding:required rejects absent fields; whitespace-only still counts as empty
	if strings.TrimSpace(input.ShopName) == "" || strings.TrimSpace(input.MobNo) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Shop name and mobile number are required")
		return
	}

	shop := models.Shop{
		ShopName: strings.TrimSpace(input.ShopName),
		MobNo:    strings.TrimSpace(input.MobNo),
	}

	if err := config.DB.Create(&shop).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create shop")
		return
	}

	c.JSON(http.StatusCreated, shop)
}

// GetShops retrieves all shops
func GetShops(c *gin.Context) {
	var shops []models.Shop
	if err := config.DB.Order("created_at DESC").Find(&shops).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve shops")
		return
	}

	c.JSON(http.StatusOK, shops)
}

// GetShop retrieves a specific shop by ID
func GetShop(c *gin.Context) {
	shopUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shop ID format")
		return
	}

	var shop models.Shop
	if err := config.DB.Where("id = ?", shopUUID).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, shop)
}

// UpdateShop updates an existing shop
func UpdateShop(c *gin.Context) {
	shopUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shop ID format")
		return
	}

	var input UpdateShopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var shop models.Shop
	if err := config.DB.Where("id = ?", shopUUID).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ShopName != nil {
		if strings.TrimSpace(*input.ShopName) == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Shop name cannot be empty")
			return
		}
		shop.ShopName = strings.TrimSpace(*input.ShopName)
	}
	if input.MobNo != nil {
		if strings.TrimSpace(*input.MobNo) == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Mobile number cannot be empty")
			return
		}
		shop.MobNo = strings.TrimSpace(*input.MobNo)
	}

	if err := config.DB.Save(&shop).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update shop")
		return
	}

	c.JSON(http.StatusOK, shop)
}

// DeleteShop removes a shop and its dependent purchases. The cascade is
// issued explicitly inside one transaction; the hosted store this replaces
// handled it with a foreign key.
func DeleteShop(c *gin.Context) {
	shopUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shop ID format")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var shop models.Shop
	if err := tx.Where("id = ?", shopUUID).First(&shop).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Shop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("shop_id = ?", shop.ID).Delete(&models.PurchasedItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete shop purchases")
		return
	}

	if err := tx.Delete(&shop).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete shop")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Shop deleted successfully"})
}
