// controllers/catalog.go
package controllers

import (
	"net/http"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"securetrack-backend/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

// CatalogInput is shared by category and brand additions
type CatalogInput struct {
	Name string `json:"name" binding:"required"`
}

// GetCategories lists all categories
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory adds a custom category. A name that already exists is not an
// error: the existing row is returned instead.
func CreateCategory(c *gin.Context) {
	var input CatalogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Name is required")
		return
	}

	var existing models.Category
	if err := config.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, existing)
		return
	}

	category := models.Category{Name: name, IsActive: true}
	if err := config.DB.Create(&category).Error; err != nil {
		// Lost a race with a concurrent insert of the same name.
		if err := config.DB.Where("name = ?", name).First(&existing).Error; err == nil {
			c.JSON(http.StatusOK, existing)
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetBrands lists all brands
func GetBrands(c *gin.Context) {
	var brands []models.Brand
	if err := config.DB.Order("name").Find(&brands).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve brands")
		return
	}
	c.JSON(http.StatusOK, brands)
}

// CreateBrand adds a custom brand with the same already-exists behavior as
// categories.
func CreateBrand(c *gin.Context) {
	var input CatalogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Name is required")
		return
	}

	var existing models.Brand
	if err := config.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, existing)
		return
	}

	brand := models.Brand{Name: name, IsActive: true}
	if err := config.DB.Create(&brand).Error; err != nil {
		if err := config.DB.Where("name = ?", name).First(&existing).Error; err == nil {
			c.JSON(http.StatusOK, existing)
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create brand")
		return
	}

	c.JSON(http.StatusCreated, brand)
}

// SeedCatalog inserts the default category and brand lists, keeping whatever
// is already there.
func SeedCatalog() {
	for _, name := range models.DefaultCategories {
		var existing models.Category
		if err := config.DB.Where("name = ?", name).First(&existing).Error; err != nil {
			config.DB.Create(&models.Category{Name: name, IsActive: true})
		}
	}
	for _, name := range models.DefaultBrands {
		var existing models.Brand
		if err := config.DB.Where("name = ?", name).First(&existing).Error; err != nil {
			config.DB.Create(&models.Brand{Name: name, IsActive: true})
		}
	}
}
