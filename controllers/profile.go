// controllers/profile.go
package controllers

import (
	"errors"
	"net/http"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"securetrack-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateProfileInput defines the editable business profile fields
type UpdateProfileInput struct {
	Name                  *string `json:"name"`
	Address               *string `json:"address"`
	Phone                 *string `json:"phone"`
	DefaultTerms          *string `json:"default_terms"`
	PaymentReminders      *bool   `json:"payment_reminders"`
	WhatsAppNotifications *bool   `json:"whatsapp_notifications"`
	SMSNotifications      *bool   `json:"sms_notifications"`
}

// GetProfile returns the business profile, creating the default row on first
// access.
func GetProfile(c *gin.Context) {
	profile, err := loadOrCreateProfile()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile edits the business profile
func UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	profile, err := loadOrCreateProfile()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.DefaultTerms != nil {
		profile.DefaultTerms = *input.DefaultTerms
	}
	if input.PaymentReminders != nil {
		profile.PaymentReminders = *input.PaymentReminders
	}
	if input.WhatsAppNotifications != nil {
		profile.WhatsAppNotifications = *input.WhatsAppNotifications
	}
	if input.SMSNotifications != nil {
		profile.SMSNotifications = *input.SMSNotifications
	}

	if err := config.DB.Save(profile).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func loadOrCreateProfile() (*models.BusinessProfile, error) {
	var profile models.BusinessProfile
	err := config.DB.First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.BusinessProfile{
			ID:               uuid.New(),
			Name:             "My Business",
			PaymentReminders: true,
			DefaultTerms: "• Prices are subject to change without prior notice.\n" +
				"• Payment is due within 30 days of invoice date.\n" +
				"• Warranty is provided as per manufacturer's terms.\n" +
				"• Installation charges may apply.",
		}
		if err := config.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
