// controllers/reminder.go
package controllers

import (
	"net/http"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"securetrack-backend/services"
	"securetrack-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetReminderLogs lists past payment reminder attempts, newest first
func GetReminderLogs(c *gin.Context) {
	var logs []models.ReminderLog
	if err := config.DB.Order("sent_at DESC").Limit(100).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// RunReminders triggers one reminder pass outside the daily schedule
func RunReminders(c *gin.Context) {
	go services.NewReminderService(config.DB).SendPaymentReminders()
	c.JSON(http.StatusAccepted, gin.H{"message": "Reminder run started"})
}
