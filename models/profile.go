package models

import (
	"github.com/google/uuid"
)

// BusinessProfile is a single-row record describing the business itself. It
// feeds the header of printed invoices/quotations, the default terms block on
// new invoices, and the payment reminder toggles.
type BusinessProfile struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`

	DefaultTerms string `gorm:"type:text" json:"default_terms"`

	PaymentReminders      bool `gorm:"default:true" json:"payment_reminders"`
	WhatsAppNotifications bool `gorm:"default:false" json:"whatsapp_notifications"`
	SMSNotifications      bool `gorm:"default:false" json:"sms_notifications"`
}
