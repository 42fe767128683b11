package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderTemplate holds the payment-due message sent for invoices with an
// outstanding balance. Placeholders [CustomerName], [InvoiceNumber] and
// [RemainingAmount] are substituted at send time.
type ReminderTemplate struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Type     string    `gorm:"type:varchar(20);not null" json:"type"` // payment_due
	Message  string    `gorm:"type:text;not null" json:"message"`
	IsActive bool      `gorm:"default:true" json:"is_active"`
	gorm.Model
}

// ReminderLog records one delivery attempt for one invoice.
type ReminderLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID    uuid.UUID `gorm:"type:uuid;index;not null" json:"invoice_id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"type:varchar(20)" json:"status"`  // sent, failed
	Channel      string    `gorm:"type:varchar(20)" json:"channel"` // whatsapp, sms
	ErrorMessage string    `gorm:"type:text" json:"error_message"`
	SentAt       time.Time `json:"sent_at"`
	gorm.Model
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}

func (r *ReminderTemplate) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
