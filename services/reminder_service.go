// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"securetrack-backend/models"
	"securetrack-backend/utils"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

const reminderCooldown = 7 * 24 * time.Hour

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendPaymentReminders()
	})

	c.Start()
	log.Println("Payment reminder scheduler started")
}

// SendPaymentReminders messages every customer whose invoice still has an
// outstanding balance, at most once per invoice per cooldown window.
func (s *ReminderService) SendPaymentReminders() {
	log.Println("Starting payment reminder processing...")

	var profile models.BusinessProfile
	if err := s.db.First(&profile).Error; err == nil && !profile.PaymentReminders {
		log.Println("Payment reminders are disabled")
		return
	}

	template := s.activeTemplate()

	invoices, err := s.dueInvoices()
	if err != nil {
		log.Printf("Failed to fetch due invoices: %v", err)
		return
	}

	for _, invoice := range invoices {
		s.remindInvoice(invoice, template)
	}

	log.Println("Payment reminder processing completed")
}

// dueInvoices returns unpaid invoices with a phone number that have not been
// reminded within the cooldown window.
func (s *ReminderService) dueInvoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.Where("remaining_amount > 0 AND payment_status IN ? AND customer_phone <> ''",
		[]string{models.PaymentStatusPending, models.PaymentStatusPartial}).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-reminderCooldown)
	due := make([]models.Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		var recent int64
		s.db.Model(&models.ReminderLog{}).
			Where("invoice_id = ? AND status = ? AND sent_at > ?", invoice.ID, "sent", cutoff).
			Count(&recent)
		if recent == 0 {
			due = append(due, invoice)
		}
	}
	return due, nil
}

func (s *ReminderService) activeTemplate() models.ReminderTemplate {
	var template models.ReminderTemplate
	if err := s.db.Where("type = ? AND is_active = true", "payment_due").First(&template).Error; err != nil {
		template = models.ReminderTemplate{
			Type:    "payment_due",
			Message: "Hi [CustomerName], a friendly reminder that invoice [InvoiceNumber] has an outstanding balance of [RemainingAmount]. Thank you!",
		}
	}
	return template
}

// RenderReminderMessage substitutes the template placeholders for one invoice.
func RenderReminderMessage(template string, invoice models.Invoice) string {
	msg := strings.ReplaceAll(template, "[CustomerName]", invoice.CustomerName)
	msg = strings.ReplaceAll(msg, "[InvoiceNumber]", invoice.InvoiceNumber)
	msg = strings.ReplaceAll(msg, "[RemainingAmount]", fmt.Sprintf("%.2f", invoice.RemainingAmount))
	return msg
}

// remindInvoice sends one reminder and logs the attempt whatever the outcome.
func (s *ReminderService) remindInvoice(invoice models.Invoice, template models.ReminderTemplate) {
	if !utils.ValidatePhone(invoice.CustomerPhone) {
		log.Printf("Invoice %s: customer phone %q not deliverable, skipping", invoice.InvoiceNumber, invoice.CustomerPhone)
		return
	}

	message := RenderReminderMessage(template.Message, invoice)

	// WhatsApp for E.164 numbers, SMS otherwise
	channel := "sms"
	to := invoice.CustomerPhone
	if strings.HasPrefix(invoice.CustomerPhone, "+") {
		to = "whatsapp:" + invoice.CustomerPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	status := "sent"
	errMsg := ""
	if _, err := s.client.Api.CreateMessage(params); err != nil {
		status = "failed"
		errMsg = err.Error()
		log.Printf("Invoice %s: reminder send failed: %v", invoice.InvoiceNumber, err)
	}

	logEntry := models.ReminderLog{
		InvoiceID:    invoice.ID,
		CustomerName: invoice.CustomerName,
		Phone:        invoice.CustomerPhone,
		Message:      message,
		Status:       status,
		Channel:      channel,
		ErrorMessage: errMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&logEntry).Error; err != nil {
		log.Printf("Invoice %s: failed to log reminder: %v", invoice.InvoiceNumber, err)
	}
}
