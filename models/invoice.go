package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment status values derived from paid amount vs. total.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

type Invoice struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	// Store-assigned sequential display number, separate from the
	// human-readable invoice number.
	SerialNumber int64 `gorm:"index" json:"serial_number"`

	InvoiceNumber string    `gorm:"uniqueIndex;not null" json:"invoice_number"`
	InvoiceDate   time.Time `json:"invoice_date"`

	CustomerName     string `gorm:"not null" json:"customer_name"`
	CustomerID       string `json:"customer_id"`
	CustomerLocation string `json:"customer_location"`
	CustomerPhone    string `json:"customer_phone"`

	Subtotal float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Discount float64 `gorm:"type:decimal(10,2);default:0.0" json:"discount"`
	Tax      float64 `gorm:"type:decimal(10,2);default:0.0" json:"tax"`
	Total    float64 `gorm:"type:decimal(10,2);not null" json:"total"`

	PaidAmount      float64 `gorm:"type:decimal(10,2);default:0.0" json:"paid_amount"`
	RemainingAmount float64 `gorm:"type:decimal(10,2);default:0.0" json:"remaining_amount"`
	PaymentMethod   string  `json:"payment_method"`
	PaymentStatus   string  `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`

	Notes           string `json:"notes"`
	TermsConditions string `json:"terms_conditions"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"invoice_items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"invoice_id"`

	ItemName    string `gorm:"not null" json:"item_name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Brand       string `json:"brand"`
	ModelCode   string `json:"model_code"`

	UnitPrice float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity  int     `gorm:"default:1" json:"quantity"`
	// Frozen at the moment the line was added, never recomputed afterwards.
	LineTotal float64 `gorm:"type:decimal(10,2);not null" json:"line_total"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns the UUID and the next sequential display number. The
// MAX+1 assignment runs inside the caller's transaction and behaves the same
// on postgres and the sqlite test driver.
func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.SerialNumber == 0 {
		var max int64
		if err := tx.Model(&Invoice{}).Select("COALESCE(MAX(serial_number), 0)").Scan(&max).Error; err != nil {
			return err
		}
		i.SerialNumber = max + 1
	}
	return
}

func (i *InvoiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
