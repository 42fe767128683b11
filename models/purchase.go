package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList stores a list of strings as a JSON text column so the same
// schema works on postgres and the sqlite test driver. Serial containment
// search relies on the quoted-element representation (`LIKE '%"SN"%'`).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// PurchasedItem is one inbound stock acquisition from a shop, covering one or
// more serialized units at a shared unit price.
type PurchasedItem struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ShopID uuid.UUID `gorm:"type:uuid;index;not null" json:"shop_id"`

	SerialNumbers StringList `gorm:"type:text;not null" json:"serial_numbers"`
	ItemType      string     `json:"item_type"`
	ProductName   string     `json:"product_name"`
	Category      string     `json:"category"`
	Brand         string     `json:"brand"`
	ModelCode     string     `json:"model_code"`

	UnitPrice    float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	PurchaseDate time.Time `json:"purchase_date"`

	PaymentMethod   string  `json:"payment_method"`
	PaidAmount      float64 `gorm:"type:decimal(10,2);default:0.0" json:"paid_amount"`
	RemainingAmount float64 `gorm:"type:decimal(10,2);default:0.0" json:"remaining_amount"`
	Discount        float64 `gorm:"type:decimal(10,2);default:0.0" json:"discount"`

	QRCodeData *QRData `gorm:"type:text" json:"qr_code_data,omitempty"`

	Shop *Shop `gorm:"foreignKey:ShopID" json:"shop,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PurchasedItem) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
