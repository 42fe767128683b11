package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category and Brand are lookup tables behind the purchase and invoice forms.
// Both start from a fixed seed list and accept custom additions; inserting a
// name that already exists is answered with the existing row.

type Category struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"uniqueIndex;not null" json:"name"`
	IsActive bool      `gorm:"default:true" json:"is_active"`
}

type Brand struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"uniqueIndex;not null" json:"name"`
	IsActive bool      `gorm:"default:true" json:"is_active"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

func (b *Brand) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// Seed lists from the purchase and invoice forms.
var (
	DefaultCategories = []string{"Camera", "DVR", "NVR", "Cable", "Power Supply", "Accessory", "Connector", "Hard Disk", "Other"}
	DefaultBrands     = []string{"Hikvision", "Dahua", "CP Plus", "Uniview", "Samsung", "Honeywell", "Bosch", "Other"}
	PaymentMethods    = []string{"Cash", "Bank Transfer", "JazzCash", "EasyPaisa", "Credit"}
)
