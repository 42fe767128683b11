package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shop struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	ShopName string `gorm:"not null" json:"shop_name"`
	MobNo    string `gorm:"not null" json:"mob_no"`

	Purchases []PurchasedItem `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE" json:"purchases,omitempty"`

	gorm.Model
}

func (s *Shop) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
