package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fiche client du vendeur, sans login
type Customer struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID string `gorm:"type:uuid;index;not null" json:"seller_id"`

	FullName        string  `gorm:"size:100;not null" json:"full_name"`
	WhatsappNumber  *string `gorm:"size:30" json:"whatsapp_number"`
	InstagramHandle *string `gorm:"size:50" json:"instagram_handle"`
	Address         *string `gorm:"size:255" json:"address"`

	TotalOrders int `gorm:"default:0" json:"total_orders"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
