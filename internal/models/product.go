package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID string `gorm:"type:uuid;index;not null" json:"seller_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description *string `gorm:"size:500" json:"description"`

	Price         float64 `json:"price"`
	StockQuantity int     `gorm:"default:0" json:"stock_quantity"`

	ImageURL *string `gorm:"size:500" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
