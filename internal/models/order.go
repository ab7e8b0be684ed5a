package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID string `gorm:"type:uuid;index;not null" json:"seller_id"`

	CustomerID *string   `gorm:"type:uuid;index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ProductName string  `gorm:"size:100;not null" json:"product_name"`
	Amount      float64 `json:"amount"`

	Status      string  `gorm:"size:20;default:'Processing'" json:"status"`
	TrackingURL *string `gorm:"size:500" json:"tracking_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
