package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID string `gorm:"type:uuid;index;not null" json:"seller_id"`

	// Date-only, normalized "2006-01-02". Stored as text so range
	// queries and day grouping are plain string comparisons.
	AppointmentDate string `gorm:"size:10;index;not null" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`

	DurationMinutes  int     `gorm:"default:30" json:"duration_minutes"`
	Status           string  `gorm:"size:20;default:'Scheduled'" json:"status"`
	PotentialRevenue float64 `gorm:"default:0" json:"potential_revenue"`

	Location *string `gorm:"size:255" json:"location"`
	Notes    *string `gorm:"size:500" json:"notes"`

	// Weak references: "no client" and "no product" are valid.
	CustomerID *string   `gorm:"type:uuid;index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ProductID *string  `gorm:"type:uuid;index" json:"product_id"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
