package models

import "time"

// SellerPreferences is the typed replacement for the free-form metadata
// blob the dashboard used to hang off the auth session. One row per
// seller; a missing row reads as Defaults().
type SellerPreferences struct {
	SellerID string `gorm:"type:uuid;primaryKey" json:"seller_id"`

	OnboardingCompleted bool   `gorm:"default:false" json:"onboarding_completed"`
	SalesPlatform       string `gorm:"size:30" json:"sales_platform"`
	MainFocus           string `gorm:"size:30" json:"main_focus"`

	StoreName string `gorm:"size:100" json:"store_name"`
	StoreURL  string `gorm:"size:255" json:"store_url"`

	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	OrderNotifications bool `gorm:"default:true" json:"order_notifications"`
	StockNotifications bool `gorm:"default:true" json:"stock_notifications"`

	SchemaVersion int `gorm:"default:1" json:"schema_version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const PreferencesSchemaVersion = 1

func DefaultPreferences(sellerID string) SellerPreferences {
	return SellerPreferences{
		SellerID:           sellerID,
		StoreName:          "Ma Boutique",
		EmailNotifications: true,
		OrderNotifications: true,
		StockNotifications: true,
		SchemaVersion:      PreferencesSchemaVersion,
	}
}
