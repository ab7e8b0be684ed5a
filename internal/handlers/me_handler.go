package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/omnishop/omnishop-api/internal/httperr"
	"github.com/omnishop/omnishop-api/internal/middleware"
	"github.com/omnishop/omnishop-api/internal/models"
)

// DefaultDisplayName is the placeholder shown when a seller left the
// name blank.
const DefaultDisplayName = "Vendeur"

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	var seller models.Seller
	if err := h.db.First(&seller, "id = ?", sellerID).Error; err != nil {
		httperr.Internal(c, "seller_not_found", "Compte introuvable.")
		return
	}

	prefs := loadPreferences(h.db, sellerID)

	displayName := seller.FullName
	if displayName == "" {
		displayName = DefaultDisplayName
	}

	c.JSON(http.StatusOK, gin.H{
		"seller": gin.H{
			"id":           seller.ID,
			"full_name":    seller.FullName,
			"display_name": displayName,
			"email":        seller.Email,
		},
		"preferences": prefs,
	})
}

// DeleteMe removes the seller and everything they own. The dashboard
// gates this behind its own confirmation modal.
func (h *MeHandler) DeleteMe(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&models.Appointment{},
			&models.Order{},
			&models.Customer{},
			&models.Product{},
			&models.AuditLog{},
		} {
			if err := tx.Where("seller_id = ?", sellerID).Delete(m).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("seller_id = ?", sellerID).Delete(&models.SellerPreferences{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", sellerID).Delete(&models.Seller{}).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_account", "Impossible de supprimer le compte.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// loadPreferences tolerates a missing row: sellers created before the
// preferences table reads as defaults.
func loadPreferences(db *gorm.DB, sellerID string) models.SellerPreferences {
	var prefs models.SellerPreferences
	if err := db.First(&prefs, "seller_id = ?", sellerID).Error; err != nil {
		return models.DefaultPreferences(sellerID)
	}
	return prefs
}
