package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/omnishop/omnishop-api/internal/httperr"
	"github.com/omnishop/omnishop-api/internal/middleware"
	"github.com/omnishop/omnishop-api/internal/models"
)

type PreferencesHandler struct {
	db *gorm.DB
}

func NewPreferencesHandler(db *gorm.DB) *PreferencesHandler {
	return &PreferencesHandler{db: db}
}

// --------- Requests ---------

type UpdatePreferencesRequest struct {
	FullName *string `json:"full_name,omitempty"`

	StoreName *string `json:"store_name,omitempty"`
	StoreURL  *string `json:"store_url,omitempty"`

	EmailNotifications *bool `json:"email_notifications,omitempty"`
	OrderNotifications *bool `json:"order_notifications,omitempty"`
	StockNotifications *bool `json:"stock_notifications,omitempty"`
}

type CompleteOnboardingRequest struct {
	SalesPlatform string `json:"sales_platform" binding:"required"`
	MainFocus     string `json:"main_focus" binding:"required"`
}

// The onboarding wizard's closed answer sets.

var salesPlatforms = map[string]bool{
	"whatsapp":  true,
	"snapchat":  true,
	"instagram": true,
	"tiktok":    true,
	"telegram":  true,
	"autre":     true,
}

var mainFocuses = map[string]bool{
	"stock":   true,
	"clients": true,
	"colis":   true,
	"tout":    true,
}

// --------- Handlers ---------

func (h *PreferencesHandler) Get(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)
	c.JSON(http.StatusOK, loadPreferences(h.db, sellerID))
}

func (h *PreferencesHandler) Update(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	prefs := loadPreferences(h.db, sellerID)

	if req.StoreName != nil {
		prefs.StoreName = strings.TrimSpace(*req.StoreName)
	}
	if req.StoreURL != nil {
		prefs.StoreURL = strings.TrimSpace(*req.StoreURL)
	}
	if req.EmailNotifications != nil {
		prefs.EmailNotifications = *req.EmailNotifications
	}
	if req.OrderNotifications != nil {
		prefs.OrderNotifications = *req.OrderNotifications
	}
	if req.StockNotifications != nil {
		prefs.StockNotifications = *req.StockNotifications
	}
	prefs.SchemaVersion = models.PreferencesSchemaVersion

	if err := h.db.Save(&prefs).Error; err != nil {
		httperr.Internal(c, "failed_to_update_preferences", "Impossible d'enregistrer les paramètres.")
		return
	}

	// The display name lives on the seller, not the preferences row.
	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if err := h.db.Model(&models.Seller{}).
			Where("id = ?", sellerID).
			Update("full_name", name).Error; err != nil {
			httperr.Internal(c, "failed_to_update_profile", "Impossible d'enregistrer le profil.")
			return
		}
	}

	c.JSON(http.StatusOK, prefs)
}

// CompleteOnboarding stores the wizard answers and marks onboarding
// done. Re-submitting is idempotent.
func (h *PreferencesHandler) CompleteOnboarding(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	var req CompleteOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	platform := strings.ToLower(strings.TrimSpace(req.SalesPlatform))
	focus := strings.ToLower(strings.TrimSpace(req.MainFocus))

	if !salesPlatforms[platform] {
		httperr.BadRequest(c, "invalid_sales_platform", "Canal de vente inconnu.")
		return
	}
	if !mainFocuses[focus] {
		httperr.BadRequest(c, "invalid_main_focus", "Besoin prioritaire inconnu.")
		return
	}

	prefs := loadPreferences(h.db, sellerID)
	prefs.OnboardingCompleted = true
	prefs.SalesPlatform = platform
	prefs.MainFocus = focus
	prefs.SchemaVersion = models.PreferencesSchemaVersion

	if err := h.db.Save(&prefs).Error; err != nil {
		httperr.Internal(c, "failed_to_complete_onboarding", "Impossible d'enregistrer l'onboarding.")
		return
	}

	c.JSON(http.StatusOK, prefs)
}
