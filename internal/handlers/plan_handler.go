package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omnishop/omnishop-api/internal/billing"
	"github.com/omnishop/omnishop-api/internal/httperr"
	"github.com/omnishop/omnishop-api/internal/middleware"
)

type PlanHandler struct {
	checkout *billing.Checkout
}

func NewPlanHandler(checkout *billing.Checkout) *PlanHandler {
	return &PlanHandler{checkout: checkout}
}

// List is public: the pricing page renders before sign-up.
func (h *PlanHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": billing.Plans()})
}

// ======================================================
// CHECKOUT
// ======================================================

// Checkout creates a payment preference for a paid plan and returns
// the redirect URL.
func (h *PlanHandler) Checkout(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	plan, ok := billing.PlanByID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "plan_not_found", "Offre introuvable.")
		return
	}

	if plan.PriceMonthly == 0 {
		httperr.BadRequest(c, "plan_is_free", "Cette offre ne nécessite pas de paiement.")
		return
	}

	if !h.checkout.Enabled() {
		httperr.Write(c, http.StatusServiceUnavailable,
			"checkout_disabled", "Le paiement en ligne n'est pas disponible.")
		return
	}

	initPoint, err := h.checkout.PlanPreference(c.Request.Context(), plan, sellerID)
	if err != nil {
		httperr.Internal(c, "checkout_failed", "Impossible de démarrer le paiement.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":         plan.ID,
		"checkout_url": initPoint,
	})
}
