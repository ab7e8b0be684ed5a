package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/omnishop/omnishop-api/internal/httperr"
	"github.com/omnishop/omnishop-api/internal/httpresp"
	"github.com/omnishop/omnishop-api/internal/middleware"
	"github.com/omnishop/omnishop-api/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// --------- Requests ---------

type CustomerRequest struct {
	FullName        string `json:"full_name" binding:"required,max=100"`
	WhatsappNumber  string `json:"whatsapp_number"`
	InstagramHandle string `json:"instagram_handle"`
	Address         string `json:"address"`
}

// ======================================================
// LIST
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("seller_id = ?", sellerID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR whatsapp_number LIKE ? OR LOWER(instagram_handle) LIKE ?",
			like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.
		Order("full_name ASC").
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customers", "Impossible de charger les clients.")
		return
	}

	httpresp.List(c, customers)
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	customer := models.Customer{
		SellerID:        sellerID,
		FullName:        strings.TrimSpace(req.FullName),
		WhatsappNumber:  optional(req.WhatsappNumber),
		InstagramHandle: optional(req.InstagramHandle),
		Address:         optional(req.Address),
		TotalOrders:     0,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Impossible de créer le client.")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// ======================================================
// UPDATE
// ======================================================

func (h *CustomerHandler) Update(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND seller_id = ?", id, sellerID).
		First(&customer).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Client introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Impossible de charger le client.")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	customer.FullName = strings.TrimSpace(req.FullName)
	customer.WhatsappNumber = optional(req.WhatsappNumber)
	customer.InstagramHandle = optional(req.InstagramHandle)
	customer.Address = optional(req.Address)

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Impossible d'enregistrer le client.")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// ======================================================
// DELETE
// ======================================================

func (h *CustomerHandler) Delete(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND seller_id = ?", id, sellerID).
		Delete(&models.Customer{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Impossible de supprimer le client.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "customer_not_found", "Client introuvable.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// optional maps an empty form field to NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
