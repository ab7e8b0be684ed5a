package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/omnishop/omnishop-api/internal/httperr"
	"github.com/omnishop/omnishop-api/internal/middleware"
	"github.com/omnishop/omnishop-api/internal/models"
)

// Shipment statuses of the orders board.
var orderStatuses = map[string]bool{
	"Processing": true,
	"In Transit": true,
	"Delivered":  true,
	"Cancelled":  true,
}

type OrderHandler struct {
	db *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db}
}

// --------- Requests ---------

type OrderRequest struct {
	CustomerID  string  `json:"customer_id"`
	ProductName string  `json:"product_name" binding:"required,max=100"`
	Amount      float64 `json:"amount" binding:"min=0"`
	Status      string  `json:"status"`
	TrackingURL string  `json:"tracking_url"`
}

// ======================================================
// LIST (recent first)
// ======================================================

func (h *OrderHandler) List(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.Preload("Customer").Where("seller_id = ?", sellerID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {

		httperr.Internal(c, "failed_to_list_orders", "Impossible de charger les commandes.")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ======================================================
// CREATE
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = "Processing"
	}
	if !orderStatuses[status] {
		httperr.BadRequest(c, "invalid_status", "Statut de commande inconnu.")
		return
	}

	order := models.Order{
		SellerID:    sellerID,
		ProductName: strings.TrimSpace(req.ProductName),
		Amount:      req.Amount,
		Status:      status,
		TrackingURL: optional(req.TrackingURL),
	}

	if id := strings.TrimSpace(req.CustomerID); id != "" {
		var customer models.Customer
		if err := h.db.
			Where("id = ? AND seller_id = ?", id, sellerID).
			First(&customer).Error; err != nil {
			httperr.BadRequest(c, "customer_not_found", "Client introuvable.")
			return
		}
		order.CustomerID = &customer.ID
	}

	if err := h.db.Create(&order).Error; err != nil {
		httperr.Internal(c, "failed_to_create_order", "Impossible de créer la commande.")
		return
	}

	// Keep the customer's running counter in step. Best effort, not
	// transactional with the insert.
	if order.CustomerID != nil {
		h.db.Model(&models.Customer{}).
			Where("id = ?", *order.CustomerID).
			UpdateColumn("total_orders", gorm.Expr("total_orders + 1"))
	}

	c.JSON(http.StatusCreated, order)
}

// ======================================================
// UPDATE
// ======================================================

func (h *OrderHandler) Update(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)
	id := c.Param("id")

	var order models.Order
	if err := h.db.
		Where("id = ? AND seller_id = ?", id, sellerID).
		First(&order).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "order_not_found", "Commande introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_order", "Impossible de charger la commande.")
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	status := strings.TrimSpace(req.Status)
	if status != "" && !orderStatuses[status] {
		httperr.BadRequest(c, "invalid_status", "Statut de commande inconnu.")
		return
	}

	order.ProductName = strings.TrimSpace(req.ProductName)
	order.Amount = req.Amount
	if status != "" {
		order.Status = status
	}
	order.TrackingURL = optional(req.TrackingURL)

	if err := h.db.Save(&order).Error; err != nil {
		httperr.Internal(c, "failed_to_update_order", "Impossible d'enregistrer la commande.")
		return
	}

	c.JSON(http.StatusOK, order)
}

// ======================================================
// DELETE
// ======================================================

func (h *OrderHandler) Delete(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND seller_id = ?", id, sellerID).
		Delete(&models.Order{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_order", "Impossible de supprimer la commande.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "order_not_found", "Commande introuvable.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
