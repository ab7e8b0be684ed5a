package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omnishop/omnishop-api/internal/dto"
	"github.com/omnishop/omnishop-api/internal/httperr"
	"github.com/omnishop/omnishop-api/internal/httpresp"
	"github.com/omnishop/omnishop-api/internal/images"
	"github.com/omnishop/omnishop-api/internal/middleware"
	"github.com/omnishop/omnishop-api/internal/models"
	"github.com/omnishop/omnishop-api/internal/storage"
)

const maxImageUploadBytes = 8 << 20

type ProductHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewProductHandler(db *gorm.DB, imageStore *storage.ImageStore) *ProductHandler {
	return &ProductHandler{db: db, images: imageStore}
}

// --------- Requests ---------

type ProductRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"min=0"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
	ImageURL      string  `json:"image_url"`
}

// --------- Stock status ---------

type StockStatus struct {
	Label      string `json:"label"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

// stockStatus derives the inventory badge from the quantity thresholds
// the dashboard uses.
func stockStatus(stock int) StockStatus {
	switch {
	case stock == 0:
		return StockStatus{"Rupture", "bg-red-500/15", "text-red-500", "border-red-500/20"}
	case stock < 10:
		return StockStatus{"Critique", "bg-orange-500/15", "text-orange-500", "border-orange-500/20"}
	case stock < 50:
		return StockStatus{"Faible", "bg-yellow-500/15", "text-yellow-500", "border-yellow-500/20"}
	default:
		return StockStatus{"En stock", "bg-green-500/15", "text-green-500", "border-green-500/20"}
	}
}

type productView struct {
	models.Product
	StockStatus StockStatus `json:"stock_status"`
}

// ======================================================
// LIST
// ======================================================

func (h *ProductHandler) List(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("seller_id = ?", sellerID)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var products []models.Product
	if err := q.
		Order("name ASC").
		Find(&products).Error; err != nil {

		httperr.Internal(c, "failed_to_list_products", "Impossible de charger l'inventaire.")
		return
	}

	views := make([]productView, len(products))
	for i, p := range products {
		views[i] = productView{Product: p, StockStatus: stockStatus(p.StockQuantity)}
	}

	httpresp.List(c, views)
}

// Selector feeds the appointment form: only products still in stock.
func (h *ProductHandler) Selector(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	var products []models.Product
	if err := h.db.
		Select("id", "name", "price").
		Where("seller_id = ? AND stock_quantity > 0", sellerID).
		Order("name ASC").
		Find(&products).Error; err != nil {

		httperr.Internal(c, "failed_to_list_products", "Impossible de charger les produits.")
		return
	}

	options := make([]dto.ProductSummary, len(products))
	for i, p := range products {
		options[i] = dto.ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price}
	}

	c.JSON(http.StatusOK, options)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *ProductHandler) Create(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	product := models.Product{
		SellerID:      sellerID,
		Name:          strings.TrimSpace(req.Name),
		Description:   optional(req.Description),
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      optional(req.ImageURL),
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Impossible de créer le produit.")
		return
	}

	c.JSON(http.StatusCreated, productView{Product: product, StockStatus: stockStatus(product.StockQuantity)})
}

func (h *ProductHandler) Update(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)
	id := c.Param("id")

	var product models.Product
	if err := h.db.
		Where("id = ? AND seller_id = ?", id, sellerID).
		First(&product).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "product_not_found", "Produit introuvable.")
			return
		}
		httperr.Internal(c, "failed_to_get_product", "Impossible de charger le produit.")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Description = optional(req.Description)
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	product.ImageURL = optional(req.ImageURL)

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Impossible d'enregistrer le produit.")
		return
	}

	c.JSON(http.StatusOK, productView{Product: product, StockStatus: stockStatus(product.StockQuantity)})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND seller_id = ?", id, sellerID).
		Delete(&models.Product{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_product", "Impossible de supprimer le produit.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "product_not_found", "Produit introuvable.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ======================================================
// IMAGE UPLOAD
// ======================================================

// UploadImage converts the uploaded picture to webp, stores it and
// saves the resulting URL on the product.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)
	id := c.Param("id")

	if !h.images.Enabled() {
		httperr.BadRequest(c, "uploads_disabled", "L'envoi d'images n'est pas activé.")
		return
	}

	var product models.Product
	if err := h.db.
		Where("id = ? AND seller_id = ?", id, sellerID).
		First(&product).Error; err != nil {

		httperr.NotFound(c, "product_not_found", "Produit introuvable.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Aucune image reçue.")
		return
	}
	if file.Size > maxImageUploadBytes {
		httperr.BadRequest(c, "image_too_large", "L'image dépasse 8 Mo.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Impossible de lire l'image.")
		return
	}
	defer src.Close()

	encoded, err := images.ToWebP(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Format d'image non supporté.")
		return
	}

	key := fmt.Sprintf("products/%s/%s.webp", sellerID, uuid.NewString())
	url, err := h.images.Put(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "Impossible d'enregistrer l'image.")
		return
	}

	product.ImageURL = &url
	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Impossible d'enregistrer le produit.")
		return
	}

	c.JSON(http.StatusOK, productView{Product: product, StockStatus: stockStatus(product.StockQuantity)})
}
