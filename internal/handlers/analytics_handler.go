package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/omnishop/omnishop-api/internal/domain/schedule"
	"github.com/omnishop/omnishop-api/internal/httperr"
	"github.com/omnishop/omnishop-api/internal/middleware"
	"github.com/omnishop/omnishop-api/internal/models"
)

type AnalyticsHandler struct {
	db *gorm.DB
}

func NewAnalyticsHandler(db *gorm.DB) *AnalyticsHandler {
	return &AnalyticsHandler{db: db}
}

// --------- Payloads ---------

type appointmentStats struct {
	Count            int64   `json:"count"`
	PotentialRevenue float64 `json:"potential_revenue"`
}

type inventoryStats struct {
	TotalProducts int64   `json:"total_products"`
	TotalValue    float64 `json:"total_value"`
	LowStock      int64   `json:"low_stock"`
	OutOfStock    int64   `json:"out_of_stock"`
}

type customerStats struct {
	Total       int64 `json:"total"`
	TotalOrders int64 `json:"total_orders"`
	VIP         int64 `json:"vip"`
}

type orderStats struct {
	Total     int64 `json:"total"`
	Delivered int64 `json:"delivered"`
	InTransit int64 `json:"in_transit"`
}

type summaryResponse struct {
	UpcomingAppointments appointmentStats `json:"upcoming_appointments"`
	Inventory            inventoryStats   `json:"inventory"`
	Customers            customerStats    `json:"customers"`
	Orders               orderStats       `json:"orders"`
}

// ======================================================
// SUMMARY
// ======================================================

// Summary aggregates the dashboard tiles in a single round trip.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)
	today := domain.DateKey(time.Now().UTC())

	var out summaryResponse

	// Each aggregate rebuilds its query from scratch and feeds the
	// first failure into aggErr; a partial summary is worse than none.
	var aggErr error
	count := func(q *gorm.DB, dest *int64) {
		if aggErr == nil {
			aggErr = q.Count(dest).Error
		}
	}
	sum := func(q *gorm.DB, expr string, dest any) {
		if aggErr == nil {
			aggErr = q.Select(expr).Scan(dest).Error
		}
	}

	// Appointments from today onward that are still live.
	upcoming := func() *gorm.DB {
		return h.db.Model(&models.Appointment{}).
			Where("seller_id = ? AND appointment_date >= ?", sellerID, today).
			Where("status NOT IN ?", []string{
				string(domain.StatusCancelled),
				string(domain.StatusNoShow),
			})
	}
	count(upcoming(), &out.UpcomingAppointments.Count)
	sum(upcoming(), "COALESCE(SUM(potential_revenue), 0)",
		&out.UpcomingAppointments.PotentialRevenue)

	products := func() *gorm.DB {
		return h.db.Model(&models.Product{}).Where("seller_id = ?", sellerID)
	}
	count(products(), &out.Inventory.TotalProducts)
	sum(products(), "COALESCE(SUM(price * stock_quantity), 0)",
		&out.Inventory.TotalValue)
	count(products().Where("stock_quantity < 10"), &out.Inventory.LowStock)
	count(products().Where("stock_quantity = 0"), &out.Inventory.OutOfStock)

	customers := func() *gorm.DB {
		return h.db.Model(&models.Customer{}).Where("seller_id = ?", sellerID)
	}
	count(customers(), &out.Customers.Total)
	sum(customers(), "COALESCE(SUM(total_orders), 0)", &out.Customers.TotalOrders)
	count(customers().Where("total_orders >= 5"), &out.Customers.VIP)

	orders := func() *gorm.DB {
		return h.db.Model(&models.Order{}).Where("seller_id = ?", sellerID)
	}
	count(orders(), &out.Orders.Total)
	count(orders().Where("status = ?", "Delivered"), &out.Orders.Delivered)
	count(orders().Where("status = ?", "In Transit"), &out.Orders.InTransit)

	if aggErr != nil {
		httperr.Internal(c, "failed_to_aggregate", "Impossible de calculer les statistiques.")
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// REVENUE SERIES
// ======================================================

type revenueBucket struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// Revenue serves the monthly revenue chart: one bucket per calendar
// month going back ?months=N (default 6, max 24), delivered orders
// only. Months without orders still appear with a zero so the chart
// axis stays continuous.
func (h *AnalyticsHandler) Revenue(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))
	if months <= 0 || months > 24 {
		months = 6
	}

	now := time.Now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(months - 1), 0)

	var orders []models.Order
	if err := h.db.
		Where("seller_id = ? AND status = ? AND created_at >= ?",
			sellerID, "Delivered", first).
		Find(&orders).Error; err != nil {

		httperr.Internal(c, "failed_to_aggregate", "Impossible de calculer les revenus.")
		return
	}

	buckets := make([]revenueBucket, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		key := first.AddDate(0, i, 0).Format("2006-01")
		buckets[i] = revenueBucket{Month: key}
		index[key] = i
	}

	for _, o := range orders {
		key := o.CreatedAt.UTC().Format("2006-01")
		if i, ok := index[key]; ok {
			buckets[i].Revenue += o.Amount
			buckets[i].Orders++
		}
	}

	c.JSON(http.StatusOK, gin.H{"months": buckets})
}
