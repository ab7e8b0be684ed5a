package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/omnishop/omnishop-api/internal/config"
	dbpkg "github.com/omnishop/omnishop-api/internal/db"
	"github.com/omnishop/omnishop-api/internal/handlers"
	"github.com/omnishop/omnishop-api/internal/models"
	"github.com/omnishop/omnishop-api/internal/routes"
)

const testSecret = "test-secret"

type env struct {
	router *gin.Engine
	db     *gorm.DB
	seller models.Seller
	token  string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	seller := models.Seller{
		FullName:     "Awa Diallo",
		Email:        "awa@example.com",
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(&seller).Error)

	prefs := models.DefaultPreferences(seller.ID)
	require.NoError(t, db.Create(&prefs).Error)

	cfg := &config.Config{JWTSecret: testSecret, ServerPort: "0"}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, nil, nil, nil)

	return &env{
		router: r,
		db:     db,
		seller: seller,
		token:  signToken(t, seller.ID),
	}
}

func signToken(t *testing.T, sellerID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": sellerID,
		"jti": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func (e *env) do(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// ======================================================
// AUTH
// ======================================================

func TestRegister(t *testing.T) {
	e := newEnv(t)

	cfg := &config.Config{JWTSecret: testSecret}
	registerRouter := func(domainOK bool) *gin.Engine {
		auth := handlers.NewAuthHandler(e.db, cfg, nil, func(string) bool { return domainOK })
		r := gin.New()
		r.POST("/api/auth/register", auth.Register)
		return r
	}

	post := func(r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("creates seller with pending onboarding", func(t *testing.T) {
		w := post(registerRouter(true), gin.H{
			"full_name": "Moussa Ba",
			"email":     "Moussa@Example.com",
			"password":  "secret123",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.NotEmpty(t, body["token"])

		seller := body["seller"].(map[string]any)
		assert.Equal(t, "moussa@example.com", seller["email"])

		prefs := body["preferences"].(map[string]any)
		assert.Equal(t, false, prefs["onboarding_completed"])

		var stored models.SellerPreferences
		require.NoError(t, e.db.First(&stored, "seller_id = ?", seller["id"]).Error)
		assert.False(t, stored.OnboardingCompleted)
		assert.Equal(t, "Ma Boutique", stored.StoreName)
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := post(registerRouter(true), gin.H{
			"full_name": "Quelqu'un d'autre",
			"email":     "awa@example.com",
			"password":  "secret123",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "email_already_exists", decode(t, w)["error_code"])
	})

	t.Run("rejected email domain", func(t *testing.T) {
		w := post(registerRouter(false), gin.H{
			"full_name": "Fatou Ndiaye",
			"email":     "fatou@nxdomain.example",
			"password":  "secret123",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_email_domain", decode(t, w)["error_code"])
	})

	t.Run("short password", func(t *testing.T) {
		w := post(registerRouter(true), gin.H{
			"full_name": "Fatou Ndiaye",
			"email":     "fatou@example.com",
			"password":  "abc",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	e := newEnv(t)

	t.Run("valid credentials", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "awa@example.com",
			"password": "secret123",
		}, false)

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("email is case insensitive", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "AWA@Example.com",
			"password": "secret123",
		}, false)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "awa@example.com",
			"password": "nope",
		}, false)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid_credentials", decode(t, w)["error_code"])
	})

	t.Run("unknown seller gets the same error", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "inconnue@example.com",
			"password": "secret123",
		}, false)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid_credentials", decode(t, w)["error_code"])
	})
}

func TestAuthGuard(t *testing.T) {
	e := newEnv(t)

	t.Run("missing token", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/me", nil, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		w := httptest.NewRecorder()
		e.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("plans stay public", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/plans", nil, false)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// ======================================================
// ME + PREFERENCES
// ======================================================

func TestGetMe(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/me", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	seller := body["seller"].(map[string]any)
	assert.Equal(t, "Awa Diallo", seller["full_name"])
	assert.Equal(t, "Awa Diallo", seller["display_name"])

	prefs := body["preferences"].(map[string]any)
	assert.Equal(t, false, prefs["onboarding_completed"])
	assert.Equal(t, "Ma Boutique", prefs["store_name"])
}

func TestDisplayNameFallback(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.db.Model(&models.Seller{}).
		Where("id = ?", e.seller.ID).
		Update("full_name", "").Error)

	w := e.do(t, http.MethodGet, "/api/me", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	seller := decode(t, w)["seller"].(map[string]any)
	assert.Equal(t, "Vendeur", seller["display_name"])
}

func TestOnboarding(t *testing.T) {
	e := newEnv(t)

	t.Run("completes with a platform and a focus", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/onboarding", gin.H{
			"sales_platform": "whatsapp",
			"main_focus":     "stock",
		}, true)
		require.Equal(t, http.StatusOK, w.Code)

		var prefs models.SellerPreferences
		require.NoError(t, e.db.First(&prefs, "seller_id = ?", e.seller.ID).Error)
		assert.True(t, prefs.OnboardingCompleted)
		assert.Equal(t, "whatsapp", prefs.SalesPlatform)
	})

	t.Run("completing twice is idempotent", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/onboarding", gin.H{
			"sales_platform": "whatsapp",
			"main_focus":     "stock",
		}, true)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown platform is rejected", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/onboarding", gin.H{
			"sales_platform": "myspace",
			"main_focus":     "stock",
		}, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdatePreferences(t *testing.T) {
	e := newEnv(t)

	t.Run("partial update only touches sent fields", func(t *testing.T) {
		w := e.do(t, http.MethodPatch, "/api/me/preferences", gin.H{
			"store_name": "Chez Awa",
		}, true)
		require.Equal(t, http.StatusOK, w.Code)

		var prefs models.SellerPreferences
		require.NoError(t, e.db.First(&prefs, "seller_id = ?", e.seller.ID).Error)
		assert.Equal(t, "Chez Awa", prefs.StoreName)
		assert.True(t, prefs.EmailNotifications)
	})

	t.Run("full_name flows through to the seller row", func(t *testing.T) {
		w := e.do(t, http.MethodPatch, "/api/me/preferences", gin.H{
			"full_name": "Awa D.",
		}, true)
		require.Equal(t, http.StatusOK, w.Code)

		var seller models.Seller
		require.NoError(t, e.db.First(&seller, "id = ?", e.seller.ID).Error)
		assert.Equal(t, "Awa D.", seller.FullName)
	})
}

// ======================================================
// CUSTOMERS
// ======================================================

func TestCustomerEndpoints(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/me/customers", gin.H{
		"full_name":       "Moussa Ba",
		"whatsapp_number": "+221770000000",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	customerID := decode(t, w)["id"].(string)

	e.do(t, http.MethodPost, "/api/me/customers", gin.H{"full_name": "Binta Sow"}, true)

	t.Run("list is sorted and wrapped", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/me/customers", nil, true)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Equal(t, float64(2), body["total"])
		data := body["data"].([]any)
		first := data[0].(map[string]any)
		assert.Equal(t, "Binta Sow", first["full_name"])
	})

	t.Run("query filters by name", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/me/customers?query=moussa", nil, true)
		body := decode(t, w)
		assert.Equal(t, float64(1), body["total"])
	})

	t.Run("empty optional fields store null", func(t *testing.T) {
		var customer models.Customer
		require.NoError(t, e.db.First(&customer, "full_name = ?", "Binta Sow").Error)
		assert.Nil(t, customer.WhatsappNumber)
		assert.Nil(t, customer.Address)
	})

	t.Run("delete", func(t *testing.T) {
		w := e.do(t, http.MethodDelete, "/api/me/customers/"+customerID, nil, true)
		require.Equal(t, http.StatusOK, w.Code)

		w = e.do(t, http.MethodDelete, "/api/me/customers/"+customerID, nil, true)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// ======================================================
// PRODUCTS
// ======================================================

func TestProductEndpoints(t *testing.T) {
	e := newEnv(t)

	seed := []models.Product{
		{SellerID: e.seller.ID, Name: "Robe wax", Price: 45, StockQuantity: 8},
		{SellerID: e.seller.ID, Name: "Boubou brodé", Price: 120, StockQuantity: 3},
		{SellerID: e.seller.ID, Name: "Sac raphia", Price: 25, StockQuantity: 0},
	}
	for i := range seed {
		require.NoError(t, e.db.Create(&seed[i]).Error)
	}

	t.Run("list carries the stock badge", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/me/products", nil, true)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Equal(t, float64(3), body["total"])

		data := body["data"].([]any)
		first := data[0].(map[string]any)
		badge := first["stock_status"].(map[string]any)
		assert.NotEmpty(t, badge["label"])
	})

	t.Run("selector offers only stocked products", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/me/products/selector", nil, true)
		require.Equal(t, http.StatusOK, w.Code)

		var options []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
		require.Len(t, options, 2)

		assert.Equal(t, "Boubou brodé", options[0]["name"])
		assert.Equal(t, "Robe wax", options[1]["name"])

		// The picker payload is the id/name/price summary, nothing else.
		for _, opt := range options {
			assert.ElementsMatch(t, []string{"id", "name", "price"}, keysOf(opt))
		}
	})

	t.Run("update adjusts the stock", func(t *testing.T) {
		w := e.do(t, http.MethodPatch, "/api/me/products/"+seed[2].ID, gin.H{
			"name":           "Sac raphia",
			"price":          25.0,
			"stock_quantity": 5,
		}, true)
		require.Equal(t, http.StatusOK, w.Code)

		var reloaded models.Product
		require.NoError(t, e.db.First(&reloaded, "id = ?", seed[2].ID).Error)
		assert.Equal(t, 5, reloaded.StockQuantity)
	})
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// ======================================================
// ORDERS
// ======================================================

func TestOrderEndpoints(t *testing.T) {
	e := newEnv(t)

	customer := models.Customer{SellerID: e.seller.ID, FullName: "Moussa Ba"}
	require.NoError(t, e.db.Create(&customer).Error)

	t.Run("create increments the customer counter", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/orders", gin.H{
			"customer_id":  customer.ID,
			"product_name": "Robe wax",
			"amount":       45.0,
		}, true)
		require.Equal(t, http.StatusCreated, w.Code)

		var reloaded models.Customer
		require.NoError(t, e.db.First(&reloaded, "id = ?", customer.ID).Error)
		assert.Equal(t, 1, reloaded.TotalOrders)
	})

	t.Run("default status is Processing", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/orders", gin.H{
			"product_name": "Sac raphia",
			"amount":       25.0,
		}, true)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Processing", decode(t, w)["status"])
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/orders", gin.H{
			"product_name": "Sac raphia",
			"amount":       25.0,
			"status":       "Lost",
		}, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("status filter", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/me/orders?status=Processing", nil, true)
		require.Equal(t, http.StatusOK, w.Code)

		var orders []models.Order
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
		assert.Len(t, orders, 2)
	})
}

// ======================================================
// APPOINTMENTS (end to end)
// ======================================================

func TestAppointmentEndpoints(t *testing.T) {
	e := newEnv(t)

	t.Run("create with defaults and empty revenue", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/appointments", gin.H{
			"appointment_date":  "2026-03-09",
			"potential_revenue": "",
		}, true)
		require.Equal(t, http.StatusCreated, w.Code)

		body := decode(t, w)
		assert.Equal(t, "14:00", body["appointment_time"])
		assert.Equal(t, "Scheduled", body["status"])
		assert.Equal(t, float64(0), body["potential_revenue"])
		assert.NotNil(t, body["status_colors"])
	})

	t.Run("range fetch echoes its window", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/me/appointments?date=2026-03-11&mode=week", nil, true)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		rng := body["range"].(map[string]any)
		assert.Equal(t, "week", rng["mode"])
		assert.Equal(t, "2026-03-09", rng["start"])
		assert.Equal(t, "2026-03-15", rng["end"])

		assert.Len(t, body["appointments"].([]any), 1)
		assert.Len(t, body["days"].([]any), 7)
	})

	t.Run("update then delete", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/appointments", gin.H{
			"appointment_date": "2026-03-10",
			"appointment_time": "10:00",
		}, true)
		require.Equal(t, http.StatusCreated, w.Code)
		id := decode(t, w)["id"].(string)

		w = e.do(t, http.MethodPatch, "/api/me/appointments/"+id, gin.H{
			"appointment_date": "2026-03-10",
			"appointment_time": "11:30",
			"status":           "Confirmed",
		}, true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "11:30", decode(t, w)["appointment_time"])

		w = e.do(t, http.MethodDelete, "/api/me/appointments/"+id, nil, true)
		require.Equal(t, http.StatusOK, w.Code)

		w = e.do(t, http.MethodDelete, "/api/me/appointments/"+id, nil, true)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid duration surfaces its code", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/appointments", gin.H{
			"appointment_date": "2026-03-09",
			"duration_minutes": 42,
		}, true)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_duration", decode(t, w)["error_code"])
	})

	t.Run("form options", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/me/appointments/options", nil, true)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Len(t, body["durations"].([]any), 6)
		assert.Len(t, body["statuses"].([]any), 6)
	})
}

// ======================================================
// ANALYTICS + PLANS
// ======================================================

func TestAnalyticsSummary(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.db.Create(&models.Product{
		SellerID: e.seller.ID, Name: "Robe wax", Price: 45, StockQuantity: 0,
	}).Error)
	require.NoError(t, e.db.Create(&models.Product{
		SellerID: e.seller.ID, Name: "Sac raphia", Price: 25, StockQuantity: 5,
	}).Error)
	require.NoError(t, e.db.Create(&models.Product{
		SellerID: e.seller.ID, Name: "Boubou brodé", Price: 120, StockQuantity: 40,
	}).Error)
	require.NoError(t, e.db.Create(&models.Order{
		SellerID: e.seller.ID, ProductName: "Robe wax", Amount: 45, Status: "Delivered",
	}).Error)

	w := e.do(t, http.MethodGet, "/api/me/analytics/summary", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	inventory := body["inventory"].(map[string]any)
	assert.Equal(t, float64(3), inventory["total_products"])
	assert.Equal(t, float64(4925), inventory["total_value"]) // 45*0 + 25*5 + 120*40
	// Out-of-stock rows count as low stock too; the tiles overlap on purpose.
	assert.Equal(t, float64(2), inventory["low_stock"])
	assert.Equal(t, float64(1), inventory["out_of_stock"])

	orders := body["orders"].(map[string]any)
	assert.Equal(t, float64(1), orders["total"])
	assert.Equal(t, float64(1), orders["delivered"])
}

func TestPlans(t *testing.T) {
	e := newEnv(t)

	t.Run("catalog", func(t *testing.T) {
		w := e.do(t, http.MethodGet, "/api/plans", nil, false)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode(t, w)["plans"].([]any), 3)
	})

	t.Run("free plan has no checkout", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/plans/free/checkout", nil, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("checkout unavailable without a gateway", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/plans/pro/checkout", nil, true)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("unknown plan", func(t *testing.T) {
		w := e.do(t, http.MethodPost, "/api/me/plans/platine/checkout", nil, true)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// ======================================================
// ACCOUNT DELETION
// ======================================================

func TestDeleteMe(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.db.Create(&models.Customer{SellerID: e.seller.ID, FullName: "Moussa Ba"}).Error)
	require.NoError(t, e.db.Create(&models.Appointment{
		SellerID: e.seller.ID, AppointmentDate: "2026-03-09", AppointmentTime: "14:00", Status: "Scheduled",
	}).Error)

	w := e.do(t, http.MethodDelete, "/api/me", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var sellers, customers, appointments int64
	e.db.Model(&models.Seller{}).Count(&sellers)
	e.db.Model(&models.Customer{}).Count(&customers)
	e.db.Model(&models.Appointment{}).Count(&appointments)

	assert.Equal(t, int64(0), sellers)
	assert.Equal(t, int64(0), customers)
	assert.Equal(t, int64(0), appointments)
}
