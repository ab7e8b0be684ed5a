package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/omnishop/omnishop-api/internal/audit"
	"github.com/omnishop/omnishop-api/internal/billing"
	"github.com/omnishop/omnishop-api/internal/config"
	"github.com/omnishop/omnishop-api/internal/handlers"
	infraRepo "github.com/omnishop/omnishop-api/internal/infra/repository"
	"github.com/omnishop/omnishop-api/internal/middleware"
	"github.com/omnishop/omnishop-api/internal/session"
	"github.com/omnishop/omnishop-api/internal/storage"
	ucAppointment "github.com/omnishop/omnishop-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	denylist *session.Denylist,
	imageStore *storage.ImageStore,
	checkout *billing.Checkout,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	listCalendarRangeUC := ucAppointment.NewListCalendarRange(scheduleRepo)

	formOptionsUC := ucAppointment.NewGetFormOptions(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, denylist, nil)
	meHandler := handlers.NewMeHandler(db)
	preferencesHandler := handlers.NewPreferencesHandler(db)

	customerHandler := handlers.NewCustomerHandler(db)
	productHandler := handlers.NewProductHandler(db, imageStore)
	orderHandler := handlers.NewOrderHandler(db)
	analyticsHandler := handlers.NewAnalyticsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listCalendarRangeUC,
		formOptionsUC,
	)

	planHandler := handlers.NewPlanHandler(checkout)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/plans", planHandler.List)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, denylist))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.DELETE("/me", meHandler.DeleteMe)

			secured.GET("/me/preferences", preferencesHandler.Get)
			secured.PATCH("/me/preferences", preferencesHandler.Update)
			secured.POST("/me/onboarding", preferencesHandler.CompleteOnboarding)

			secured.GET("/me/customers", customerHandler.List)
			secured.POST("/me/customers", customerHandler.Create)
			secured.PATCH("/me/customers/:id", customerHandler.Update)
			secured.DELETE("/me/customers/:id", customerHandler.Delete)

			secured.GET("/me/products", productHandler.List)
			secured.GET("/me/products/selector", productHandler.Selector)
			secured.POST("/me/products", productHandler.Create)
			secured.PATCH("/me/products/:id", productHandler.Update)
			secured.DELETE("/me/products/:id", productHandler.Delete)
			secured.POST("/me/products/:id/image", productHandler.UploadImage)

			secured.GET("/me/orders", orderHandler.List)
			secured.POST("/me/orders", orderHandler.Create)
			secured.PATCH("/me/orders/:id", orderHandler.Update)
			secured.DELETE("/me/orders/:id", orderHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/appointments/options", appointmentHandler.FormOptions)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/analytics/summary", analyticsHandler.Summary)
			secured.GET("/me/analytics/revenue", analyticsHandler.Revenue)

			secured.POST("/me/plans/:id/checkout", planHandler.Checkout)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
