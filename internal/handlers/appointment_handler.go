package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omnishop/omnishop-api/internal/dto"
	"github.com/omnishop/omnishop-api/internal/httperr"
	"github.com/omnishop/omnishop-api/internal/middleware"
	"github.com/omnishop/omnishop-api/internal/usecase/appointment"
)

// AppointmentHandler is the thin HTTP edge of the calendar. All the
// scheduling rules live in the usecases; this layer only binds, maps
// business errors to an HTTP status and serializes.
type AppointmentHandler struct {
	create      *appointment.CreateAppointment
	update      *appointment.UpdateAppointment
	remove      *appointment.DeleteAppointment
	listRange   *appointment.ListCalendarRange
	formOptions *appointment.GetFormOptions
}

func NewAppointmentHandler(
	create *appointment.CreateAppointment,
	update *appointment.UpdateAppointment,
	remove *appointment.DeleteAppointment,
	listRange *appointment.ListCalendarRange,
	formOptions *appointment.GetFormOptions,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		update:      update,
		remove:      remove,
		listRange:   listRange,
		formOptions: formOptions,
	}
}

// --------- Requests ---------

type AppointmentRequest struct {
	Date             string `json:"appointment_date" binding:"required"`
	Time             string `json:"appointment_time"`
	DurationMinutes  int    `json:"duration_minutes"`
	Status           string `json:"status"`
	PotentialRevenue string `json:"potential_revenue"`
	Location         string `json:"location"`
	Notes            string `json:"notes"`
	CustomerID       string `json:"customer_id"`
	ProductID        string `json:"product_id"`
}

func (r AppointmentRequest) input(sellerID string) appointment.FormInput {
	return appointment.FormInput{
		SellerID:         sellerID,
		Date:             r.Date,
		Time:             r.Time,
		DurationMinutes:  r.DurationMinutes,
		Status:           r.Status,
		PotentialRevenue: r.PotentialRevenue,
		Location:         r.Location,
		Notes:            r.Notes,
		CustomerID:       r.CustomerID,
		ProductID:        r.ProductID,
	}
}

// French copy keyed by the business error codes the usecases emit.
var appointmentErrors = map[string]struct {
	status  int
	message string
}{
	"invalid_date":          {http.StatusBadRequest, "Date invalide."},
	"invalid_time":          {http.StatusBadRequest, "Heure invalide."},
	"invalid_duration":      {http.StatusBadRequest, "Durée non autorisée."},
	"invalid_status":        {http.StatusBadRequest, "Statut inconnu."},
	"customer_not_found":    {http.StatusBadRequest, "Client introuvable."},
	"product_not_found":     {http.StatusBadRequest, "Produit introuvable."},
	"appointment_not_found": {http.StatusNotFound, "Rendez-vous introuvable."},
}

func writeAppointmentError(c *gin.Context, err error) {
	if code := httperr.BusinessCode(err); code != "" {
		if m, ok := appointmentErrors[code]; ok {
			httperr.Write(c, m.status, code, m.message)
			return
		}
	}
	httperr.Internal(c, "appointment_error", "Une erreur est survenue.")
}

// ======================================================
// RANGE FETCH
// ======================================================

// List serves GET /api/me/appointments?date=YYYY-MM-DD&mode=week|month.
func (h *AppointmentHandler) List(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	window, err := h.listRange.Execute(
		c.Request.Context(),
		sellerID,
		c.Query("date"),
		c.Query("mode"),
	)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, window)
}

// ======================================================
// FORM OPTIONS
// ======================================================

func (h *AppointmentHandler) FormOptions(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	options, err := h.formOptions.Execute(c.Request.Context(), sellerID)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, options)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	created, err := h.create.Execute(c.Request.Context(), req.input(sellerID))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAppointmentView(*created))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)
	id := c.Param("id")

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), id, req.input(sellerID))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointmentView(*updated))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextSellerID).(string)
	id := c.Param("id")

	if err := h.remove.Execute(c.Request.Context(), sellerID, id); err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
