package appointment

import (
	"context"
	"strings"

	"github.com/omnishop/omnishop-api/internal/audit"
	domain "github.com/omnishop/omnishop-api/internal/domain/schedule"
	"github.com/omnishop/omnishop-api/internal/httperr"
	"github.com/omnishop/omnishop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// FormInput is the single form model shared between create and edit
// mode. Revenue arrives as free text and coerces to 0 when unparsable;
// empty optional fields store NULL.
type FormInput struct {
	SellerID string

	Date string
	Time string

	DurationMinutes  int
	Status           string
	PotentialRevenue string

	Location string
	Notes    string

	CustomerID string
	ProductID  string
}

// normalize applies the form defaults (time 14:00, duration 30, status
// Scheduled) and validates the closed sets. Returns the appointment
// fields to persist.
func normalize(ctx context.Context, repo domain.Repository, in FormInput) (*models.Appointment, error) {

	date, err := domain.ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	timeStr := strings.TrimSpace(in.Time)
	if timeStr == "" {
		timeStr = domain.DefaultTime
	}
	parsedTime, err := domain.ParseTime(timeStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	duration := in.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}
	if !domain.IsAllowedDuration(duration) {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	status := domain.Status(strings.TrimSpace(in.Status))
	if status == "" {
		status = domain.InitialStatus()
	}
	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap := &models.Appointment{
		SellerID:         in.SellerID,
		AppointmentDate:  domain.DateKey(date),
		AppointmentTime:  parsedTime.Format(domain.TimeLayout),
		DurationMinutes:  duration,
		Status:           string(status),
		PotentialRevenue: domain.ParseRevenue(in.PotentialRevenue),
		Location:         nullable(in.Location),
		Notes:            nullable(in.Notes),
	}

	// Weak references: both are optional, but a given id must exist
	// under this seller.
	if id := strings.TrimSpace(in.CustomerID); id != "" {
		if _, err := repo.GetCustomer(ctx, in.SellerID, id); err != nil {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		ap.CustomerID = &id
	}
	if id := strings.TrimSpace(in.ProductID); id != "" {
		if _, err := repo.GetProduct(ctx, in.SellerID, id); err != nil {
			return nil, httperr.ErrBusiness("product_not_found")
		}
		ap.ProductID = &id
	}

	return ap, nil
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute inserts a new appointment under the seller's identity.
// Multiple appointments may coexist at the same date/time: there is no
// conflict detection on this calendar.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in FormInput,
) (*models.Appointment, error) {

	ap, err := normalize(ctx, uc.repo, in)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SellerID: in.SellerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date": ap.AppointmentDate,
			"time": ap.AppointmentTime,
		},
	})

	// Reload with joined summaries so the response matches a fetch.
	return uc.repo.GetAppointmentForSeller(ctx, ap.ID, in.SellerID)
}
