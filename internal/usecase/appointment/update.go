package appointment

import (
	"context"

	"github.com/omnishop/omnishop-api/internal/audit"
	domain "github.com/omnishop/omnishop-api/internal/domain/schedule"
	"github.com/omnishop/omnishop-api/internal/httperr"
	"github.com/omnishop/omnishop-api/internal/models"
)

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute is the edit-mode submit: a full replace of the mutable
// fields, keyed by the appointment id. Submitting unchanged fields
// leaves the stored record identical.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	in FormInput,
) (*models.Appointment, error) {

	existing, err := uc.repo.GetAppointmentForSeller(ctx, appointmentID, in.SellerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	normalized, err := normalize(ctx, uc.repo, in)
	if err != nil {
		return nil, err
	}

	existing.AppointmentDate = normalized.AppointmentDate
	existing.AppointmentTime = normalized.AppointmentTime
	existing.DurationMinutes = normalized.DurationMinutes
	existing.Status = normalized.Status
	existing.PotentialRevenue = normalized.PotentialRevenue
	existing.Location = normalized.Location
	existing.Notes = normalized.Notes
	existing.CustomerID = normalized.CustomerID
	existing.ProductID = normalized.ProductID

	// Drop stale preloaded joins so Save does not resurrect them.
	existing.Customer = nil
	existing.Product = nil

	if err := uc.repo.UpdateAppointment(ctx, existing); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SellerID: in.SellerID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &existing.ID,
	})

	return uc.repo.GetAppointmentForSeller(ctx, existing.ID, in.SellerID)
}
