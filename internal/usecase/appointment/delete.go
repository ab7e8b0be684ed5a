package appointment

import (
	"context"

	"github.com/omnishop/omnishop-api/internal/audit"
	domain "github.com/omnishop/omnishop-api/internal/domain/schedule"
	"github.com/omnishop/omnishop-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	sellerID string,
	appointmentID string,
) error {

	if err := uc.repo.DeleteAppointment(ctx, appointmentID, sellerID); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		SellerID: sellerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
