package schedule

import (
	"context"

	"github.com/omnishop/omnishop-api/internal/models"
)

type Repository interface {
	// -------- Appointment (range fetch) --------
	ListAppointmentsForRange(
		ctx context.Context,
		sellerID string,
		startDate string,
		endDate string,
	) ([]models.Appointment, error)

	// -------- Appointment (mutations) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForSeller(
		ctx context.Context,
		appointmentID string,
		sellerID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		appointmentID string,
		sellerID string,
	) error

	// -------- Weak references --------
	GetCustomer(
		ctx context.Context,
		sellerID string,
		customerID string,
	) (*models.Customer, error)

	GetProduct(
		ctx context.Context,
		sellerID string,
		productID string,
	) (*models.Product, error)

	// -------- Form selectors --------
	ListCustomersByName(
		ctx context.Context,
		sellerID string,
	) ([]models.Customer, error)

	ListProductsInStock(
		ctx context.Context,
		sellerID string,
	) ([]models.Product, error)
}
