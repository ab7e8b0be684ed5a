package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/omnishop/omnishop-api/internal/domain/schedule"
	"github.com/omnishop/omnishop-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Appointments: range fetch
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsForRange(
	ctx context.Context,
	sellerID string,
	startDate string,
	endDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Product").
		Where(
			"seller_id = ? AND appointment_date >= ? AND appointment_date <= ?",
			sellerID, startDate, endDate,
		).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointments: mutations
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *ScheduleGormRepository) GetAppointmentForSeller(
	ctx context.Context,
	appointmentID string,
	sellerID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Product").
		Where("id = ? AND seller_id = ?", appointmentID, sellerID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID string,
	sellerID string,
) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", appointmentID, sellerID).
		Delete(&models.Appointment{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Weak references
// --------------------------------------------------

func (r *ScheduleGormRepository) GetCustomer(
	ctx context.Context,
	sellerID string,
	customerID string,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", customerID, sellerID).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *ScheduleGormRepository) GetProduct(
	ctx context.Context,
	sellerID string,
	productID string,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", productID, sellerID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// --------------------------------------------------
// Form selectors
// --------------------------------------------------

func (r *ScheduleGormRepository) ListCustomersByName(
	ctx context.Context,
	sellerID string,
) ([]models.Customer, error) {

	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("full_name ASC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// ListProductsInStock feeds the appointment form's product selector:
// only products with stock_quantity > 0 are offered.
func (r *ScheduleGormRepository) ListProductsInStock(
	ctx context.Context,
	sellerID string,
) ([]models.Product, error) {

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("seller_id = ? AND stock_quantity > 0", sellerID).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
