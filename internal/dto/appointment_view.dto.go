package dto

import (
	"github.com/omnishop/omnishop-api/internal/domain/schedule"
	"github.com/omnishop/omnishop-api/internal/models"
)

// Joined summaries are fetched alongside the appointment; the
// appointment only owns the foreign ids.

type CustomerSummary struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	WhatsappNumber *string `json:"whatsapp_number"`
}

type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type AppointmentView struct {
	ID               string                        `json:"id"`
	AppointmentDate  string                        `json:"appointment_date"`
	AppointmentTime  string                        `json:"appointment_time"`
	DurationMinutes  int                           `json:"duration_minutes"`
	Status           string                        `json:"status"`
	StatusColors     schedule.StatusClassification `json:"status_colors"`
	PotentialRevenue float64                       `json:"potential_revenue"`
	Location         *string                       `json:"location"`
	Notes            *string                       `json:"notes"`
	Customer         *CustomerSummary              `json:"customer"`
	Product          *ProductSummary               `json:"product"`
}

func NewAppointmentView(m models.Appointment) AppointmentView {
	v := AppointmentView{
		ID:               m.ID,
		AppointmentDate:  m.AppointmentDate,
		AppointmentTime:  m.AppointmentTime,
		DurationMinutes:  m.DurationMinutes,
		Status:           m.Status,
		StatusColors:     schedule.Classify(schedule.Status(m.Status)),
		PotentialRevenue: m.PotentialRevenue,
		Location:         m.Location,
		Notes:            m.Notes,
	}

	if m.Customer != nil {
		v.Customer = &CustomerSummary{
			ID:             m.Customer.ID,
			FullName:       m.Customer.FullName,
			WhatsappNumber: m.Customer.WhatsappNumber,
		}
	}
	if m.Product != nil {
		v.Product = &ProductSummary{
			ID:    m.Product.ID,
			Name:  m.Product.Name,
			Price: m.Product.Price,
		}
	}

	return v
}

func NewAppointmentViews(list []models.Appointment) []AppointmentView {
	views := make([]AppointmentView, len(list))
	for i, m := range list {
		views[i] = NewAppointmentView(m)
	}
	return views
}
