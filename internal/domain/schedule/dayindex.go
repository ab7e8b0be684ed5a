package schedule

import (
	"strconv"
	"strings"

	"github.com/omnishop/omnishop-api/internal/models"
)

// ===============================
// Form defaults
// ===============================

const (
	DefaultTime            = "14:00"
	DefaultDurationMinutes = 30
)

var allowedDurations = []int{15, 30, 45, 60, 90, 120}

func AllowedDurations() []int {
	out := make([]int, len(allowedDurations))
	copy(out, allowedDurations)
	return out
}

func IsAllowedDuration(minutes int) bool {
	for _, d := range allowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// ParseRevenue coerces the free-text revenue field to a non-negative
// amount. Empty or unparsable input stores 0, never null and never NaN.
func ParseRevenue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ===============================
// Day Index (derived, not stored)
// ===============================

// DaySummary is the per-date derivation the calendar grid renders:
// the appointments falling on that date and their summed potential
// revenue. Recomputed on demand from the fetched window.
type DaySummary struct {
	Date             string  `json:"date"`
	Count            int     `json:"count"`
	PotentialRevenue float64 `json:"potential_revenue"`
}

// AppointmentsOn filters by normalized date equality.
func AppointmentsOn(list []models.Appointment, date string) []models.Appointment {
	var out []models.Appointment
	for _, a := range list {
		if a.AppointmentDate == date {
			out = append(out, a)
		}
	}
	return out
}

// PotentialRevenueOn sums potential_revenue for the given date,
// 0 for an empty day.
func PotentialRevenueOn(list []models.Appointment, date string) float64 {
	var sum float64
	for _, a := range list {
		if a.AppointmentDate == date {
			sum += a.PotentialRevenue
		}
	}
	return sum
}

// Summarize produces one DaySummary per grid day of r, in order.
func Summarize(list []models.Appointment, r Range) []DaySummary {
	byDate := make(map[string]*DaySummary)
	days := r.Days()
	out := make([]DaySummary, len(days))
	for i, d := range days {
		out[i] = DaySummary{Date: DateKey(d)}
		byDate[out[i].Date] = &out[i]
	}
	for _, a := range list {
		if s, ok := byDate[a.AppointmentDate]; ok {
			s.Count++
			s.PotentialRevenue += a.PotentialRevenue
		}
	}
	return out
}
