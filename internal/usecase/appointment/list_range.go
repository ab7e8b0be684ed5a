package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/omnishop/omnishop-api/internal/domain/schedule"
	"github.com/omnishop/omnishop-api/internal/dto"
	"github.com/omnishop/omnishop-api/internal/httperr"
)

// ======================================================
// RANGE FETCH + DAY INDEX
// ======================================================

// RangeInfo echoes the window a payload was computed for. Clients that
// fire overlapping fetches compare it against their latest anchor and
// drop stale responses instead of overwriting newer state.
type RangeInfo struct {
	Mode   string `json:"mode"`
	Anchor string `json:"anchor"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type CalendarWindow struct {
	Range        RangeInfo             `json:"range"`
	Appointments []dto.AppointmentView `json:"appointments"`
	Days         []domain.DaySummary   `json:"days"`
}

type ListCalendarRange struct {
	repo domain.Repository
}

func NewListCalendarRange(repo domain.Repository) *ListCalendarRange {
	return &ListCalendarRange{repo: repo}
}

// Execute computes the visible grid window for the anchor date and
// mode, fetches the appointments whose date falls inside it (joined
// customer and product summaries, ordered by date) and derives the
// per-day index. An empty anchor means today.
func (uc *ListCalendarRange) Execute(
	ctx context.Context,
	sellerID string,
	anchor string,
	mode string,
) (*CalendarWindow, error) {

	anchor = strings.TrimSpace(anchor)
	ref := time.Now().UTC()
	if anchor != "" {
		parsed, err := domain.ParseDate(anchor)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ref = parsed
	}

	m := domain.ModeMonth
	if strings.EqualFold(mode, string(domain.ModeWeek)) {
		m = domain.ModeWeek
	}

	window := domain.RangeFor(ref, m)

	apps, err := uc.repo.ListAppointmentsForRange(
		ctx,
		sellerID,
		window.StartKey(),
		window.EndKey(),
	)
	if err != nil {
		return nil, err
	}

	return &CalendarWindow{
		Range: RangeInfo{
			Mode:   string(window.Mode),
			Anchor: domain.DateKey(ref),
			Start:  window.StartKey(),
			End:    window.EndKey(),
		},
		Appointments: dto.NewAppointmentViews(apps),
		Days:         domain.Summarize(apps, window),
	}, nil
}
