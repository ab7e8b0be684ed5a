package schedule

import "time"

// DateLayout is the normalized date-only form used everywhere:
// storage, range boundaries and day grouping.
const DateLayout = "2006-01-02"

const TimeLayout = "15:04"

type Mode string

const (
	ModeWeek  Mode = "week"
	ModeMonth Mode = "month"
)

// Range is an inclusive [Start, End] calendar window, always starting
// on a Monday and ending on a Sunday so it fills a 7-column grid.
type Range struct {
	Mode   Mode
	Anchor time.Time
	Start  time.Time
	End    time.Time
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// startOfWeek returns the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -offset)
}

// WeekOf returns the Monday-start week containing ref: exactly 7
// consecutive days.
func WeekOf(ref time.Time) Range {
	start := startOfWeek(ref)
	return Range{
		Mode:   ModeWeek,
		Anchor: ref,
		Start:  start,
		End:    start.AddDate(0, 0, 6),
	}
}

// MonthGridOf returns the full calendar-grid span covering ref's month:
// from the Monday on/before the 1st through the Sunday on/after the
// last day, including the leading/trailing days from adjacent months.
func MonthGridOf(ref time.Time) Range {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := startOfWeek(first)
	end := startOfWeek(last).AddDate(0, 0, 6)

	return Range{
		Mode:   ModeMonth,
		Anchor: ref,
		Start:  start,
		End:    end,
	}
}

// RangeFor dispatches on mode; week is the default for anything else.
func RangeFor(ref time.Time, mode Mode) Range {
	if mode == ModeMonth {
		return MonthGridOf(ref)
	}
	return WeekOf(ref)
}

// Days enumerates every date of the grid in order.
func (r Range) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r Range) StartKey() string { return DateKey(r.Start) }
func (r Range) EndKey() string   { return DateKey(r.End) }
