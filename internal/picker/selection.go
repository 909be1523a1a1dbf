package picker

import (
	"sort"
	"time"

	"datepick-cli/internal/datemath"
)

// Selection is the current picker value: exactly one of None, Single,
// Multiple or Range. Modeling it as a sealed union keeps every mode handler
// total, with no loosely-typed probing anywhere downstream.
type Selection interface {
	isSelection()
}

// None is the empty selection.
type None struct{}

// Single holds one selected date (with time-of-day when time is enabled).
type Single struct {
	Date time.Time
}

// Multiple holds a set of selected dates. Order is insertion order; display
// sorts chronologically.
type Multiple struct {
	Dates []time.Time
}

// Range holds an inclusive date range. A zero From or To means "unset".
// Whenever both ends are set, From <= To at day granularity.
type Range struct {
	From time.Time
	To   time.Time
}

func (None) isSelection()     {}
func (Single) isSelection()   {}
func (Multiple) isSelection() {}
func (Range) isSelection()    {}

// HasFrom reports whether the range start is set.
func (r Range) HasFrom() bool { return !r.From.IsZero() }

// HasTo reports whether the range end is set.
func (r Range) HasTo() bool { return !r.To.IsZero() }

// IsEmpty reports whether sel carries no dates at all.
func IsEmpty(sel Selection) bool {
	switch v := sel.(type) {
	case nil, None:
		return true
	case Single:
		return v.Date.IsZero()
	case Multiple:
		return len(v.Dates) == 0
	case Range:
		return !v.HasFrom() && !v.HasTo()
	}
	return true
}

// firstDate returns the date the initial anchor/focus derivation prefers:
// the single value, the first of multiple, or the range start.
func firstDate(sel Selection) (time.Time, bool) {
	switch v := sel.(type) {
	case Single:
		if !v.Date.IsZero() {
			return v.Date, true
		}
	case Multiple:
		if len(v.Dates) > 0 {
			return v.Dates[0], true
		}
	case Range:
		if v.HasFrom() {
			return v.From, true
		}
	}
	return time.Time{}, false
}

// sortedDates returns the dates of a Multiple selection in chronological
// order without disturbing the stored insertion order.
func sortedDates(dates []time.Time) []time.Time {
	out := make([]time.Time, len(dates))
	copy(out, dates)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// containsDay reports whether dates has an entry on the same day as t, and
// where. When exactTime is set, the hour and minute must match as well.
func containsDay(dates []time.Time, t time.Time, exactTime bool) (int, bool) {
	for i, d := range dates {
		if !datemath.SameDay(d, t) {
			continue
		}
		if exactTime && (d.Hour() != t.Hour() || d.Minute() != t.Minute()) {
			continue
		}
		return i, true
	}
	return -1, false
}
