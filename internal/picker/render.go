package picker

import (
	"strconv"
	"strings"
	"time"

	"datepick-cli/internal/dateformat"
	"datepick-cli/internal/datemath"
)

// DaysToRender returns every date of the anchored month, in order.
func (p *Picker) DaysToRender() []time.Time {
	return datemath.DaysInMonth(p.anchor.Year(), p.anchor.Month())
}

// FirstDayOffset returns the number of leading blank cells before day 1 of
// the anchored month, honoring the configured first day of week.
func (p *Picker) FirstDayOffset() int {
	first := int(time.Date(p.anchor.Year(), p.anchor.Month(), 1, 0, 0, 0, 0, p.anchor.Location()).Weekday())
	return (first - p.cfg.FirstDayOfWeek + 7) % 7
}

// MonthsToRender returns the twelve months of the focused year.
func (p *Picker) MonthsToRender() []time.Time {
	y := p.focused.Year()
	out := make([]time.Time, 12)
	for i := range out {
		out[i] = time.Date(y, time.Month(i+1), 1, 0, 0, 0, 0, p.focused.Location())
	}
	return out
}

// YearsToRender returns the displayed aligned 12-year block.
func (p *Picker) YearsToRender() []int {
	return p.yearBlock()
}

// IsSelected reports whether the given day is part of the current selection
// (inside the range, inclusive, for Range mode).
func (p *Picker) IsSelected(day time.Time) bool {
	switch v := p.sel.(type) {
	case Single:
		return !v.Date.IsZero() && datemath.SameDay(v.Date, day)
	case Multiple:
		_, ok := containsDay(v.Dates, day, false)
		return ok
	case Range:
		if v.HasFrom() && datemath.SameDay(v.From, day) {
			return true
		}
		if v.HasTo() && datemath.SameDay(v.To, day) {
			return true
		}
		if v.HasFrom() && v.HasTo() {
			return datemath.AfterDay(day, v.From) && datemath.BeforeDay(day, v.To)
		}
	}
	return false
}

// DisplayValue renders the selection with the effective pattern: multiple
// entries joined with ", " in chronological order, ranges as
// "<from> - <to>" (or "<from> - ..." while the end is unset).
func (p *Picker) DisplayValue() string {
	withTime := p.cfg.EnableTime
	switch v := p.sel.(type) {
	case Single:
		if v.Date.IsZero() {
			return ""
		}
		return dateformat.Format(v.Date, p.pattern, withTime)
	case Multiple:
		if len(v.Dates) == 0 {
			return ""
		}
		parts := make([]string, 0, len(v.Dates))
		for _, d := range sortedDates(v.Dates) {
			parts = append(parts, dateformat.Format(d, p.pattern, withTime))
		}
		return strings.Join(parts, ", ")
	case Range:
		if !v.HasFrom() {
			return ""
		}
		from := dateformat.Format(v.From, p.pattern, withTime)
		if !v.HasTo() {
			return from + " - ..."
		}
		return from + " - " + dateformat.Format(v.To, p.pattern, withTime)
	}
	return ""
}

// CellKey returns the deterministic identity of a renderable cell: days key
// on year+month+day, months on year+month, years on year alone. Keys are
// stable across renders so a shell can track its active cell without the
// engine knowing how cells are drawn.
func CellKey(view View, t time.Time) string {
	switch view {
	case ViewMonths:
		return "m-" + strconv.Itoa(t.Year()) + "-" + pad2(int(t.Month()))
	case ViewYears:
		return "y-" + strconv.Itoa(t.Year())
	default:
		return "d-" + strconv.Itoa(t.Year()) + "-" + pad2(int(t.Month())) + "-" + pad2(t.Day())
	}
}

// FocusedCellKey returns the key of the cell holding logical focus.
func (p *Picker) FocusedCellKey() string {
	return CellKey(p.view, p.focused)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
