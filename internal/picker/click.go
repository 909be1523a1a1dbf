package picker

import (
	"time"

	"datepick-cli/internal/datemath"
)

// ClickDay applies a day activation (click, or Enter/Space in the Days
// view). Inadmissible days are a silent no-op. The new value is emitted
// before focus moves to the clicked day.
func (p *Picker) ClickDay(day time.Time) {
	day = datemath.DayOf(day)
	if !p.cfg.Constraints.Admissible(day) {
		return
	}
	merged := p.mergeClickTime(day)

	switch p.cfg.Mode {
	case ModeSingle:
		p.emitChange(Single{Date: merged})
		if !p.cfg.EnableTime {
			p.closeRequested = true
		}
	case ModeMultiple:
		p.clickMultiple(merged)
	case ModeRange:
		p.clickRange(merged)
	}

	p.moveFocus(datemath.DayOf(merged), 0)
}

// mergeClickTime merges the pending time-of-day into a clicked day. In
// Single mode an already-selected date keeps its own hour/minute: the time
// attached to the value beats a stale time control.
func (p *Picker) mergeClickTime(day time.Time) time.Time {
	if !p.cfg.EnableTime {
		return day
	}
	h, m := p.tod.Hour, p.tod.Minute
	if p.cfg.Mode == ModeSingle {
		if cur, ok := p.sel.(Single); ok && !cur.Date.IsZero() {
			h, m = cur.Date.Hour(), cur.Date.Minute()
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

// clickMultiple toggles the candidate: a matching entry (same day, and same
// hour/minute when time is enabled) is removed, otherwise it is appended.
func (p *Picker) clickMultiple(cand time.Time) {
	cur, _ := p.sel.(Multiple)
	if i, ok := containsDay(cur.Dates, cand, p.cfg.EnableTime); ok {
		next := make([]time.Time, 0, len(cur.Dates)-1)
		next = append(next, cur.Dates[:i]...)
		next = append(next, cur.Dates[i+1:]...)
		p.emitChange(Multiple{Dates: next})
		return
	}
	next := make([]time.Time, 0, len(cur.Dates)+1)
	next = append(next, cur.Dates...)
	next = append(next, cand)
	p.emitChange(Multiple{Dates: next})
}

// clickRange walks the range lifecycle: first click starts a range, the
// second completes it (ends swapped so From <= To), clicking the pending
// start again clears it, and any click on a completed range restarts.
func (p *Picker) clickRange(cand time.Time) {
	cur, _ := p.sel.(Range)
	switch {
	case !cur.HasFrom() || cur.HasTo():
		p.emitChange(Range{From: cand})
	case datemath.SameDay(cand, cur.From):
		p.emitChange(Range{})
	default:
		from, to := cur.From, cand
		if datemath.BeforeDay(to, from) {
			from, to = to, from
		}
		p.emitChange(Range{From: from, To: to})
		if !p.cfg.EnableTime {
			p.closeRequested = true
		}
	}
}

// SetTime records a time-only edit (hour/minute changed without a day
// click) and re-applies it to the active date of the current mode: the
// single value, or the range end when complete, else the range start. The
// selection is left alone if the resulting date would be inadmissible: a
// time edit must not walk the value into a disabled day.
func (p *Picker) SetTime(hour, minute int) {
	if !p.cfg.EnableTime {
		return
	}
	p.tod = TimeOfDay{Hour: hour, Minute: minute}

	apply := func(d time.Time) (time.Time, bool) {
		if !p.cfg.Constraints.Admissible(d) {
			return d, false
		}
		return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location()), true
	}

	switch cur := p.sel.(type) {
	case Single:
		if cur.Date.IsZero() {
			return
		}
		if d, ok := apply(cur.Date); ok {
			p.emitChange(Single{Date: d})
		}
	case Range:
		switch {
		case cur.HasFrom() && cur.HasTo():
			if d, ok := apply(cur.To); ok {
				p.emitChange(Range{From: cur.From, To: d})
			}
		case cur.HasFrom():
			if d, ok := apply(cur.From); ok {
				p.emitChange(Range{From: d})
			}
		}
	}
}

// Activate triggers the focused cell: a day click, month pick or year pick
// depending on the active view.
func (p *Picker) Activate() {
	switch p.view {
	case ViewDays:
		p.ClickDay(p.focused)
	case ViewMonths:
		p.PickMonth(p.focused.Month())
	case ViewYears:
		p.PickYear(p.focused.Year())
	}
}
