// Package constraint decides which calendar days the picker may land on.
//
// A day is admissible when it is not before the minimum bound, not after the
// maximum bound, and not flagged by the configured Disabler. Bounds and
// disablement are all day-granularity; time-of-day never matters here.
package constraint

import (
	"time"

	"datepick-cli/internal/datemath"
)

// searchCap bounds the linear day scan in FirstAdmissible (~2 years).
const searchCap = 730

// Disabler is the single membership test behind every disabled-dates shape
// (explicit list, predicate, weekday set).
type Disabler interface {
	Disabled(t time.Time) bool
}

// DisabledFunc adapts a predicate to the Disabler interface.
type DisabledFunc func(t time.Time) bool

func (f DisabledFunc) Disabled(t time.Time) bool { return f(t) }

// DisabledList disables every day matching (same-day) one of its entries.
type DisabledList []time.Time

func (l DisabledList) Disabled(t time.Time) bool {
	for _, d := range l {
		if datemath.SameDay(d, t) {
			return true
		}
	}
	return false
}

// DisabledWeekdays disables every day falling on one of the given weekdays.
type DisabledWeekdays []time.Weekday

func (w DisabledWeekdays) Disabled(t time.Time) bool {
	for _, d := range w {
		if t.Weekday() == d {
			return true
		}
	}
	return false
}

// Set is a constraint configuration. Zero-value Min/Max mean "unbounded";
// a nil Disabled means "nothing disabled".
//
// A Min after Max is not validated; the admissibility checks then simply
// reject everything. That is the caller's responsibility.
type Set struct {
	Min      time.Time
	Max      time.Time
	Disabled Disabler
}

// HasMin reports whether a minimum bound is configured.
func (c Set) HasMin() bool { return !c.Min.IsZero() }

// HasMax reports whether a maximum bound is configured.
func (c Set) HasMax() bool { return !c.Max.IsZero() }

// Admissible reports whether t may be focused or selected.
func (c Set) Admissible(t time.Time) bool {
	if c.HasMin() && datemath.BeforeDay(t, c.Min) {
		return false
	}
	if c.HasMax() && datemath.AfterDay(t, c.Max) {
		return false
	}
	if c.Disabled != nil && c.Disabled.Disabled(t) {
		return false
	}
	return true
}

// Clamp bounds t into [Min, Max] at day granularity. It does not consult the
// Disabler.
func (c Set) Clamp(t time.Time) time.Time {
	if c.HasMin() && datemath.BeforeDay(t, c.Min) {
		return datemath.DayOf(c.Min)
	}
	if c.HasMax() && datemath.AfterDay(t, c.Max) {
		return datemath.DayOf(c.Max)
	}
	return t
}

// FirstAdmissible finds a day the picker can land on, starting at start.
//
// dir == 0 checks start itself first; failing that it scans forward, then
// backward. dir == +1 or -1 scans day by day in that direction, capped at
// searchCap iterations, stopping early once the scan crosses Max (forward)
// or Min (backward).
//
// The function always returns some date. When every scan and fallback is
// exhausted it returns start unchanged, which may itself be inadmissible;
// callers that drive interactive focus must tolerate that escape hatch.
func (c Set) FirstAdmissible(start time.Time, dir int) time.Time {
	start = datemath.DayOf(start)
	if dir == 0 {
		if c.Admissible(start) {
			return start
		}
		if fwd := c.scan(start, 1); !datemath.SameDay(fwd, start) && c.Admissible(fwd) {
			return fwd
		}
		return c.scan(start, -1)
	}
	return c.scan(start, dir)
}

func (c Set) scan(start time.Time, dir int) time.Time {
	cur := start
	for i := 0; i < searchCap; i++ {
		if c.Admissible(cur) {
			return cur
		}
		if dir > 0 && c.HasMax() && datemath.AfterDay(cur, c.Max) {
			break
		}
		if dir < 0 && c.HasMin() && datemath.BeforeDay(cur, c.Min) {
			break
		}
		cur = datemath.AddDays(cur, dir)
	}
	return c.scanFallback(start, dir)
}

// scanFallback picks the documented last-resort value once a directional
// scan has run out. The asymmetry (prefer the bound that lies ahead in the
// direction of travel) is intentional.
func (c Set) scanFallback(start time.Time, dir int) time.Time {
	if dir > 0 && c.HasMin() && datemath.AfterDay(c.Min, start) && c.admissibleIgnoringMin(c.Min) {
		return datemath.DayOf(c.Min)
	}
	if dir < 0 && c.HasMax() && datemath.BeforeDay(c.Max, start) && c.admissibleIgnoringMax(c.Max) {
		return datemath.DayOf(c.Max)
	}
	if c.HasMin() && c.Admissible(c.Min) {
		return datemath.DayOf(c.Min)
	}
	if c.HasMax() && c.Admissible(c.Max) {
		return datemath.DayOf(c.Max)
	}
	return start
}

func (c Set) admissibleIgnoringMin(t time.Time) bool {
	if c.HasMax() && datemath.AfterDay(t, c.Max) {
		return false
	}
	return c.Disabled == nil || !c.Disabled.Disabled(t)
}

func (c Set) admissibleIgnoringMax(t time.Time) bool {
	if c.HasMin() && datemath.BeforeDay(t, c.Min) {
		return false
	}
	return c.Disabled == nil || !c.Disabled.Disabled(t)
}
