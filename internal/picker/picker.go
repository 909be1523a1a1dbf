// Package picker implements the calendar state machine behind datepick: a
// three-level (days/months/years) view controller, a mode-aware selection
// engine, keyboard routing, and the derived data a rendering shell needs.
//
// The package owns no terminal state. The shell forwards activation and key
// events verbatim and reads back anchor/focus/selection plus render helpers;
// cells are addressed by deterministic string keys so the shell never leaks
// its own identity scheme into the engine.
package picker

import (
	"time"

	"datepick-cli/internal/constraint"
	"datepick-cli/internal/datemath"
	"datepick-cli/internal/dateformat"
)

// Mode selects how day clicks accumulate into a Selection. It is fixed for
// the lifetime of a Picker; changing it under an existing selection is
// undefined.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMultiple
	ModeRange
)

// View is the active calendar zoom level.
type View int

const (
	ViewDays View = iota
	ViewMonths
	ViewYears
)

// YearBlockSize is the number of years shown together in the Years view.
const YearBlockSize = 12

// TimeOfDay is the pending time merged into dates at selection time when
// time editing is enabled.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Config carries the inbound picker properties.
type Config struct {
	Mode        Mode
	Initial     Selection
	Constraints constraint.Set
	// DateFormat is the display pattern (dateformat tokens). Empty means
	// dateformat.DefaultPattern. When EnableTime is set the default time
	// segment is appended unless the pattern already has time tokens.
	DateFormat     string
	EnableTime     bool
	FirstDayOfWeek int // 0 = Sunday
	// Now overrides the clock for tests.
	Now func() time.Time
	// OnChange fires whenever the selection value changes, before the
	// focus cell is updated for the same gesture.
	OnChange func(Selection)
}

// Picker is the calendar state machine. All methods are synchronous; every
// user gesture runs to completion before the next is handled.
type Picker struct {
	cfg     Config
	pattern string

	sel Selection
	tod TimeOfDay

	view    View
	anchor  time.Time // day 1 of the displayed month
	focused time.Time

	closeRequested bool

	// Shift-letter month shortcut cycling. Owned here (not free-floating)
	// so the transition function stays pure and testable: pressing a
	// different letter resets the cycle.
	shortcutLetter rune
	shortcutIdx    int
}

// New builds a Picker and derives the initial anchor and focus from the
// initial value, falling back to today, clamped into the constraint bounds
// and moved to the nearest admissible day.
func New(cfg Config) *Picker {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	pattern := cfg.DateFormat
	if pattern == "" {
		pattern = dateformat.DefaultPattern
	}
	if cfg.EnableTime {
		pattern = dateformat.WithTime(pattern)
	}
	p := &Picker{
		cfg:     cfg,
		pattern: pattern,
		sel:     cfg.Initial,
	}
	if p.sel == nil {
		p.sel = None{}
	}
	if cfg.EnableTime {
		if d, ok := firstDate(p.sel); ok {
			p.tod = TimeOfDay{Hour: d.Hour(), Minute: d.Minute()}
		}
	}
	p.deriveAnchorFocus()
	return p
}

// deriveAnchorFocus recomputes anchor and focus from the current value and
// constraints. Used on construction and whenever value/constraints change
// from outside while the picker is not mid-gesture.
func (p *Picker) deriveAnchorFocus() {
	cand, ok := firstDate(p.sel)
	if !ok {
		cand = p.cfg.Now()
	}
	cand = p.cfg.Constraints.Clamp(datemath.DayOf(cand))
	p.focused = p.cfg.Constraints.FirstAdmissible(cand, 0)
	p.anchor = monthAnchor(p.focused)
}

// Value returns the current selection.
func (p *Picker) Value() Selection { return p.sel }

// SetValue replaces the selection from outside and re-derives anchor/focus.
func (p *Picker) SetValue(sel Selection) {
	if sel == nil {
		sel = None{}
	}
	p.sel = sel
	p.deriveAnchorFocus()
}

// Constraints returns the active constraint set.
func (p *Picker) Constraints() constraint.Set { return p.cfg.Constraints }

// SetConstraints replaces the constraint set and re-derives anchor/focus so
// the focused cell stays admissible.
func (p *Picker) SetConstraints(c constraint.Set) {
	p.cfg.Constraints = c
	p.deriveAnchorFocus()
}

// Mode returns the configured selection mode.
func (p *Picker) Mode() Mode { return p.cfg.Mode }

// TimeEnabled reports whether a time-of-day component is being edited.
func (p *Picker) TimeEnabled() bool { return p.cfg.EnableTime }

// FirstDayOfWeek returns the weekday index (0=Sunday) grids start on.
func (p *Picker) FirstDayOfWeek() int { return p.cfg.FirstDayOfWeek }

// Pattern returns the effective display pattern (time segment included when
// time is enabled).
func (p *Picker) Pattern() string { return p.pattern }

// View returns the active zoom level.
func (p *Picker) View() View { return p.view }

// Anchor returns day 1 of the month whose page is displayed. In the Years
// view only its year (block) is significant.
func (p *Picker) Anchor() time.Time { return p.anchor }

// Focused returns the cell with logical keyboard focus. In Days view the
// full date matters; in Months view its year+month; in Years view its year.
func (p *Picker) Focused() time.Time { return p.focused }

// Time returns the pending time-of-day.
func (p *Picker) Time() TimeOfDay { return p.tod }

// TakeCloseRequest reports whether the last gesture completed a selection
// that should dismiss the picker, and clears the flag.
func (p *Picker) TakeCloseRequest() bool {
	c := p.closeRequested
	p.closeRequested = false
	return c
}

// FocusDate moves focus to the nearest admissible day at-or-around target
// (clamped into bounds first) and reconciles the anchor. Used by the typed
// date entry and the today shortcut.
func (p *Picker) FocusDate(target time.Time) {
	p.moveFocus(p.cfg.Constraints.Clamp(datemath.DayOf(target)), 0)
}

// moveFocus routes every focus change: the target passes through the
// admissibility search with the direction of travel, then the anchor is
// updated whenever the landed cell left the displayed page.
func (p *Picker) moveFocus(target time.Time, dir int) {
	p.focused = p.cfg.Constraints.FirstAdmissible(target, dir)
	p.reconcileAnchor()
}

// reconcileAnchor keeps the displayed page containing the focused cell:
// month+year in Days view, year in Months view, year block in Years view.
func (p *Picker) reconcileAnchor() {
	switch p.view {
	case ViewDays:
		if p.anchor.Year() != p.focused.Year() || p.anchor.Month() != p.focused.Month() {
			p.anchor = monthAnchor(p.focused)
		}
	case ViewMonths:
		if p.anchor.Year() != p.focused.Year() {
			p.anchor = monthAnchor(p.focused)
		}
	case ViewYears:
		ab := datemath.YearBlock(p.anchor.Year(), YearBlockSize)
		fb := datemath.YearBlock(p.focused.Year(), YearBlockSize)
		if ab[0] != fb[0] {
			p.anchor = monthAnchor(p.focused)
		}
	}
}

func monthAnchor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// emitChange publishes a new value. Per the gesture ordering contract this
// always runs before the focus cell moves.
func (p *Picker) emitChange(sel Selection) {
	p.sel = sel
	if p.cfg.OnChange != nil {
		p.cfg.OnChange(sel)
	}
}
