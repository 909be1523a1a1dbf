package picker

import (
	"time"

	"datepick-cli/internal/datemath"
)

// ZoomOut steps the zoom level Days -> Months -> Years, as triggered by the
// header labels. The anchor is unchanged; focus moves to the cell matching
// the current anchor (its month, then its year).
func (p *Picker) ZoomOut() {
	switch p.view {
	case ViewDays:
		p.view = ViewMonths
		p.focused = time.Date(p.anchor.Year(), p.anchor.Month(), 1, 0, 0, 0, 0, p.anchor.Location())
	case ViewMonths:
		p.view = ViewYears
		p.focused = time.Date(p.anchor.Year(), p.focused.Month(), 1, 0, 0, 0, 0, p.anchor.Location())
	case ViewYears:
		// Already at the outermost level.
	}
}

// PickMonth completes a month pick: the anchor becomes day 1 of the picked
// month in the focused year, focus clamps to the nearest admissible day
// from there, and the view returns to Days. The machine itself keeps
// running; "completes" only ends this pick gesture.
func (p *Picker) PickMonth(m time.Month) {
	day1 := time.Date(p.focused.Year(), m, 1, 0, 0, 0, 0, p.focused.Location())
	p.anchor = day1
	p.view = ViewDays
	p.moveFocus(day1, 0)
}

// PickYear completes a year pick: the anchor moves to (picked year, focused
// month), focus clamps the same way, and the view returns to Months.
func (p *Picker) PickYear(y int) {
	day1 := time.Date(y, p.focused.Month(), 1, 0, 0, 0, 0, p.focused.Location())
	p.anchor = day1
	p.view = ViewMonths
	p.moveFocus(day1, 0)
}

// yearBlock returns the displayed 12-year block (the anchor's block).
func (p *Picker) yearBlock() []int {
	return datemath.YearBlock(p.anchor.Year(), YearBlockSize)
}
