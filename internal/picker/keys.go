package picker

import (
	"time"

	"datepick-cli/internal/datemath"
)

// shortcutMonths maps the shift-letter month shortcuts to their candidate
// months. Letters with several candidates cycle on repeated presses
// (J: Jan -> Jun -> Jul -> Jan, M: Mar -> May, A: Apr -> Aug).
var shortcutMonths = map[rune][]time.Month{
	'J': {time.January, time.June, time.July},
	'F': {time.February},
	'M': {time.March, time.May},
	'A': {time.April, time.August},
	'S': {time.September},
	'O': {time.October},
	'N': {time.November},
	'D': {time.December},
}

// HandleKey routes a key (bubbletea key-string name, e.g. "left",
// "shift+up", "pgdown", "enter", " ", or an uppercase rune for
// shift+letter) into a focus move or activation for the current view.
// It reports whether the key was consumed; unrecognized keys are left to
// the shell.
func (p *Picker) HandleKey(key string) bool {
	switch key {
	case "enter", " ", "space":
		p.Activate()
		return true
	}

	var handled bool
	switch p.view {
	case ViewDays:
		handled = p.handleDaysKey(key)
	case ViewMonths:
		handled = p.handleMonthsKey(key)
	case ViewYears:
		handled = p.handleYearsKey(key)
	}
	return handled
}

func (p *Picker) handleDaysKey(key string) bool {
	f := p.focused
	switch key {
	case "left":
		p.moveFocus(datemath.AddDays(f, -1), -1)
	case "right":
		p.moveFocus(datemath.AddDays(f, 1), 1)
	case "up":
		p.moveFocus(datemath.AddWeeks(f, -1), -1)
	case "down":
		p.moveFocus(datemath.AddWeeks(f, 1), 1)
	case "pgup":
		p.moveFocus(datemath.AddMonths(f, -1), -1)
	case "pgdown":
		p.moveFocus(datemath.AddMonths(f, 1), 1)
	case "home":
		p.moveFocus(datemath.StartOfWeek(f, p.cfg.FirstDayOfWeek), 1)
	case "end":
		p.moveFocus(datemath.DayOf(datemath.EndOfWeek(f, p.cfg.FirstDayOfWeek)), -1)
	case "shift+left":
		p.moveFocus(datemath.AddYears(f, -1), -1)
	case "shift+right":
		p.moveFocus(datemath.AddYears(f, 1), 1)
	case "shift+up":
		p.moveFocus(datemath.AddMonths(f, -1), -1)
	case "shift+down":
		p.moveFocus(datemath.AddMonths(f, 1), 1)
	case "shift+pgup":
		p.moveFocus(datemath.AddYears(f, -1), -1)
	case "shift+pgdown":
		p.moveFocus(datemath.AddYears(f, 1), 1)
	default:
		return p.handleMonthShortcut(key)
	}
	return true
}

// handleMonthShortcut jumps focus to day 1 of a named month in the focused
// year. Repeating the same letter advances through its candidate months;
// any other letter restarts its own cycle from the first candidate.
func (p *Picker) handleMonthShortcut(key string) bool {
	if len(key) != 1 {
		return false
	}
	letter := rune(key[0])
	months, ok := shortcutMonths[letter]
	if !ok {
		return false
	}
	if p.shortcutLetter == letter {
		p.shortcutIdx = (p.shortcutIdx + 1) % len(months)
	} else {
		p.shortcutLetter = letter
		p.shortcutIdx = 0
	}
	m := months[p.shortcutIdx]
	target := time.Date(p.focused.Year(), m, 1, 0, 0, 0, 0, p.focused.Location())
	p.moveFocus(target, 1)
	return true
}

func (p *Picker) handleMonthsKey(key string) bool {
	f := p.focused
	switch key {
	case "left":
		p.moveFocus(datemath.AddMonths(f, -1), -1)
	case "right":
		p.moveFocus(datemath.AddMonths(f, 1), 1)
	case "up":
		p.moveFocus(datemath.AddMonths(f, -3), -1)
	case "down":
		p.moveFocus(datemath.AddMonths(f, 3), 1)
	case "pgup":
		p.moveFocus(datemath.AddYears(f, -1), -1)
	case "pgdown":
		p.moveFocus(datemath.AddYears(f, 1), 1)
	case "home":
		p.moveFocus(time.Date(f.Year(), time.January, 1, 0, 0, 0, 0, f.Location()), 1)
	case "end":
		p.moveFocus(time.Date(f.Year(), time.December, 1, 0, 0, 0, 0, f.Location()), -1)
	default:
		return false
	}
	return true
}

func (p *Picker) handleYearsKey(key string) bool {
	f := p.focused
	switch key {
	case "left":
		p.moveFocus(datemath.AddYears(f, -1), -1)
	case "right":
		p.moveFocus(datemath.AddYears(f, 1), 1)
	case "up":
		p.moveFocus(datemath.AddYears(f, -3), -1)
	case "down":
		p.moveFocus(datemath.AddYears(f, 3), 1)
	case "pgup":
		p.moveFocus(datemath.AddYears(f, -YearBlockSize), -1)
	case "pgdown":
		p.moveFocus(datemath.AddYears(f, YearBlockSize), 1)
	case "home":
		block := p.yearBlock()
		p.moveFocus(time.Date(block[0], f.Month(), 1, 0, 0, 0, 0, f.Location()), 1)
	case "end":
		block := p.yearBlock()
		p.moveFocus(time.Date(block[len(block)-1], f.Month(), 1, 0, 0, 0, 0, f.Location()), -1)
	default:
		return false
	}
	return true
}
