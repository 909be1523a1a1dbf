package tui

import (
	"os"
	"strings"
	"time"

	"datepick-cli/internal/picker"

	"github.com/charmbracelet/bubbles/textinput"
)

// timeSegment is the hour/minute sub-focus of the time row (--time only).
type timeSegment int

const (
	timeFocusNone timeSegment = iota
	timeFocusHour
	timeFocusMinute
)

type pickerModel struct {
	p *picker.Picker

	width  int
	height int

	// Typed-date entry ("/"): parsed with the configured pattern, a valid
	// parse jumps focus to that date.
	entry       textinput.Model
	entryActive bool

	helpActive bool

	timeFocus timeSegment

	accepted bool
	canceled bool

	statusMsg string

	debugEnabled bool
	debugLogPath string
}

func newPickerModel(p *picker.Picker) pickerModel {
	ti := textinput.New()
	ti.Placeholder = p.Pattern()
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 24

	m := pickerModel{
		p:     p,
		entry: ti,
	}
	if strings.TrimSpace(os.Getenv("DATEPICK_TUI_DEBUG")) != "" {
		m.debugEnabled = true
	}
	m.debugLogPath = strings.TrimSpace(os.Getenv("DATEPICK_TUI_DEBUG_LOG"))
	return m
}

// now is the shell's clock for the today shortcut; the engine carries its
// own (test-overridable) clock.
func (m pickerModel) now() time.Time {
	return time.Now()
}
