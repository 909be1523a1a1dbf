package tui

import (
	"errors"

	"datepick-cli/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCanceled is returned when the user dismisses the picker without
// accepting a selection. The CLI exits non-zero and prints nothing.
var ErrCanceled = errors.New("picker canceled")

// Run drives the picker until the user accepts or cancels and returns the
// final selection.
func Run(p *picker.Picker) (picker.Selection, error) {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	m := newPickerModel(p)
	out, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	final, ok := out.(pickerModel)
	if !ok || final.canceled || !final.accepted {
		return nil, ErrCanceled
	}
	return p.Value(), nil
}
