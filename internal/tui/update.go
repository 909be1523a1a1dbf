package tui

import (
	"fmt"
	"os"
	"time"

	"datepick-cli/internal/dateformat"
	"datepick-cli/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.debugEnabled {
			m.appendDebugLog("key " + msg.String())
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m pickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.canceled = true
		return m, tea.Quit
	}

	// The help overlay swallows everything; any key closes it.
	if m.helpActive {
		m.helpActive = false
		return m, nil
	}

	if m.entryActive {
		return m.handleEntryKey(msg)
	}

	key := msg.String()
	switch key {
	case "q":
		m.canceled = true
		return m, tea.Quit
	case "esc":
		// Zoom out one level; a third esc (already at years) cancels.
		if m.p.View() == picker.ViewYears {
			m.canceled = true
			return m, tea.Quit
		}
		m.p.ZoomOut()
		m.statusMsg = ""
		return m, nil
	case "/":
		m.entryActive = true
		m.entry.SetValue("")
		m.entry.Focus()
		m.statusMsg = ""
		return m, nil
	case "?":
		m.helpActive = true
		return m, nil
	case "t":
		if m.p.View() == picker.ViewDays {
			m.p.FocusDate(m.now())
			m.statusMsg = ""
			return m, nil
		}
	case "ctrl+s":
		if picker.IsEmpty(m.p.Value()) {
			m.statusMsg = "nothing selected"
			return m, nil
		}
		m.accepted = true
		return m, tea.Quit
	case "tab":
		if m.p.TimeEnabled() {
			m.timeFocus = nextTimeSegment(m.timeFocus)
			return m, nil
		}
	}

	if m.timeFocus != timeFocusNone {
		if handled, next := m.bumpTime(key); handled {
			return next, nil
		}
	}

	if m.p.HandleKey(key) {
		m.statusMsg = ""
		if m.p.TakeCloseRequest() {
			m.accepted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.entryActive = false
		m.entry.Blur()
		m.statusMsg = ""
		return m, nil
	case tea.KeyEnter:
		d, err := dateformat.ParseDay(m.entry.Value(), m.p.Pattern())
		if err != nil {
			// Unparseable input is "no change"; keep the entry open.
			m.statusMsg = "unrecognized date (pattern: " + m.p.Pattern() + ")"
			return m, nil
		}
		m.p.FocusDate(d)
		m.entryActive = false
		m.entry.Blur()
		m.statusMsg = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

// bumpTime adjusts the focused time segment. Hours wrap at 24; minute
// over/underflow carries into the hour, as in clock arithmetic.
func (m pickerModel) bumpTime(key string) (bool, pickerModel) {
	var delta int
	switch key {
	case "+", "=", "k", "up":
		delta = 1
	case "-", "_", "j", "down":
		delta = -1
	default:
		return false, m
	}

	tod := m.p.Time()
	h, mi := tod.Hour, tod.Minute
	switch m.timeFocus {
	case timeFocusHour:
		h += delta
		for h < 0 {
			h += 24
		}
		for h >= 24 {
			h -= 24
		}
	case timeFocusMinute:
		mi += delta
		for mi < 0 {
			mi += 60
			h--
		}
		for mi >= 60 {
			mi -= 60
			h++
		}
		for h < 0 {
			h += 24
		}
		for h >= 24 {
			h -= 24
		}
	}
	m.p.SetTime(h, mi)
	return true, m
}

func nextTimeSegment(s timeSegment) timeSegment {
	switch s {
	case timeFocusNone:
		return timeFocusHour
	case timeFocusHour:
		return timeFocusMinute
	default:
		return timeFocusNone
	}
}

func (m pickerModel) appendDebugLog(line string) {
	if m.debugLogPath == "" {
		return
	}
	f, err := os.OpenFile(m.debugLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s %s\n", time.Now().Format(time.RFC3339), line)
}
