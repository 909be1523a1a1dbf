package tui

import "github.com/charmbracelet/lipgloss"

// Grid styles. Everything adaptive so the calendar stays readable on both
// light and dark terminals.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSurfaceFg)

	styleWeekdayHeader = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorChromeMutedFg)

	styleDay = lipgloss.NewStyle().
			Foreground(colorSurfaceFg)

	styleDayDisabled = lipgloss.NewStyle().
				Foreground(colorMuted)

	styleDayToday = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	styleDaySelected = lipgloss.NewStyle().
				Foreground(colorAccentFg).
				Background(colorAccent)

	styleDayFocused = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSelectedFg).
			Background(colorSelectedBg)

	styleValue = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorFlashErrorFg)

	styleHelpLine = lipgloss.NewStyle().
			Foreground(colorChromeMutedFg)

	styleTimeSegment = lipgloss.NewStyle().
				Foreground(colorSurfaceFg)

	styleTimeSegmentFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSelectedFg).
				Background(colorSelectedBg)
)
