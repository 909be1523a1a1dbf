package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"datepick-cli/internal/datemath"
	"datepick-cli/internal/dateformat"
	"datepick-cli/internal/docs"
	"datepick-cli/internal/picker"
)

const (
	dayCellW  = 3
	gridW     = 7 * dayCellW
	wideCellW = 7
	wideGridW = 3 * wideCellW
)

var weekdayShort = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

func (m pickerModel) View() string {
	if m.helpActive {
		return m.helpView()
	}

	var sb strings.Builder
	switch m.p.View() {
	case picker.ViewDays:
		sb.WriteString(m.daysView())
	case picker.ViewMonths:
		sb.WriteString(m.monthsView())
	case picker.ViewYears:
		sb.WriteString(m.yearsView())
	}

	if m.p.TimeEnabled() {
		sb.WriteString("\n")
		sb.WriteString(m.timeRow())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.valueLine())

	if m.entryActive {
		sb.WriteString("\n\n")
		sb.WriteString(styleHelpLine.Render("jump to date (" + m.p.Pattern() + ")"))
		sb.WriteString("\n")
		sb.WriteString(m.entry.View())
	}

	if m.statusMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(styleStatus.Render(m.statusMsg))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.helpLine())
	return sb.String()
}

func (m pickerModel) daysView() string {
	anchor := m.p.Anchor()
	title := dateformat.MonthName(anchor.Month()) + " " + strconv.Itoa(anchor.Year())

	var sb strings.Builder
	sb.WriteString(centerLine(styleTitle.Render(title), gridW))
	sb.WriteString("\n")

	first := m.p.FirstDayOfWeek()
	names := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		names = append(names, fmt.Sprintf("%*s", dayCellW-1, weekdayShort[(first+i)%7]))
	}
	sb.WriteString(styleWeekdayHeader.Render(strings.Join(names, " ")))
	sb.WriteString("\n")

	now := m.now()
	col := 0
	for i := 0; i < m.p.FirstDayOffset(); i++ {
		sb.WriteString(strings.Repeat(" ", dayCellW))
		col++
	}
	for _, day := range m.p.DaysToRender() {
		sb.WriteString(m.dayCell(day, now))
		col++
		if col == 7 {
			sb.WriteString("\n")
			col = 0
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m pickerModel) dayCell(day, now time.Time) string {
	label := fmt.Sprintf("%*d ", dayCellW-1, day.Day())
	switch {
	case datemath.SameDay(day, m.p.Focused()):
		return styleDayFocused.Render(label)
	case m.p.IsSelected(day):
		return styleDaySelected.Render(label)
	case !m.p.Constraints().Admissible(day):
		return styleDayDisabled.Render(label)
	case datemath.SameDay(day, now):
		return styleDayToday.Render(label)
	default:
		return styleDay.Render(label)
	}
}

func (m pickerModel) monthsView() string {
	focused := m.p.Focused()
	title := strconv.Itoa(focused.Year())

	var sb strings.Builder
	sb.WriteString(centerLine(styleTitle.Render(title), wideGridW))
	sb.WriteString("\n")

	for i, mo := range m.p.MonthsToRender() {
		label := fmt.Sprintf(" %-*s", wideCellW-1, dateformat.MonthNameShort(mo.Month()))
		if mo.Month() == focused.Month() {
			sb.WriteString(styleDayFocused.Render(label))
		} else {
			sb.WriteString(styleDay.Render(label))
		}
		if (i+1)%3 == 0 {
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m pickerModel) yearsView() string {
	years := m.p.YearsToRender()
	title := strconv.Itoa(years[0]) + " " + glyphRangeSep() + " " + strconv.Itoa(years[len(years)-1])

	var sb strings.Builder
	sb.WriteString(centerLine(styleTitle.Render(title), wideGridW))
	sb.WriteString("\n")

	focusedYear := m.p.Focused().Year()
	for i, y := range years {
		label := fmt.Sprintf(" %-*d", wideCellW-1, y)
		if y == focusedYear {
			sb.WriteString(styleDayFocused.Render(label))
		} else {
			sb.WriteString(styleDay.Render(label))
		}
		if (i+1)%3 == 0 {
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m pickerModel) timeRow() string {
	tod := m.p.Time()
	hour := tod.Hour % 12
	if hour == 0 {
		hour = 12
	}
	marker := "AM"
	if tod.Hour >= 12 {
		marker = "PM"
	}

	h := fmt.Sprintf("%02d", hour)
	mi := fmt.Sprintf("%02d", tod.Minute)
	if m.timeFocus == timeFocusHour {
		h = styleTimeSegmentFocused.Render(h)
	} else {
		h = styleTimeSegment.Render(h)
	}
	if m.timeFocus == timeFocusMinute {
		mi = styleTimeSegmentFocused.Render(mi)
	} else {
		mi = styleTimeSegment.Render(mi)
	}
	return styleHelpLine.Render("time ") + h + styleTimeSegment.Render(":") + mi + styleTimeSegment.Render(" "+marker)
}

func (m pickerModel) valueLine() string {
	display := m.p.DisplayValue()
	if display == "" {
		return styleHelpLine.Render(glyphPointer() + " (empty)")
	}
	return styleValue.Render(glyphPointer() + " " + display)
}

func (m pickerModel) helpLine() string {
	parts := []string{"arrows move", "enter select", "esc zoom out", "/ jump", "t today", "? keys", "ctrl+s accept", "q quit"}
	if m.p.TimeEnabled() {
		parts = append(parts, "tab time")
	}
	return styleHelpLine.Render(strings.Join(parts, "  "))
}

func (m pickerModel) helpView() string {
	body, ok := docs.Get("keys")
	if !ok {
		return "no help available"
	}
	width := m.width
	if width <= 0 || width > 96 {
		width = 96
	}
	rule := styleHelpLine.Render(strings.Repeat(glyphHRule(), min(width, 40)))
	return renderMarkdown(body, width) + "\n" + rule + "\n" + styleHelpLine.Render("press any key to close")
}
