package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// centerLine centers a rendered line within width columns (ANSI-aware).
func centerLine(s string, width int) string {
	w := xansi.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s
}
