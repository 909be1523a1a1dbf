package dateformat

import (
	"errors"
	"testing"
	"time"
)

func TestFormatDateTokens(t *testing.T) {
	t.Parallel()

	// 2026-03-09 is a Monday.
	d := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.Local)

	tests := []struct {
		pattern string
		want    string
	}{
		{"YYYY-MM-DD", "2026-03-09"},
		{"DD/MM/YYYY", "09/03/2026"},
		{"MMMM DD, YYYY", "March 09, 2026"},
		{"ddd MMM DD YYYY", "Mon Mar 09 2026"},
		// Name tokens must win over the numeric MM they contain.
		{"MMM MM", "Mar 03"},
		{"MMMM (MM)", "March (03)"},
	}
	for _, tt := range tests {
		if got := Format(d, tt.pattern, false); got != tt.want {
			t.Fatalf("Format(%q)=%q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestFormatTimeTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour, minute int
		want         string
	}{
		{0, 5, "12:05 AM"},
		{9, 30, "09:30 AM"},
		{12, 0, "12:00 PM"},
		{13, 45, "01:45 PM"},
		{23, 59, "11:59 PM"},
	}
	for _, tt := range tests {
		d := time.Date(2026, time.March, 9, tt.hour, tt.minute, 0, 0, time.Local)
		if got := Format(d, "hh:mm K", true); got != tt.want {
			t.Fatalf("Format(%02d:%02d)=%q, want %q", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestWithTime(t *testing.T) {
	t.Parallel()

	if got := WithTime("YYYY-MM-DD"); got != "YYYY-MM-DD hh:mm K" {
		t.Fatalf("WithTime=%q", got)
	}
	// Patterns that already carry time tokens are left alone.
	if got := WithTime("YYYY-MM-DD hh:mm"); got != "YYYY-MM-DD hh:mm" {
		t.Fatalf("WithTime(time pattern)=%q", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []time.Time{
		time.Date(2026, time.March, 9, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local),
		time.Date(1999, time.December, 31, 0, 0, 0, 0, time.Local),
	}
	for _, want := range tests {
		s := Format(want, DefaultPattern, false)
		got, err := Parse(s, DefaultPattern, false)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if !got.Equal(want) {
			t.Fatalf("Parse(%q)=%v, want %v", s, got, want)
		}
	}
}

func TestParseWithTimeRoundTrip(t *testing.T) {
	t.Parallel()

	pattern := "YYYY-MM-DD hh:mm K"
	tests := []time.Time{
		time.Date(2026, time.March, 9, 0, 5, 0, 0, time.Local),   // 12:05 AM
		time.Date(2026, time.March, 9, 12, 0, 0, 0, time.Local),  // 12:00 PM
		time.Date(2026, time.March, 9, 13, 45, 0, 0, time.Local), // 01:45 PM
	}
	for _, want := range tests {
		s := Format(want, pattern, true)
		got, err := Parse(s, pattern, true)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if !got.Equal(want) {
			t.Fatalf("Parse(%q)=%v, want %v", s, got, want)
		}
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []string{
		"2026-04-31", // day 31 in a 30-day month
		"2026-13-01", // month 13
		"2026-02-30",
		"2026-xx-01",
		"garbage",
		"",
	}
	for _, s := range tests {
		if _, err := Parse(s, DefaultPattern, false); !errors.Is(err, ErrParse) {
			t.Fatalf("Parse(%q) err=%v, want ErrParse", s, err)
		}
	}
}

func TestParseRejectsBadMarker(t *testing.T) {
	t.Parallel()

	if _, err := Parse("03:00 XX", "hh:mm K", true); !errors.Is(err, ErrParse) {
		t.Fatalf("bad AM/PM marker err=%v, want ErrParse", err)
	}
	if _, err := Parse("03:00", "hh:mm K", true); !errors.Is(err, ErrParse) {
		t.Fatalf("truncated marker err=%v, want ErrParse", err)
	}
}

func TestParseDefaultsMissingFieldsToToday(t *testing.T) {
	t.Parallel()

	now := time.Now()
	got, err := Parse("07", "DD", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Year() != now.Year() || got.Month() != now.Month() || got.Day() != 7 {
		t.Fatalf("Parse(\"07\", \"DD\")=%v, want day 7 of current month", got)
	}
}

func TestParseIgnoresMonthNameRunForNumericMonth(t *testing.T) {
	t.Parallel()

	// The MM lookup must not anchor inside MMM: the month field is simply
	// absent from this pattern and defaults to today's, while the day and
	// year still slice out of their own offsets.
	now := time.Now()
	got, err := Parse("09 Mar 2026", "DD MMM YYYY", false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Day() != 9 || got.Year() != 2026 || got.Month() != now.Month() {
		t.Fatalf("Parse(\"09 Mar 2026\")=%v, want day 9, year 2026, current month", got)
	}
}

func TestTokenIndexSkipsLongerRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		token   string
		want    int
	}{
		{"YYYY-MM-DD", "MM", 5},
		{"MM/DD", "MM", 0},
		{"MMM DD", "MM", -1},
		{"MMMM DD", "MM", -1},
		{"MMMM DD", "MMM", -1},
		{"MMM MM", "MM", 4},
		{"DD", "MM", -1},
	}
	for _, tt := range tests {
		if got := tokenIndex(tt.pattern, tt.token); got != tt.want {
			t.Fatalf("tokenIndex(%q, %q)=%d, want %d", tt.pattern, tt.token, got, tt.want)
		}
	}
}

func TestParseDayNormalizesToMidnight(t *testing.T) {
	t.Parallel()

	got, err := ParseDay("2026-03-09", DefaultPattern)
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("ParseDay kept time-of-day: %v", got)
	}
}

func TestMonthNames(t *testing.T) {
	t.Parallel()

	if MonthName(time.September) != "September" || MonthNameShort(time.September) != "Sep" {
		t.Fatal("month name tables wrong for September")
	}
}
