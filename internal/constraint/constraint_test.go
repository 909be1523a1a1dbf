package constraint

import (
	"testing"
	"time"

	"datepick-cli/internal/datemath"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestAdmissibleBoundsAndDisabler(t *testing.T) {
	t.Parallel()

	c := Set{
		Min:      day(2026, time.March, 5),
		Max:      day(2026, time.March, 25),
		Disabled: DisabledList{day(2026, time.March, 10)},
	}

	tests := []struct {
		in   time.Time
		want bool
	}{
		{day(2026, time.March, 4), false},
		{day(2026, time.March, 5), true},
		{day(2026, time.March, 10), false},
		{day(2026, time.March, 25), true},
		{day(2026, time.March, 26), false},
		// Time-of-day never matters at the bounds.
		{time.Date(2026, time.March, 5, 23, 59, 0, 0, time.Local), true},
		{time.Date(2026, time.March, 25, 23, 59, 0, 0, time.Local), true},
	}
	for _, tt := range tests {
		if got := c.Admissible(tt.in); got != tt.want {
			t.Fatalf("Admissible(%v)=%v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDisabledWeekdays(t *testing.T) {
	t.Parallel()

	w := DisabledWeekdays{time.Saturday, time.Sunday}
	if !w.Disabled(day(2026, time.March, 7)) { // Saturday
		t.Fatal("saturday not disabled")
	}
	if !w.Disabled(day(2026, time.March, 8)) { // Sunday
		t.Fatal("sunday not disabled")
	}
	if w.Disabled(day(2026, time.March, 9)) { // Monday
		t.Fatal("monday disabled")
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	c := Set{Min: day(2026, time.March, 5), Max: day(2026, time.March, 25)}
	if got := c.Clamp(day(2026, time.February, 1)); !got.Equal(day(2026, time.March, 5)) {
		t.Fatalf("Clamp below=%v, want min", got)
	}
	if got := c.Clamp(day(2026, time.April, 1)); !got.Equal(day(2026, time.March, 25)) {
		t.Fatalf("Clamp above=%v, want max", got)
	}
	if got := c.Clamp(day(2026, time.March, 10)); !got.Equal(day(2026, time.March, 10)) {
		t.Fatalf("Clamp inside=%v, want unchanged", got)
	}
}

func TestFirstAdmissibleDirZero(t *testing.T) {
	t.Parallel()

	c := Set{Disabled: DisabledList{day(2026, time.March, 10)}}

	// Admissible start is returned as-is.
	if got := c.FirstAdmissible(day(2026, time.March, 9), 0); !got.Equal(day(2026, time.March, 9)) {
		t.Fatalf("dir 0 admissible start=%v", got)
	}
	// Inadmissible start prefers the forward neighbor.
	if got := c.FirstAdmissible(day(2026, time.March, 10), 0); !got.Equal(day(2026, time.March, 11)) {
		t.Fatalf("dir 0 forward=%v, want 2026-03-11", got)
	}
}

func TestFirstAdmissibleDirZeroFallsBack(t *testing.T) {
	t.Parallel()

	// Everything at or after the start is inadmissible, so a dir-0 search
	// has to go backward.
	c := Set{
		Max:      day(2026, time.March, 10),
		Disabled: DisabledList{day(2026, time.March, 10)},
	}
	if got := c.FirstAdmissible(day(2026, time.March, 10), 0); !got.Equal(day(2026, time.March, 9)) {
		t.Fatalf("dir 0 backward=%v, want 2026-03-09", got)
	}
}

func TestFirstAdmissibleSkipsWeekend(t *testing.T) {
	t.Parallel()

	c := Set{Disabled: DisabledWeekdays{time.Saturday, time.Sunday}}

	// Friday 2026-03-06 + 1 lands on Saturday; the scan continues to Monday.
	if got := c.FirstAdmissible(day(2026, time.March, 7), 1); !got.Equal(day(2026, time.March, 9)) {
		t.Fatalf("forward over weekend=%v, want monday 2026-03-09", got)
	}
	// Monday - 1 lands on Sunday; the scan continues back to Friday.
	if got := c.FirstAdmissible(day(2026, time.March, 8), -1); !got.Equal(day(2026, time.March, 6)) {
		t.Fatalf("backward over weekend=%v, want friday 2026-03-06", got)
	}
}

func TestFirstAdmissibleForwardFallsBackToMin(t *testing.T) {
	t.Parallel()

	// Min lies more than the scan cap ahead of the start, so the forward
	// scan exhausts and the fallback jumps straight to Min.
	c := Set{Min: day(2030, time.January, 1)}
	if got := c.FirstAdmissible(day(2026, time.March, 1), 1); !got.Equal(day(2030, time.January, 1)) {
		t.Fatalf("forward fallback=%v, want min 2030-01-01", got)
	}
}

func TestFirstAdmissibleBackwardFallsBackToMax(t *testing.T) {
	t.Parallel()

	c := Set{Max: day(2020, time.January, 1)}
	if got := c.FirstAdmissible(day(2026, time.March, 1), -1); !got.Equal(day(2020, time.January, 1)) {
		t.Fatalf("backward fallback=%v, want max 2020-01-01", got)
	}
}

func TestFirstAdmissibleReturnsStartWhenNothingAdmissible(t *testing.T) {
	t.Parallel()

	// Every day disabled: the search must terminate and hand back the
	// start unchanged even though it is inadmissible.
	c := Set{Disabled: DisabledFunc(func(time.Time) bool { return true })}
	start := day(2026, time.March, 1)
	if got := c.FirstAdmissible(start, 1); !got.Equal(start) {
		t.Fatalf("exhausted forward=%v, want start", got)
	}
	if got := c.FirstAdmissible(start, 0); !got.Equal(start) {
		t.Fatalf("exhausted dir 0=%v, want start", got)
	}
}

func TestFirstAdmissibleStopsAtMaxCrossing(t *testing.T) {
	t.Parallel()

	// A forward scan started just below Max stops once it crosses it
	// instead of walking the full cap; with an admissible Min behind, the
	// fallback lands there.
	c := Set{
		Min:      day(2026, time.March, 1),
		Max:      day(2026, time.March, 10),
		Disabled: DisabledFunc(func(d time.Time) bool { return d.Day() >= 9 }),
	}
	if got := c.FirstAdmissible(day(2026, time.March, 9), 1); !got.Equal(day(2026, time.March, 1)) {
		t.Fatalf("forward past max=%v, want fallback to min", got)
	}
}

func TestFirstAdmissibleNormalizesToMidnight(t *testing.T) {
	t.Parallel()

	c := Set{}
	in := time.Date(2026, time.March, 9, 14, 30, 0, 0, time.Local)
	got := c.FirstAdmissible(in, 0)
	if !datemath.SameDay(got, in) {
		t.Fatalf("FirstAdmissible moved days: %v", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("FirstAdmissible kept time-of-day: %v", got)
	}
}
