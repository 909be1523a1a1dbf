package cli

import (
	"testing"
	"time"

	"datepick-cli/internal/picker"

	"github.com/spf13/cobra"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuildConfigModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want picker.Mode
	}{
		{"single", picker.ModeSingle},
		{"", picker.ModeSingle},
		{"Multiple", picker.ModeMultiple},
		{"range", picker.ModeRange},
	}
	for _, tt := range tests {
		app := &App{Mode: tt.in}
		cfg, err := buildConfig(&cobra.Command{}, app)
		if err != nil {
			t.Fatalf("buildConfig(%q): %v", tt.in, err)
		}
		if cfg.Mode != tt.want {
			t.Fatalf("mode(%q)=%v, want %v", tt.in, cfg.Mode, tt.want)
		}
	}

	if _, err := buildConfig(&cobra.Command{}, &App{Mode: "both"}); err == nil {
		t.Fatal("unknown mode did not error")
	}
}

func TestBuildConfigValidatesFirstDow(t *testing.T) {
	t.Parallel()

	if _, err := buildConfig(&cobra.Command{}, &App{FirstDow: 7}); err == nil {
		t.Fatal("first-dow 7 did not error")
	}
	cfg, err := buildConfig(&cobra.Command{}, &App{FirstDow: 1})
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.FirstDayOfWeek != 1 {
		t.Fatalf("first-dow=%d, want 1", cfg.FirstDayOfWeek)
	}
}

func TestBuildConstraints(t *testing.T) {
	t.Parallel()

	app := &App{
		Min:              "2026-03-01",
		Max:              "2026-03-31",
		Disabled:         []string{"2026-03-17"},
		DisabledWeekdays: "sat,sun",
	}
	cs, err := buildConstraints(&cobra.Command{}, app)
	if err != nil {
		t.Fatalf("buildConstraints: %v", err)
	}

	if !cs.Min.Equal(day(2026, time.March, 1)) || !cs.Max.Equal(day(2026, time.March, 31)) {
		t.Fatalf("bounds=%v..%v", cs.Min, cs.Max)
	}
	if !cs.Disabled.Disabled(day(2026, time.March, 17)) {
		t.Fatal("explicit disabled date not applied")
	}
	if !cs.Disabled.Disabled(day(2026, time.March, 7)) { // Saturday
		t.Fatal("disabled weekday not applied")
	}
	if cs.Disabled.Disabled(day(2026, time.March, 16)) { // Monday
		t.Fatal("plain weekday disabled")
	}
}

func TestBuildConstraintsRejectsBadInput(t *testing.T) {
	t.Parallel()

	if _, err := buildConstraints(&cobra.Command{}, &App{Min: "03/01/2026"}); err == nil {
		t.Fatal("bad --min did not error")
	}
	if _, err := buildConstraints(&cobra.Command{}, &App{Disabled: []string{"soon"}}); err == nil {
		t.Fatal("bad --disabled did not error")
	}
	if _, err := buildConstraints(&cobra.Command{}, &App{DisabledWeekdays: "noday"}); err == nil {
		t.Fatal("bad weekday did not error")
	}
}

func TestParseWeekdays(t *testing.T) {
	t.Parallel()

	got, err := parseWeekdays("sat, Sunday,WED")
	if err != nil {
		t.Fatalf("parseWeekdays: %v", err)
	}
	want := []time.Weekday{time.Saturday, time.Sunday, time.Wednesday}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestResultFlattensSelections(t *testing.T) {
	t.Parallel()

	now := func() time.Time { return day(2026, time.March, 11) }

	p := picker.New(picker.Config{Mode: picker.ModeRange, Now: now})
	p.ClickDay(day(2026, time.March, 20))
	p.ClickDay(day(2026, time.March, 10))

	r := result(p, p.Value(), "range")
	if r.Mode != "range" {
		t.Fatalf("mode=%q", r.Mode)
	}
	if r.Display != "2026-03-10 - 2026-03-20" {
		t.Fatalf("display=%q", r.Display)
	}
	if len(r.Dates) != 2 {
		t.Fatalf("dates=%v, want both ends", r.Dates)
	}

	pm := picker.New(picker.Config{Mode: picker.ModeMultiple, Now: now})
	pm.ClickDay(day(2026, time.March, 5))
	rm := result(pm, pm.Value(), "multiple")
	if len(rm.Dates) != 1 {
		t.Fatalf("dates=%v, want one entry", rm.Dates)
	}
}
