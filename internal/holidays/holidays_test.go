package holidays

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"datepick-cli/internal/datemath"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func testStore(t *testing.T) Store {
	t.Helper()
	return Store{Path: filepath.Join(t.TempDir(), "holidays.sqlite")}
}

func TestAddListRemove(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	dates := []time.Time{
		day(2026, time.December, 25),
		day(2026, time.January, 1),
	}
	if err := s.Add(ctx, "us", dates, "public holiday"); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := s.List(ctx, "us")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("list len=%d, want 2", len(got))
	}
	// Chronological regardless of insertion order.
	if !datemath.SameDay(got[0], day(2026, time.January, 1)) || !datemath.SameDay(got[1], day(2026, time.December, 25)) {
		t.Fatalf("list order wrong: %v", got)
	}

	if err := s.Remove(ctx, "us", []time.Time{day(2026, time.January, 1)}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got, err = s.List(ctx, "us")
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if len(got) != 1 || !datemath.SameDay(got[0], day(2026, time.December, 25)) {
		t.Fatalf("list after remove=%v", got)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	dates := []time.Time{day(2026, time.July, 4)}
	if err := s.Add(ctx, "us", dates, ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(ctx, "us", dates, "independence day"); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	got, err := s.List(ctx, "us")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("list len=%d, want 1 after re-add", len(got))
	}
}

func TestCalendars(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	if err := s.Add(ctx, "us", []time.Time{day(2026, time.July, 4)}, ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(ctx, "no-deploy", []time.Time{day(2026, time.December, 24)}, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	names, err := s.Calendars(ctx)
	if err != nil {
		t.Fatalf("calendars: %v", err)
	}
	if len(names) != 2 || names[0] != "no-deploy" || names[1] != "us" {
		t.Fatalf("calendars=%v, want sorted [no-deploy us]", names)
	}
}

func TestDisabler(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	if err := s.Add(ctx, "us", []time.Time{day(2026, time.December, 25)}, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	d, err := s.Disabler(ctx, "us")
	if err != nil {
		t.Fatalf("disabler: %v", err)
	}
	if !d.Disabled(day(2026, time.December, 25)) {
		t.Fatal("stored holiday not disabled")
	}
	if d.Disabled(day(2026, time.December, 26)) {
		t.Fatal("unrelated day disabled")
	}
}

func TestDisablerUnknownCalendar(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	if _, err := s.Disabler(ctx, "nope"); err == nil {
		t.Fatal("unknown calendar did not error")
	}
}
