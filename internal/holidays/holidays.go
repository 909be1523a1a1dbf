// Package holidays keeps named calendars of disabled dates in a local
// SQLite database. A calendar is constraint configuration for the picker
// (applied with --calendar), not selection state; nothing the user picks is
// ever written here.
package holidays

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"datepick-cli/internal/constraint"
	"datepick-cli/internal/datemath"

	_ "modernc.org/sqlite"
)

const dayLayout = "2006-01-02"

// Store manages the holidays database at Path.
type Store struct {
	Path string
}

// DefaultPath returns the per-user database location, honoring
// DATEPICK_HOME.
func DefaultPath() (string, error) {
	if v := os.Getenv("DATEPICK_HOME"); v != "" {
		return filepath.Join(v, "holidays.sqlite"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".datepick", "holidays.sqlite"), nil
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when several invocations race.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS holidays (
		calendar TEXT NOT NULL,
		day TEXT NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (calendar, day)
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Add inserts dates into a calendar. Existing entries are overwritten, so
// re-importing a calendar is idempotent.
func (s Store) Add(ctx context.Context, calendar string, dates []time.Time, label string) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for _, d := range dates {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO holidays (calendar, day, label) VALUES (?, ?, ?)`,
			calendar, datemath.DayOf(d).Format(dayLayout), label); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Remove deletes dates from a calendar.
func (s Store) Remove(ctx context.Context, calendar string, dates []time.Time) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, d := range dates {
		if _, err := db.ExecContext(ctx,
			`DELETE FROM holidays WHERE calendar = ? AND day = ?`,
			calendar, datemath.DayOf(d).Format(dayLayout)); err != nil {
			return err
		}
	}
	return nil
}

// List returns a calendar's dates in chronological order.
func (s Store) List(ctx context.Context, calendar string) ([]time.Time, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT day FROM holidays WHERE calendar = ? ORDER BY day`, calendar)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		d, err := time.ParseInLocation(dayLayout, raw, time.Local)
		if err != nil {
			// Skip rows that predate the current format.
			continue
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Calendars returns the names of every stored calendar.
func (s Store) Calendars(ctx context.Context) ([]string, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT DISTINCT calendar FROM holidays`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, rows.Err()
}

// Disabler loads a calendar as a constraint.Disabler. An unknown calendar
// is an error rather than an empty set, so typos don't silently enable
// every day.
func (s Store) Disabler(ctx context.Context, calendar string) (constraint.Disabler, error) {
	names, err := s.Calendars(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for _, n := range names {
		if n == calendar {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("unknown holiday calendar: %q", calendar)
	}
	dates, err := s.List(ctx, calendar)
	if err != nil {
		return nil, err
	}
	return constraint.DisabledList(dates), nil
}
