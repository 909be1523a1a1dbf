package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"datepick-cli/internal/constraint"
	"datepick-cli/internal/dateformat"
	"datepick-cli/internal/format"
	"datepick-cli/internal/holidays"
	"datepick-cli/internal/picker"
	"datepick-cli/internal/tui"

	"github.com/spf13/cobra"
)

// App carries the persistent flag state shared by the command tree.
type App struct {
	Mode             string
	Min              string
	Max              string
	DateFormat       string
	EnableTime       bool
	FirstDow         int
	Disabled         []string
	DisabledWeekdays string
	Calendar         string
	HolidaysDB       string
	Output           string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "datepick",
		Short:        "Pick a date (or several, or a range) in your terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a single date, print it as YYYY-MM-DD
  datepick

  # Pick a date range within March 2026, weekends off-limits
  datepick --mode range --min 2026-03-01 --max 2026-03-31 --disabled-weekdays sat,sun

  # Pick a date and time, emit JSON
  datepick --time --output json

  # Use a stored holiday calendar as the disabled set
  datepick --calendar no-deploy-days
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app)
		},
	}

	cmd.Flags().StringVar(&app.Mode, "mode", envOr("DATEPICK_MODE", "single"), "Selection mode (single|multiple|range)")
	cmd.Flags().StringVar(&app.Min, "min", "", "Earliest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&app.Max, "max", "", "Latest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&app.DateFormat, "date-format", envOr("DATEPICK_FORMAT", dateformat.DefaultPattern), "Display pattern (see `datepick docs formats`)")
	cmd.Flags().BoolVar(&app.EnableTime, "time", false, "Also pick a time of day")
	cmd.Flags().IntVar(&app.FirstDow, "first-dow", 0, "First day of week (0=Sunday, 1=Monday, ...)")
	cmd.Flags().StringArrayVar(&app.Disabled, "disabled", nil, "Disable a date (YYYY-MM-DD, repeatable)")
	cmd.Flags().StringVar(&app.DisabledWeekdays, "disabled-weekdays", "", "Disable weekdays (comma-separated: sun,mon,...)")
	cmd.Flags().StringVar(&app.Calendar, "calendar", "", "Apply a stored holiday calendar as disabled dates")
	cmd.Flags().StringVar(&app.HolidaysDB, "holidays-db", envOr("DATEPICK_HOLIDAYS_DB", ""), "Path to the holidays database (advanced)")
	cmd.Flags().StringVar(&app.Output, "output", envOr("DATEPICK_OUTPUT", "plain"), "Output format (plain|json)")

	cmd.AddCommand(newHolidaysCmd(app))
	cmd.AddCommand(newDocsCmd())

	return cmd
}

func runPick(cmd *cobra.Command, app *App) error {
	cfg, err := buildConfig(cmd, app)
	if err != nil {
		return err
	}

	p := picker.New(cfg)
	sel, err := tui.Run(p)
	if err != nil {
		// Includes ErrCanceled: no output, scripts see the exit status.
		return err
	}

	return format.Write(cmd.OutOrStdout(), result(p, sel, app.Mode), app.Output)
}

func buildConfig(cmd *cobra.Command, app *App) (picker.Config, error) {
	var cfg picker.Config

	switch strings.ToLower(strings.TrimSpace(app.Mode)) {
	case "", "single":
		cfg.Mode = picker.ModeSingle
		app.Mode = "single"
	case "multiple":
		cfg.Mode = picker.ModeMultiple
		app.Mode = "multiple"
	case "range":
		cfg.Mode = picker.ModeRange
		app.Mode = "range"
	default:
		return cfg, fmt.Errorf("unknown mode: %q (want single|multiple|range)", app.Mode)
	}

	cs, err := buildConstraints(cmd, app)
	if err != nil {
		return cfg, err
	}
	cfg.Constraints = cs

	cfg.DateFormat = app.DateFormat
	cfg.EnableTime = app.EnableTime
	if app.FirstDow < 0 || app.FirstDow > 6 {
		return cfg, fmt.Errorf("--first-dow must be 0..6, got %d", app.FirstDow)
	}
	cfg.FirstDayOfWeek = app.FirstDow
	return cfg, nil
}

func buildConstraints(cmd *cobra.Command, app *App) (constraint.Set, error) {
	var cs constraint.Set

	if app.Min != "" {
		d, err := dateformat.ParseDay(app.Min, dateformat.DefaultPattern)
		if err != nil {
			return cs, fmt.Errorf("invalid --min: %q", app.Min)
		}
		cs.Min = d
	}
	if app.Max != "" {
		d, err := dateformat.ParseDay(app.Max, dateformat.DefaultPattern)
		if err != nil {
			return cs, fmt.Errorf("invalid --max: %q", app.Max)
		}
		cs.Max = d
	}

	var disablers []constraint.Disabler

	if len(app.Disabled) > 0 {
		var list constraint.DisabledList
		for _, raw := range app.Disabled {
			d, err := dateformat.ParseDay(raw, dateformat.DefaultPattern)
			if err != nil {
				return cs, fmt.Errorf("invalid --disabled date: %q", raw)
			}
			list = append(list, d)
		}
		disablers = append(disablers, list)
	}

	if app.DisabledWeekdays != "" {
		wd, err := parseWeekdays(app.DisabledWeekdays)
		if err != nil {
			return cs, err
		}
		disablers = append(disablers, wd)
	}

	if app.Calendar != "" {
		store, err := holidaysStore(app)
		if err != nil {
			return cs, err
		}
		d, err := store.Disabler(cmd.Context(), app.Calendar)
		if err != nil {
			return cs, err
		}
		disablers = append(disablers, d)
	}

	switch len(disablers) {
	case 0:
	case 1:
		cs.Disabled = disablers[0]
	default:
		all := disablers
		cs.Disabled = constraint.DisabledFunc(func(t time.Time) bool {
			for _, d := range all {
				if d.Disabled(t) {
					return true
				}
			}
			return false
		})
	}
	return cs, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
}

func parseWeekdays(raw string) (constraint.DisabledWeekdays, error) {
	var out constraint.DisabledWeekdays
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		wd, ok := weekdayNames[name[:minInt(3, len(name))]]
		if !ok || len(name) < 3 {
			return nil, fmt.Errorf("unknown weekday: %q", part)
		}
		out = append(out, wd)
	}
	return out, nil
}

func holidaysStore(app *App) (holidays.Store, error) {
	path := app.HolidaysDB
	if path == "" {
		p, err := holidays.DefaultPath()
		if err != nil {
			return holidays.Store{}, err
		}
		path = p
	}
	return holidays.Store{Path: path}, nil
}

// result flattens the final selection for the output writer.
func result(p *picker.Picker, sel picker.Selection, mode string) format.Result {
	r := format.Result{Mode: mode, Display: p.DisplayValue()}
	switch v := sel.(type) {
	case picker.Single:
		if !v.Date.IsZero() {
			r.Dates = []string{v.Date.Format(time.RFC3339)}
		}
	case picker.Multiple:
		for _, d := range v.Dates {
			r.Dates = append(r.Dates, d.Format(time.RFC3339))
		}
	case picker.Range:
		if v.HasFrom() {
			r.Dates = append(r.Dates, v.From.Format(time.RFC3339))
		}
		if v.HasTo() {
			r.Dates = append(r.Dates, v.To.Format(time.RFC3339))
		}
	}
	return r
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
