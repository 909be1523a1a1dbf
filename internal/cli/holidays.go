package cli

import (
	"fmt"
	"time"

	"datepick-cli/internal/dateformat"
	"datepick-cli/internal/format"

	"github.com/spf13/cobra"
)

func newHolidaysCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Manage named calendars of disabled dates",
		Long: "Holiday calendars are stored locally (SQLite) and applied with --calendar.\n" +
			"They only constrain what can be picked; nothing you pick is stored.",
	}
	cmd.AddCommand(newHolidaysAddCmd(app))
	cmd.AddCommand(newHolidaysRemoveCmd(app))
	cmd.AddCommand(newHolidaysListCmd(app))
	return cmd
}

func newHolidaysAddCmd(app *App) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "add <calendar> <date>...",
		Short: "Add dates (YYYY-MM-DD) to a calendar",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := parseDayArgs(args[1:])
			if err != nil {
				return err
			}
			store, err := holidaysStore(app)
			if err != nil {
				return err
			}
			if err := store.Add(cmd.Context(), args[0], dates, label); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d date(s) to %q\n", len(dates), args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "Label stored with these dates")
	return cmd
}

func newHolidaysRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <calendar> <date>...",
		Short: "Remove dates from a calendar",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := parseDayArgs(args[1:])
			if err != nil {
				return err
			}
			store, err := holidaysStore(app)
			if err != nil {
				return err
			}
			if err := store.Remove(cmd.Context(), args[0], dates); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d date(s) from %q\n", len(dates), args[0])
			return nil
		},
	}
}

func newHolidaysListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [calendar]",
		Short: "List calendars, or the dates of one calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := holidaysStore(app)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				names, err := store.Calendars(cmd.Context())
				if err != nil {
					return err
				}
				return format.WriteJSON(cmd.OutOrStdout(), map[string]any{"calendars": names})
			}
			dates, err := store.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := make([]string, 0, len(dates))
			for _, d := range dates {
				out = append(out, d.Format("2006-01-02"))
			}
			return format.WriteJSON(cmd.OutOrStdout(), map[string]any{"calendar": args[0], "dates": out})
		},
	}
}

func parseDayArgs(args []string) ([]time.Time, error) {
	out := make([]time.Time, 0, len(args))
	for _, raw := range args {
		d, err := dateformat.ParseDay(raw, dateformat.DefaultPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %q (want YYYY-MM-DD)", raw)
		}
		out = append(out, d)
	}
	return out, nil
}
