// Package format writes the final pick result for scripting.
package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result is the scriptable shape of a completed pick. Display is always the
// formatted string the TUI showed; Dates carries the underlying values in
// RFC 3339 so downstream tools don't have to re-parse the display pattern.
type Result struct {
	Mode    string   `json:"mode"`
	Display string   `json:"display"`
	Dates   []string `json:"dates"`
}

// Write writes output in the requested format.
//
// Supported formats:
// - plain (default): the display string, one line
// - json
func Write(w io.Writer, r Result, format string) error {
	switch format {
	case "", "plain":
		_, err := fmt.Fprintln(w, r.Display)
		return err
	case "json":
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI consumption.
func WriteJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
