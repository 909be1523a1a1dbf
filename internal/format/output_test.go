package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWritePlain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := Result{Mode: "single", Display: "2026-03-11", Dates: []string{"2026-03-11T00:00:00Z"}}
	if err := Write(&buf, r, "plain"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "2026-03-11\n" {
		t.Fatalf("plain output=%q", buf.String())
	}

	buf.Reset()
	if err := Write(&buf, r, ""); err != nil {
		t.Fatalf("write default: %v", err)
	}
	if buf.String() != "2026-03-11\n" {
		t.Fatalf("default output=%q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := Result{Mode: "range", Display: "a - b", Dates: []string{"a", "b"}}
	if err := Write(&buf, r, "json"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatal("json output not newline-terminated")
	}

	var got Result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Mode != "range" || got.Display != "a - b" || len(got.Dates) != 2 {
		t.Fatalf("round-trip=%+v", got)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, Result{}, "yaml"); err == nil {
		t.Fatal("unknown format did not error")
	}
}
