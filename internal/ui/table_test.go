package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_render(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "REFERENCE", "REQUIRED", "STATE")
	tbl.Row("group:App.xcodeproj", true, "ok")
	tbl.Row("group:Pods/Pods.xcodeproj", true, "missing")
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (header + 2 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "REFERENCE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "missing") {
		t.Errorf("row 2 = %q", lines[2])
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
}

func TestTable_headerOnly(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "A", "B")
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("expected 1 line (header only), got %d", len(lines))
	}
}

func TestTable_emptyMessage(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "TARGET", "KEY").Empty("Nothing to show.")
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Nothing to show.\n" {
		t.Errorf("output = %q", buf.String())
	}
}
