package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows in aligned columns. The header is only written once
// the table has at least one row, unless no empty message was set.
type Table struct {
	out     io.Writer
	w       *tabwriter.Writer
	headers []string
	rows    int
	empty   string
}

// NewTable creates a table with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	return &Table{
		out:     out,
		w:       tabwriter.NewWriter(out, 0, 4, 2, ' ', 0),
		headers: headers,
	}
}

// Empty sets the line printed by Flush instead of the header when no rows
// were added.
func (t *Table) Empty(msg string) *Table {
	t.empty = msg
	return t
}

// Row appends a row. Values are formatted with %v.
func (t *Table) Row(values ...any) {
	if t.rows == 0 {
		t.writeHeader()
	}
	t.rows++
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Len returns the number of rows added.
func (t *Table) Len() int { return t.rows }

// Flush writes the buffered output.
func (t *Table) Flush() error {
	if t.rows == 0 {
		if t.empty != "" {
			_, err := fmt.Fprintln(t.out, t.empty)
			return err
		}
		t.writeHeader()
	}
	return t.w.Flush()
}

func (t *Table) writeHeader() {
	_, _ = fmt.Fprintln(t.w, strings.Join(t.headers, "\t"))
}
