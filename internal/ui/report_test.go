package ui

import (
	"bytes"
	"testing"
)

func TestConsole_Report(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Report("something is off", []string{"fix it, or", "ignore it."})

	want := "\nsomething is off\n    - fix it, or\n    - ignore it.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestConsole_noActions(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Report("notice", nil)

	if buf.String() != "\nnotice\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestConsole_bufferIsNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Error("bytes.Buffer should not be a terminal")
	}
	if NewConsole(&buf, false).color {
		t.Error("color should be off for non-terminal output")
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	actions := []string{"a"}
	r.Report("one", actions)
	r.Report("two", nil)
	actions[0] = "changed"

	if len(r.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(r.Messages))
	}
	if r.Messages[0].Text != "one" || r.Messages[0].Actions[0] != "a" {
		t.Errorf("first message = %+v", r.Messages[0])
	}
}
