package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Reporter delivers a user-facing message with optional remedial actions.
type Reporter interface {
	Report(message string, actions []string)
}

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

// Console writes reports to a terminal or log stream.
type Console struct {
	out   io.Writer
	color bool
}

// NewConsole creates a console reporter. Messages are colored only when out
// is a terminal and noColor is false.
func NewConsole(out io.Writer, noColor bool) *Console {
	return &Console{out: out, color: !noColor && IsTerminal(out)}
}

// Report prints the message followed by one indented line per action. Each
// report is a single write.
func (c *Console) Report(message string, actions []string) {
	var b strings.Builder
	b.WriteString("\n")
	if c.color {
		b.WriteString(warnStyle.Render(message))
	} else {
		b.WriteString(message)
	}
	b.WriteString("\n")
	for _, a := range actions {
		b.WriteString("    - " + a + "\n")
	}
	_, _ = fmt.Fprint(c.out, b.String())
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Message is one recorded report.
type Message struct {
	Text    string
	Actions []string
}

// Recorder keeps reports in memory.
type Recorder struct {
	Messages []Message
}

// Report records the message.
func (r *Recorder) Report(message string, actions []string) {
	r.Messages = append(r.Messages, Message{Text: message, Actions: append([]string(nil), actions...)})
}
