package ui

import (
	"fmt"
	"io"
)

// Progress prints one numbered line per integrated target. It is not safe
// for concurrent use; targets are integrated one after another.
type Progress struct {
	out   io.Writer
	total int
	n     int
}

// NewProgress returns a Progress for total steps. A zero total omits the
// counter and only Log is expected to be used.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done records a successful step.
func (p *Progress) Done(label string) {
	p.step(label)
}

// Fail records a failed step. It still advances the counter.
func (p *Progress) Fail(label string, err error) {
	p.step(fmt.Sprintf("%s failed: %v", label, err))
}

// Log prints an informational line without advancing the counter.
func (p *Progress) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Progress) step(label string) {
	p.n++
	if p.total == 0 {
		_, _ = fmt.Fprintln(p.out, label)
		return
	}
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.n, p.total, label)
}
