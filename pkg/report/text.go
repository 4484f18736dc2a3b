package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/muesli/termenv"
)

// Text writes results in a two-line human readable format:
//
//	[OK]   Year 2024 Day 01 Part 1:
//	      11
type Text struct {
	out     *termenv.Output
	tally   Tally
	timings bool
}

// TextOption configures a Text reporter.
type TextOption func(*Text)

// WithColor forces colored output on or off. By default the color profile is
// detected from the writer.
func WithColor(enabled bool) TextOption {
	return func(t *Text) {
		profile := termenv.Ascii
		if enabled {
			profile = termenv.ANSI256
		}
		t.out = termenv.NewOutput(t.out.Writer(), termenv.WithProfile(profile))
	}
}

// WithTimings appends the part duration to each header line.
func WithTimings(enabled bool) TextOption {
	return func(t *Text) {
		t.timings = enabled
	}
}

// NewText creates a text reporter writing to w.
func NewText(w io.Writer, opts ...TextOption) *Text {
	t := &Text{out: termenv.NewOutput(w)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Text) Report(r domain.ExecutionResult) error {
	t.tally.Add(r)

	var header, detail termenv.Style
	if r.OK() {
		header = t.out.String(fmt.Sprintf("[OK]   Year %d Day %02d Part %d:", r.Year, r.Day, r.Part)).Foreground(termenv.ANSIGreen)
		detail = t.out.String("      " + indent(r.Output)).Foreground(termenv.ANSICyan)
	} else {
		header = t.out.String(fmt.Sprintf("[FAIL] Year %d Day %02d Part %d:", r.Year, r.Day, r.Part)).Foreground(termenv.ANSIRed)
		detail = t.out.String(fmt.Sprintf("      %s: %s", r.Kind, indent(r.Message))).Foreground(termenv.ANSIMagenta)
	}

	line := header.String()
	if t.timings {
		line += " " + t.out.String("("+r.Duration.String()+")").Faint().String()
	}
	_, err := fmt.Fprintf(t.out, "%s\n%s\n", line, detail)
	return err
}

func (t *Text) Tally() Tally {
	return t.tally
}

// Summary writes a one-line total, e.g. "7 passed, 1 failed".
func (t *Text) Summary() error {
	style := t.out.String(fmt.Sprintf("%d passed, %d failed", t.tally.Passed, t.tally.Failed))
	if t.tally.OK() {
		style = style.Foreground(termenv.ANSIGreen)
	} else {
		style = style.Foreground(termenv.ANSIRed)
	}
	_, err := fmt.Fprintln(t.out, style)
	return err
}

// indent keeps multi-line answers aligned under the header.
func indent(s string) string {
	return strings.ReplaceAll(strings.TrimRight(s, "\n"), "\n", "\n      ")
}
