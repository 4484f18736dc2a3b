package advent

import (
	"context"
	"fmt"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/report"
)

// Runner streams the results of a run into a Reporter.
// This allows for easy testing and integration with different frontends (CLI, HTTP, etc).
type Runner struct {
	Reporter report.Reporter
}

// NewRunner creates a Runner writing to reporter.
func NewRunner(reporter report.Reporter) *Runner {
	return &Runner{Reporter: reporter}
}

// Run executes the selection and reports each result as soon as it is produced.
// The returned tally covers every reported result; the error is non-nil for
// pre-flight failures (see Engine.Execute), reporter failures and cancellation.
func (r *Runner) Run(ctx context.Context, eng *Engine, sel domain.Selection) (report.Tally, error) {
	if r.Reporter == nil {
		return report.Tally{}, fmt.Errorf("reporter must be set")
	}

	seq, err := eng.Execute(ctx, sel)
	if err != nil {
		return report.Tally{}, err
	}

	for res := range seq {
		if err := r.Reporter.Report(res); err != nil {
			return r.Reporter.Tally(), fmt.Errorf("report error: %w", err)
		}
	}
	return r.Reporter.Tally(), ctx.Err()
}
