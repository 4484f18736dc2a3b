package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/advent"
	"github.com/aretw0/advent/internal/presentation/tui"
	"github.com/aretw0/advent/pkg/report"
)

// ErrPartsFailed is returned by Execute when at least one part did not succeed.
var ErrPartsFailed = errors.New("one or more parts failed")

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	EngineOptions
	Request Request
	JSON    bool
	Timings bool
	Summary bool
	Color   *bool // nil detects from Stdout
	Stdout  io.Writer
	Stderr  io.Writer
}

// Execute handles the 'run' command logic: validate, run, report.
// It returns nil only when every reported part succeeded.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	logger := createLogger(opts.Config.LogLevel, opts.Debug)

	engine, cleanup, err := createEngine(ctx, opts.EngineOptions, logger)
	defer cleanup()
	if err != nil {
		return err
	}

	if err := opts.Request.Validate(engine.Catalog()); err != nil {
		return err
	}

	reporter := newReporter(opts)
	tally, err := advent.NewRunner(reporter).Run(ctx, engine, opts.Request.Selection())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			printSystemMessage(opts.Stderr, "Interrupted after %d parts.", tally.Total())
		}
		return err
	}
	logger.Debug("Run finished", "passed", tally.Passed, "failed", tally.Failed)

	if text, ok := reporter.(*report.Text); ok && opts.Summary {
		if err := text.Summary(); err != nil {
			return fmt.Errorf("report error: %w", err)
		}
	}

	if !tally.OK() {
		return ErrPartsFailed
	}
	return nil
}

func newReporter(opts RunOptions) report.Reporter {
	if opts.JSON {
		return report.NewJSON(opts.Stdout)
	}

	color := tui.IsTerminal(opts.Stdout)
	if opts.Color != nil {
		color = *opts.Color
	}
	return report.NewText(opts.Stdout, report.WithColor(color), report.WithTimings(opts.Timings))
}
