package runtime

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"time"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/ports"
)

// Catalog is the read side of the puzzle registry.
type Catalog interface {
	Catalog() []domain.Descriptor
}

// Engine selects, loads and runs puzzle modules.
type Engine struct {
	catalog Catalog
	inputs  ports.InputStore
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the logger. A nil logger keeps the default (discard).
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a new engine with dependencies.
func NewEngine(catalog Catalog, inputs ports.InputStore, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: catalog,
		inputs:  inputs,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the full, ordered catalog.
func (e *Engine) Catalog() []domain.Descriptor {
	return e.catalog.Catalog()
}

// Select filters the catalog, preserving its order.
// A selection naming a puzzle that does not exist yields an empty slice.
func (e *Engine) Select(sel domain.Selection) ([]domain.Descriptor, error) {
	if sel.Day != nil && sel.Year == nil {
		return nil, domain.ErrDayWithoutYear
	}

	selected := []domain.Descriptor{}
	for _, d := range e.catalog.Catalog() {
		if sel.Matches(d) {
			selected = append(selected, d)
		}
	}
	return selected, nil
}

// Load instantiates the given descriptors. See Load.
func (e *Engine) Load(descriptors []domain.Descriptor) ([]Instance, error) {
	instances, err := Load(descriptors)
	if err != nil {
		e.logger.Error("failed to instantiate puzzles", "err", err)
		return nil, err
	}
	e.logger.Debug("puzzles instantiated", "count", len(instances))
	return instances, nil
}

// Resolve reads the input of d. See Resolve.
func (e *Engine) Resolve(ctx context.Context, d domain.Descriptor, v domain.Variant) (string, error) {
	return Resolve(ctx, e.inputs, d, v)
}

// Execute prepares a run and returns its result stream.
//
// Selection and instantiation happen before Execute returns: an unknown
// variant, a selection error or a *domain.LoadError aborts the run and no part is executed.
// The returned sequence then runs each selected puzzle in catalog order,
// yielding part one before part two. Part two always runs, whatever part one
// did. Parts have no timeout; a part that never returns blocks the stream.
// ctx is consulted between puzzles and passed to the input store.
func (e *Engine) Execute(ctx context.Context, sel domain.Selection) (iter.Seq[domain.ExecutionResult], error) {
	variant, err := domain.ParseVariant(string(sel.Variant))
	if err != nil {
		return nil, err
	}

	descriptors, err := e.Select(sel)
	if err != nil {
		return nil, err
	}

	instances, err := e.Load(descriptors)
	if err != nil {
		return nil, err
	}

	return func(yield func(domain.ExecutionResult) bool) {
		for _, inst := range instances {
			if ctx.Err() != nil {
				e.logger.Warn("run cancelled", "err", ctx.Err())
				return
			}
			if !e.runModule(ctx, inst, variant, yield) {
				return
			}
		}
	}, nil
}

// Run executes a selection and collects every result.
// The error is non-nil for pre-flight failures or when ctx was cancelled
// mid-run, in which case the results gathered so far are returned too.
func (e *Engine) Run(ctx context.Context, sel domain.Selection) ([]domain.ExecutionResult, error) {
	seq, err := e.Execute(ctx, sel)
	if err != nil {
		return nil, err
	}

	results := []domain.ExecutionResult{}
	for r := range seq {
		results = append(results, r)
	}
	return results, ctx.Err()
}

func (e *Engine) runModule(ctx context.Context, inst Instance, variant domain.Variant, yield func(domain.ExecutionResult) bool) bool {
	d := inst.Descriptor
	logger := e.logger.With("year", d.Year, "day", d.Day, "variant", string(variant))

	if e.hooks.OnModuleStart != nil {
		e.hooks.OnModuleStart(ctx, &domain.ModuleEvent{
			EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventModuleStart},
			Descriptor: d,
			Variant:    variant,
		})
	}

	input, err := e.Resolve(ctx, d, variant)
	if err != nil {
		kind := inputKind(err)
		logger.Warn("input unavailable", "kind", string(kind), "err", err)
		for _, part := range []int{domain.PartOne, domain.PartTwo} {
			if !e.emit(ctx, d, domain.Failure(d, part, kind, err, 0), yield) {
				return false
			}
		}
		return true
	}

	parts := []struct {
		n  int
		fn func(string) (string, error)
	}{
		{domain.PartOne, inst.Solution.PartOne},
		{domain.PartTwo, inst.Solution.PartTwo},
	}
	for _, p := range parts {
		res := runPart(d, p.n, p.fn, input)
		if res.OK() {
			logger.Debug("part solved", "part", p.n, "duration", res.Duration)
		} else {
			logger.Warn("part failed", "part", p.n, "err", res.Err)
		}
		if !e.emit(ctx, d, res, yield) {
			return false
		}
	}
	return true
}

func (e *Engine) emit(ctx context.Context, d domain.Descriptor, res domain.ExecutionResult, yield func(domain.ExecutionResult) bool) bool {
	if e.hooks.OnPartComplete != nil {
		e.hooks.OnPartComplete(ctx, &domain.PartEvent{
			EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventPartComplete},
			Descriptor: d,
			Result:     res,
		})
	}
	return yield(res)
}
