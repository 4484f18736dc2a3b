package advent

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/aretw0/advent/internal/runtime"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/ports"
	"github.com/aretw0/advent/pkg/registry"
)

// Engine is the high-level entry point for the advent library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime  *runtime.Engine
	catalog  runtime.Catalog
	inputs   ports.InputStore
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	registry *registry.Registry
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithRegistry runs puzzles from reg instead of registry.Default.
func WithRegistry(reg *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine reading puzzle inputs from inputs.
// By default, it runs the puzzles registered in registry.Default.
func New(inputs ports.InputStore, opts ...Option) (*Engine, error) {
	if inputs == nil {
		return nil, fmt.Errorf("input store is required")
	}

	eng := &Engine{inputs: inputs}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.registry == nil {
		eng.registry = registry.Default
	}
	eng.catalog = eng.registry

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	eng.runtime = runtime.NewEngine(
		eng.catalog,
		eng.inputs,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)

	return eng, nil
}

// Registry returns the registry the engine reads its catalog from.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Inputs returns the input store.
func (e *Engine) Inputs() ports.InputStore {
	return e.inputs
}

// Catalog returns every registered puzzle in year/day order.
func (e *Engine) Catalog() []domain.Descriptor {
	return e.runtime.Catalog()
}

// Select filters the catalog without running anything.
func (e *Engine) Select(sel domain.Selection) ([]domain.Descriptor, error) {
	return e.runtime.Select(sel)
}

// Resolve returns the input text of a puzzle.
func (e *Engine) Resolve(ctx context.Context, d domain.Descriptor, v domain.Variant) (string, error) {
	return e.runtime.Resolve(ctx, d, v)
}

// Execute loads the selected puzzles and returns the lazily evaluated result stream.
// A *domain.LoadError means at least one selected puzzle could not be built and
// nothing ran.
func (e *Engine) Execute(ctx context.Context, sel domain.Selection) (iter.Seq[domain.ExecutionResult], error) {
	return e.runtime.Execute(ctx, sel)
}

// Run executes a selection and collects every result.
func (e *Engine) Run(ctx context.Context, sel domain.Selection) ([]domain.ExecutionResult, error) {
	return e.runtime.Run(ctx, sel)
}
