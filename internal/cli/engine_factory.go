package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/advent"
	"github.com/aretw0/advent/internal/config"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/observability"
	"github.com/aretw0/advent/pkg/registry"
)

// EngineOptions carries what every command needs to build an engine.
type EngineOptions struct {
	Config   config.Config
	Debug    bool
	Registry *registry.Registry
	Hooks    domain.LifecycleHooks
}

// createEngine initializes an advent engine with standard CLI conventions.
// The returned cleanup func releases the input store and is never nil.
func createEngine(ctx context.Context, opts EngineOptions, logger *slog.Logger) (*advent.Engine, func(), error) {
	inputs, cleanup, err := openInputs(ctx, opts.Config.Inputs, logger)
	if err != nil {
		return nil, cleanup, err
	}

	hooks := opts.Hooks
	if opts.Debug {
		hooks = observability.Combine(observability.LoggingHooks(logger), hooks)
	}

	engineOpts := []advent.Option{
		advent.WithLogger(logger),
		advent.WithLifecycleHooks(hooks),
	}
	if opts.Registry != nil {
		engineOpts = append(engineOpts, advent.WithRegistry(opts.Registry))
	}

	engine, err := advent.New(inputs, engineOpts...)
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, cleanup, nil
}

// NewEngine is createEngine for long-running surfaces (HTTP, MCP).
func NewEngine(ctx context.Context, opts EngineOptions) (*advent.Engine, func(), error) {
	return createEngine(ctx, opts, createLogger(opts.Config.LogLevel, opts.Debug))
}
