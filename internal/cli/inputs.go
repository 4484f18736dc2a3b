package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/advent/internal/config"
	"github.com/aretw0/advent/pkg/adapters/chain"
	"github.com/aretw0/advent/pkg/adapters/fs"
	"github.com/aretw0/advent/pkg/adapters/redis"
	"github.com/aretw0/advent/pkg/ports"
	"github.com/aretw0/advent/puzzles"
)

// openInputs builds the input store described by cfg.
// The returned cleanup func is never nil.
func openInputs(ctx context.Context, cfg config.InputsConfig, logger *slog.Logger) (ports.InputStore, func(), error) {
	noop := func() {}

	var primary ports.InputStore
	cleanup := noop

	switch cfg.Source {
	case config.SourceEmbedded:
		logger.Debug("Using embedded inputs")
		return puzzles.Examples(), noop, nil

	case config.SourceDir, "":
		logger.Debug("Using input directory", "dir", cfg.Dir)
		primary = fs.NewDir(cfg.Dir)

	case config.SourceRedis:
		var opts []redis.Option
		if cfg.RedisPrefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.RedisPrefix))
		}
		store, err := redis.New(cfg.RedisURL, opts...)
		if err != nil {
			return nil, noop, fmt.Errorf("error initializing redis input store: %w", err)
		}
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, noop, fmt.Errorf("error connecting to redis: %w", err)
		}
		logger.Debug("Using redis inputs", "prefix", cfg.RedisPrefix)
		primary = store
		cleanup = func() {
			if err := store.Close(); err != nil {
				logger.Warn("Failed to close redis client", "err", err)
			}
		}

	default:
		return nil, noop, fmt.Errorf("unknown input source %q", cfg.Source)
	}

	if cfg.FallbackEmbedded {
		return chain.New(primary, puzzles.Examples()), cleanup, nil
	}
	return primary, cleanup, nil
}
