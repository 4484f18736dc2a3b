package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/advent/pkg/domain"
)

// LoggingHooks logs every lifecycle event at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnModuleStart: func(ctx context.Context, e *domain.ModuleEvent) {
			logger.DebugContext(ctx, "module_start",
				"year", e.Descriptor.Year,
				"day", e.Descriptor.Day,
				"ref", e.Descriptor.Ref,
				"variant", string(e.Variant),
			)
		},
		OnPartComplete: func(ctx context.Context, e *domain.PartEvent) {
			r := e.Result
			attrs := []any{
				"year", r.Year,
				"day", r.Day,
				"part", r.Part,
				"duration", r.Duration,
				"ok", r.OK(),
			}
			if !r.OK() {
				attrs = append(attrs, "kind", string(r.Kind), "err", r.Message)
			}
			logger.DebugContext(ctx, "part_complete", attrs...)
		},
	}
}
