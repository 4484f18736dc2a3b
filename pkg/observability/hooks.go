package observability

import "github.com/aretw0/advent/pkg/domain"

// Combine merges several hook sets into one. Hooks fire in argument order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var combined domain.LifecycleHooks
	for _, h := range hooks {
		combined = combined.Merge(h)
	}
	return combined
}
