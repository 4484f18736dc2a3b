package registry

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"sync"

	"github.com/aretw0/advent/pkg/domain"
)

// refPattern extracts the puzzle identity from a module's logical path.
// Only the trailing Year<yyyy>.Day<dd> segment pair counts; "." and "/" both
// separate segments so Go import paths and dotted names are accepted alike.
var refPattern = regexp.MustCompile(`(?:^|[./])Year(\d{4})[./]Day(\d{2})$`)

// ParseRef returns the year and day encoded in ref.
// ok is false when ref does not follow the Year<yyyy>.Day<dd> convention.
func ParseRef(ref string) (year, day int, ok bool) {
	m := refPattern.FindStringSubmatch(ref)
	if m == nil {
		return 0, 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	day, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return year, day, true
}

type entry struct {
	ref     string
	factory domain.Factory
}

// Registry manages the available puzzle modules and the catalog derived from them.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	catalog []domain.Descriptor
	built   bool
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a new empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Register adds a module under its logical path.
// Refs that do not follow the Year<yyyy>.Day<dd> convention are accepted but
// never appear in the catalog. Two refs resolving to the same year and day
// are rejected with domain.ErrDuplicate.
func (r *Registry) Register(ref string, factory domain.Factory) error {
	if factory == nil {
		return fmt.Errorf("register %s: nil factory", ref)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if year, day, ok := ParseRef(ref); ok {
		for _, e := range r.entries {
			y, d, match := ParseRef(e.ref)
			if match && y == year && d == day {
				return fmt.Errorf("%w: %s and %s both resolve to year %d day %d", domain.ErrDuplicate, e.ref, ref, year, day)
			}
		}
	}

	r.entries = append(r.entries, entry{ref: ref, factory: factory})
	r.built = false
	r.catalog = nil
	r.logger.Debug("registered puzzle module", "ref", ref)
	return nil
}

// Catalog returns every conventionally named module sorted by year and day.
// The result is computed on first use and cached until the next Register.
// Callers receive their own copy.
func (r *Registry) Catalog() []domain.Descriptor {
	r.mu.RLock()
	if r.built {
		out := slices.Clone(r.catalog)
		r.mu.RUnlock()
		return out
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.built {
		r.catalog = r.build()
		r.built = true
	}
	return slices.Clone(r.catalog)
}

// build must be called with the write lock held.
func (r *Registry) build() []domain.Descriptor {
	catalog := make([]domain.Descriptor, 0, len(r.entries))
	for _, e := range r.entries {
		year, day, ok := ParseRef(e.ref)
		if !ok {
			r.logger.Debug("excluding module without Year/Day convention", "ref", e.ref)
			continue
		}
		catalog = append(catalog, domain.Descriptor{
			Year:    year,
			Day:     day,
			Ref:     e.ref,
			Factory: e.factory,
		})
	}
	slices.SortFunc(catalog, func(a, b domain.Descriptor) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return catalog
}

// Lookup finds the descriptor registered for year and day.
func (r *Registry) Lookup(year, day int) (domain.Descriptor, bool) {
	for _, d := range r.Catalog() {
		if d.Year == year && d.Day == day {
			return d, true
		}
	}
	return domain.Descriptor{}, false
}

// Years returns the distinct years present in the catalog, ascending.
func (r *Registry) Years() []int {
	var years []int
	for _, d := range r.Catalog() {
		if len(years) == 0 || years[len(years)-1] != d.Year {
			years = append(years, d.Year)
		}
	}
	return years
}

// HasYear reports whether at least one module exists for year.
func (r *Registry) HasYear(year int) bool {
	return slices.Contains(r.Years(), year)
}
