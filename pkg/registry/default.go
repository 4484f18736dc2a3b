package registry

import "github.com/aretw0/advent/pkg/domain"

// Default is the process-wide registry that puzzle packages register into
// from their init functions.
var Default = NewRegistry()

// Register adds a module to the Default registry.
// It panics on an invalid registration, which can only be a programming error.
func Register(ref string, factory domain.Factory) {
	if err := Default.Register(ref, factory); err != nil {
		panic(err)
	}
}

// Catalog returns the catalog of the Default registry.
func Catalog() []domain.Descriptor {
	return Default.Catalog()
}
