package ports

import (
	"context"
	"io"

	"github.com/aretw0/advent/pkg/domain"
)

// InputStore defines how the engine retrieves puzzle inputs.
type InputStore interface {
	// Open returns a reader over the blob stored under key.
	// It returns domain.ErrInputNotFound (possibly wrapped) if no blob exists.
	// The caller MUST close the returned reader.
	Open(ctx context.Context, key domain.InputKey) (io.ReadCloser, error)
}

// InputStoreFunc adapts a function to the InputStore interface.
type InputStoreFunc func(ctx context.Context, key domain.InputKey) (io.ReadCloser, error)

// Open calls f(ctx, key).
func (f InputStoreFunc) Open(ctx context.Context, key domain.InputKey) (io.ReadCloser, error) {
	return f(ctx, key)
}
