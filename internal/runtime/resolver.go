package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/ports"
)

// Resolve reads the input text of d for variant v from store.
// It fails with domain.ErrMissingInput when the store has no blob for the key
// and with domain.ErrEmptyInput when the blob is blank. The handle returned
// by the store is closed before Resolve returns, on every path. A panic in the
// store or its reader is returned as a *PanicError.
func Resolve(ctx context.Context, store ports.InputStore, d domain.Descriptor, v domain.Variant) (text string, err error) {
	key := domain.KeyFor(d, v)

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("failed to resolve input %s: %w", key, &PanicError{Value: r, Stack: debug.Stack()})
		}
	}()

	rc, err := store.Open(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrInputNotFound) {
			return "", fmt.Errorf("%w: no %s input for %s (key %s)", domain.ErrMissingInput, key.Variant, d, key)
		}
		return "", fmt.Errorf("failed to open input %s: %w", key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", key, err)
	}

	text = string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: input %s for %s is blank", domain.ErrEmptyInput, key, d)
	}
	return text, nil
}

// inputKind classifies a Resolve error.
func inputKind(err error) domain.ErrorKind {
	switch {
	case errors.Is(err, domain.ErrMissingInput):
		return domain.KindMissingInput
	case errors.Is(err, domain.ErrEmptyInput):
		return domain.KindEmptyInput
	default:
		return domain.KindInputError
	}
}
