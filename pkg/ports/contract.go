package ports

import (
	"context"
	"io"
	"testing"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunInputStoreContract runs a suite of tests to verify that an InputStore
// implementation adheres to the interface contract. seeded must list every
// blob the store was populated with; it must not contain year 1999.
func RunInputStoreContract(t *testing.T, store InputStore, seeded map[domain.InputKey]string) {
	t.Helper()
	ctx := context.Background()

	t.Run("Open Seeded", func(t *testing.T) {
		for key, want := range seeded {
			rc, err := store.Open(ctx, key)
			require.NoError(t, err, "Open(%s) should not return error", key)

			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.NoError(t, rc.Close())
			assert.Equal(t, want, string(got), "content mismatch for %s", key)
		}
	})

	t.Run("Open Missing", func(t *testing.T) {
		_, err := store.Open(ctx, domain.InputKey{Year: 1999, Day: 1, Variant: domain.VariantReal})
		assert.ErrorIs(t, err, domain.ErrInputNotFound)
	})

	t.Run("Variants Are Distinct", func(t *testing.T) {
		for key := range seeded {
			other := key
			if key.Variant == domain.VariantReal {
				other.Variant = domain.VariantExample
			} else {
				other.Variant = domain.VariantReal
			}
			if _, ok := seeded[other]; ok {
				continue
			}
			_, err := store.Open(ctx, other)
			assert.ErrorIs(t, err, domain.ErrInputNotFound, "%s should not be served for %s", other, key)
		}
	})
}
