package memory_test

import (
	"context"
	"io"
	"testing"

	"github.com/aretw0/advent/pkg/adapters/memory"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	seeded := map[domain.InputKey]string{
		{Year: 2024, Day: 1, Variant: domain.VariantReal}:    "3 4\n4 3\n",
		{Year: 2024, Day: 1, Variant: domain.VariantExample}: "1 1\n",
		{Year: 2024, Day: 2, Variant: domain.VariantReal}:    "7 6 4 2 1\n",
	}

	store := memory.NewStore()
	for k, v := range seeded {
		store.Put(k, v)
	}

	ports.RunInputStoreContract(t, store, seeded)
}

func TestMemoryStore_PutReplacesAndDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	key := domain.InputKey{Year: 2024, Day: 3, Variant: domain.VariantExample}

	store.Put(key, "old")
	store.Put(key, "new")

	rc, err := store.Open(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "new", string(data))

	store.Delete(key)
	_, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, domain.ErrInputNotFound)
}
