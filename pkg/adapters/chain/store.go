package chain

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/ports"
)

// Store implements ports.InputStore by consulting several stores in order.
// The first store that has the key wins; any error other than
// domain.ErrInputNotFound stops the search.
type Store struct {
	stores []ports.InputStore
}

// New creates a chain over stores. Nil stores are skipped.
func New(stores ...ports.InputStore) *Store {
	s := &Store{}
	for _, st := range stores {
		if st != nil {
			s.stores = append(s.stores, st)
		}
	}
	return s
}

// Open returns the blob from the first store that has key.
func (s *Store) Open(ctx context.Context, key domain.InputKey) (io.ReadCloser, error) {
	for _, st := range s.stores {
		rc, err := st.Open(ctx, key)
		if err == nil {
			return rc, nil
		}
		if !errors.Is(err, domain.ErrInputNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, key)
}
