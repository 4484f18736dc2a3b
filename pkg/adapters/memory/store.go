package memory

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/aretw0/advent/pkg/domain"
)

// Store implements ports.InputStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[domain.InputKey]string
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[domain.InputKey]string),
	}
}

// Put stores an input blob under key, replacing any previous one.
func (s *Store) Put(key domain.InputKey, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = content
}

// Delete removes the blob stored under key.
func (s *Store) Delete(key domain.InputKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Open returns a reader over the blob stored under key.
func (s *Store) Open(ctx context.Context, key domain.InputKey) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.data[key]
	if !ok {
		return nil, domain.ErrInputNotFound
	}
	return io.NopCloser(strings.NewReader(content)), nil
}
