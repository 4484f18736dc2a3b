package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path"

	"github.com/aretw0/advent/pkg/domain"
)

// Layout maps an input key to a slash-separated path inside the store's FS.
type Layout func(key domain.InputKey) string

// DefaultLayout stores inputs next to the puzzle they belong to:
// year2024/day01/input.txt for real inputs and year2024/day01/example.txt
// for examples.
func DefaultLayout(key domain.InputKey) string {
	name := "input.txt"
	if key.Variant == domain.VariantExample {
		name = "example.txt"
	}
	return path.Join(fmt.Sprintf("year%d", key.Year), fmt.Sprintf("day%02d", key.Day), name)
}

// Store implements ports.InputStore over an fs.FS.
// It serves a local directory (NewDir) as well as an embedded bundle (New).
type Store struct {
	fsys   iofs.FS
	layout Layout
}

type Option func(*Store)

// WithLayout overrides the key-to-path mapping.
func WithLayout(layout Layout) Option {
	return func(s *Store) {
		s.layout = layout
	}
}

// New creates a store reading from fsys.
func New(fsys iofs.FS, opts ...Option) *Store {
	s := &Store{fsys: fsys, layout: DefaultLayout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDir creates a store reading from a directory on disk.
// If basePath is empty, it defaults to "inputs".
func NewDir(basePath string, opts ...Option) *Store {
	if basePath == "" {
		basePath = "inputs"
	}
	return New(os.DirFS(basePath), opts...)
}

// Open opens the file holding the blob for key.
func (s *Store) Open(ctx context.Context, key domain.InputKey) (io.ReadCloser, error) {
	name := s.layout(key)
	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, name)
		}
		return nil, fmt.Errorf("failed to open input file %s: %w", name, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat input file %s: %w", name, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInputNotFound, name)
	}

	return f, nil
}
