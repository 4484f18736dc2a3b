package testutils

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
	"github.com/stretchr/testify/require"
)

// PartFunc is the body of a fake puzzle part.
type PartFunc func(input string) (string, error)

// Solution is a configurable domain.Solution that counts how often each
// part was invoked. A nil part returns "" with no error.
type Solution struct {
	One PartFunc
	Two PartFunc

	oneCalls atomic.Int64
	twoCalls atomic.Int64
}

func (s *Solution) PartOne(input string) (string, error) {
	s.oneCalls.Add(1)
	if s.One == nil {
		return "", nil
	}
	return s.One(input)
}

func (s *Solution) PartTwo(input string) (string, error) {
	s.twoCalls.Add(1)
	if s.Two == nil {
		return "", nil
	}
	return s.Two(input)
}

// Calls returns how many times part one and part two ran.
func (s *Solution) Calls() (one, two int64) {
	return s.oneCalls.Load(), s.twoCalls.Load()
}

// Returning builds a part that always answers out.
func Returning(out string) PartFunc {
	return func(string) (string, error) { return out, nil }
}

// Echo builds a part that answers its input.
func Echo() PartFunc {
	return func(input string) (string, error) { return input, nil }
}

// Failing builds a part that always returns an error with msg.
func Failing(msg string) PartFunc {
	return func(string) (string, error) { return "", errors.New(msg) }
}

// Panicking builds a part that panics with v.
func Panicking(v any) PartFunc {
	return func(string) (string, error) { panic(v) }
}

// Factory wraps an existing solution in a domain.Factory.
func Factory(s domain.Solution) domain.Factory {
	return func() (domain.Solution, error) { return s, nil }
}

// FailingFactory builds a factory that cannot construct its solution.
func FailingFactory(err error) domain.Factory {
	return func() (domain.Solution, error) { return nil, err }
}

// NewRegistry builds a registry from ref -> factory pairs.
// It fails the test immediately on a registration error.
func NewRegistry(t *testing.T, modules map[string]domain.Factory) *registry.Registry {
	t.Helper()

	reg := registry.NewRegistry()
	for ref, factory := range modules {
		require.NoError(t, reg.Register(ref, factory), "Failed to register %s", ref)
	}
	return reg
}
