package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInputNotFound is returned by input stores when no blob exists for a key.
var ErrInputNotFound = errors.New("input not found")

// ErrMissingInput is returned by the resolver when no input exists for a puzzle.
var ErrMissingInput = errors.New("missing input")

// ErrEmptyInput is returned by the resolver when the input exists but is blank.
var ErrEmptyInput = errors.New("empty input")

// ErrDayWithoutYear is returned when a selection names a day but no year.
var ErrDayWithoutYear = errors.New("day requires year")

// ErrDuplicate is returned when two modules register the same year and day.
var ErrDuplicate = errors.New("duplicate puzzle registration")

// ErrUnknownVariant is returned for an input variant other than real or example.
var ErrUnknownVariant = errors.New("unknown input variant")

// LoadFailure records why a single descriptor could not be instantiated.
type LoadFailure struct {
	Descriptor Descriptor
	Err        error
}

// LoadError aggregates every instantiation failure of a run.
type LoadError struct {
	Failures []LoadFailure
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("failed to instantiate one or more solutions:")
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n- Year %d, Day %d, Ref %s\n  cause: %v", f.Descriptor.Year, f.Descriptor.Day, f.Descriptor.Ref, f.Err)
	}
	return b.String()
}

// Unwrap exposes the individual causes to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}
