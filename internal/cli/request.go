package cli

import (
	"fmt"
	"slices"

	"github.com/aretw0/advent/pkg/domain"
)

// Request is what the user asked to run.
type Request struct {
	Year    *int
	Day     *int
	Example bool
}

// ValidationError reports a request that names puzzles outside the catalog.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the request against the catalog.
// A request without a year is always valid, even on an empty catalog.
func (r Request) Validate(catalog []domain.Descriptor) error {
	if r.Day != nil && r.Year == nil {
		return &ValidationError{
			Message: "--day requires --year. Please specify --year <value>.",
			Err:     domain.ErrDayWithoutYear,
		}
	}
	if r.Year == nil {
		return nil
	}

	year := *r.Year
	if !slices.ContainsFunc(catalog, func(d domain.Descriptor) bool { return d.Year == year }) {
		return &ValidationError{Message: fmt.Sprintf("No solutions exist for year %d.", year)}
	}
	if r.Day == nil {
		return nil
	}

	day := *r.Day
	if !slices.ContainsFunc(catalog, func(d domain.Descriptor) bool { return d.Year == year && d.Day == day }) {
		return &ValidationError{Message: fmt.Sprintf("No solutions exist for day %d in year %d.", day, year)}
	}
	return nil
}

// Variant is the input variant the request runs against.
func (r Request) Variant() domain.Variant {
	if r.Example {
		return domain.VariantExample
	}
	return domain.VariantReal
}

// Selection converts the request into an engine selection.
func (r Request) Selection() domain.Selection {
	return domain.Selection{Year: r.Year, Day: r.Day, Variant: r.Variant()}
}
