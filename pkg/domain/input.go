package domain

import (
	"fmt"
	"strings"
)

// Variant selects between the real puzzle input and the published example.
type Variant string

const (
	VariantReal    Variant = "real"
	VariantExample Variant = "example"
)

// ParseVariant accepts "real" or "example" (case-insensitive). Empty means real.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(VariantReal):
		return VariantReal, nil
	case string(VariantExample):
		return VariantExample, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownVariant, s)
	}
}

// InputKey uniquely identifies one input blob.
type InputKey struct {
	Year    int
	Day     int
	Variant Variant
}

// KeyFor builds the input key of a descriptor for the given variant.
func KeyFor(d Descriptor, v Variant) InputKey {
	if v == "" {
		v = VariantReal
	}
	return InputKey{Year: d.Year, Day: d.Day, Variant: v}
}

// String renders the key as "{year}{day:02}.{variant}", e.g. "202401.real".
func (k InputKey) String() string {
	return fmt.Sprintf("%d%02d.%s", k.Year, k.Day, k.Variant)
}

// Selection is the filter applied to the catalog for one run.
// A nil Year selects every year; a nil Day selects every day of Year.
type Selection struct {
	Year    *int
	Day     *int
	Variant Variant
}

// SelectAll returns a selection matching the whole catalog.
func SelectAll(v Variant) Selection {
	return Selection{Variant: v}
}

// SelectYear returns a selection matching every day of a year.
func SelectYear(year int, v Variant) Selection {
	return Selection{Year: &year, Variant: v}
}

// SelectDay returns a selection matching a single puzzle.
func SelectDay(year, day int, v Variant) Selection {
	return Selection{Year: &year, Day: &day, Variant: v}
}

// Matches reports whether d is part of the selection.
func (s Selection) Matches(d Descriptor) bool {
	if s.Year == nil {
		return s.Day == nil
	}
	if d.Year != *s.Year {
		return false
	}
	return s.Day == nil || d.Day == *s.Day
}
