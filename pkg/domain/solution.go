package domain

import "fmt"

// Solution is the capability every puzzle module exposes.
// Both parts receive the same input text and are invoked independently.
type Solution interface {
	PartOne(input string) (string, error)
	PartTwo(input string) (string, error)
}

// Factory constructs a fresh Solution instance.
type Factory func() (Solution, error)

// Descriptor identifies a puzzle module in the catalog.
type Descriptor struct {
	Year    int     `json:"year"`
	Day     int     `json:"day"`
	Ref     string  `json:"ref"`
	Factory Factory `json:"-"`
}

// String returns the human readable identity, e.g. "Year 2024 Day 01".
func (d Descriptor) String() string {
	return fmt.Sprintf("Year %d Day %02d", d.Year, d.Day)
}

// Less reports whether d sorts before other in catalog order.
func (d Descriptor) Less(other Descriptor) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	return d.Day < other.Day
}
