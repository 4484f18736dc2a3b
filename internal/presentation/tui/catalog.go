package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/advent/pkg/domain"
)

// CatalogMarkdown renders the catalog as one markdown table per year.
func CatalogMarkdown(catalog []domain.Descriptor) string {
	var b strings.Builder
	b.WriteString("# Puzzles\n")
	if len(catalog) == 0 {
		b.WriteString("\nNo puzzles registered.\n")
		return b.String()
	}

	year := 0
	for _, d := range catalog {
		if d.Year != year {
			year = d.Year
			fmt.Fprintf(&b, "\n## %d\n\n| Day | Module |\n|---:|---|\n", year)
		}
		fmt.Fprintf(&b, "| %02d | `%s` |\n", d.Day, d.Ref)
	}
	fmt.Fprintf(&b, "\n%d puzzles\n", len(catalog))
	return b.String()
}

// CatalogPlain renders the catalog one puzzle per line, for pipes.
func CatalogPlain(catalog []domain.Descriptor) string {
	var b strings.Builder
	for _, d := range catalog {
		fmt.Fprintf(&b, "%d\t%02d\t%s\n", d.Year, d.Day, d.Ref)
	}
	return b.String()
}
