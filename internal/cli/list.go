package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/advent/internal/presentation/tui"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
)

// ListOptions configures the list command.
type ListOptions struct {
	Registry *registry.Registry
	Year     *int
	JSON     bool
	Stdout   io.Writer
}

// List prints the catalog: markdown on a terminal, tab separated lines in a
// pipe, or a JSON array.
func List(opts ListOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	reg := opts.Registry
	if reg == nil {
		reg = registry.Default
	}

	req := Request{Year: opts.Year}
	catalog := reg.Catalog()
	if err := req.Validate(catalog); err != nil {
		return err
	}

	selected := []domain.Descriptor{}
	sel := req.Selection()
	for _, d := range catalog {
		if sel.Matches(d) {
			selected = append(selected, d)
		}
	}

	switch {
	case opts.JSON:
		enc := json.NewEncoder(opts.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(selected)

	case tui.IsTerminal(opts.Stdout):
		render := tui.NewRenderer(tui.Width(opts.Stdout))
		out, err := render(tui.CatalogMarkdown(selected))
		if err != nil {
			return fmt.Errorf("error rendering catalog: %w", err)
		}
		_, err = fmt.Fprint(opts.Stdout, out)
		return err

	default:
		_, err := fmt.Fprint(opts.Stdout, tui.CatalogPlain(selected))
		return err
	}
}
