// Package puzzles bundles the example inputs of the puzzles shipped with advent.
//
// The solutions themselves live in the year*/day* subpackages and register
// into registry.Default when imported; import puzzles/all to get every one.
// Real inputs are personal to each player and are never bundled.
package puzzles

import (
	"embed"
	iofs "io/fs"

	"github.com/aretw0/advent/pkg/adapters/fs"
)

//go:embed year*/day*/example.txt
var examples embed.FS

// FS returns the embedded example inputs laid out as fs.DefaultLayout expects.
func FS() iofs.FS {
	return examples
}

// Examples returns an input store serving the embedded example inputs.
func Examples() *fs.Store {
	return fs.New(examples)
}
