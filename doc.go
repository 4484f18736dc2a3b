/*
Package advent is a harness that discovers, selects and runs a catalog of
puzzle solutions and reports pass/fail for each part.

Every puzzle implements domain.Solution (PartOne and PartTwo, both text in,
text out) and registers itself from an init function under a logical path
ending in Year<yyyy>.Day<dd>. The engine builds a sorted catalog from those
registrations, instantiates the puzzles selected for a run, resolves their
input from a ports.InputStore and runs both parts with per-part fault
isolation.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/advent"
		"github.com/aretw0/advent/pkg/domain"
		"github.com/aretw0/advent/pkg/report"
		"github.com/aretw0/advent/puzzles"

		_ "github.com/aretw0/advent/puzzles/all" // register bundled puzzles
	)

	func main() {
		eng, err := advent.New(puzzles.Examples())
		if err != nil {
			log.Fatal(err)
		}

		runner := advent.NewRunner(report.NewText(os.Stdout))
		tally, err := runner.Run(context.Background(), eng, domain.SelectYear(2024, domain.VariantExample))
		if err != nil {
			log.Fatal(err)
		}
		if !tally.OK() {
			os.Exit(1)
		}
	}
*/
package advent
