package advent_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/advent"
	"github.com/aretw0/advent/pkg/adapters/memory"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
	"github.com/aretw0/advent/pkg/report"
)

type reverse struct{}

func (reverse) PartOne(input string) (string, error) {
	r := []rune(input)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r), nil
}

func (reverse) PartTwo(input string) (string, error) {
	return "", errors.New("not solved yet")
}

// ExampleNew shows a private registry with a single puzzle and an in-memory input.
func ExampleNew() {
	reg := registry.NewRegistry()
	if err := reg.Register("example.Year2015.Day01", func() (domain.Solution, error) {
		return reverse{}, nil
	}); err != nil {
		log.Fatal(err)
	}

	inputs := memory.NewStore()
	inputs.Put(domain.InputKey{Year: 2015, Day: 1, Variant: domain.VariantReal}, "stressed")

	eng, err := advent.New(inputs, advent.WithRegistry(reg))
	if err != nil {
		log.Fatal(err)
	}

	reporter := report.NewText(os.Stdout, report.WithColor(false))
	tally, err := advent.NewRunner(reporter).Run(context.Background(), eng, domain.SelectAll(domain.VariantReal))
	if err != nil {
		log.Fatal(err)
	}
	_ = reporter.Summary()
	fmt.Println("ok:", tally.OK())

	// Output:
	// [OK]   Year 2015 Day 01 Part 1:
	//       desserts
	// [FAIL] Year 2015 Day 01 Part 2:
	//       OperationFault: not solved yet
	// 1 passed, 1 failed
	// ok: false
}
