// Package day01 solves 2024 day 1: comparing two location id lists.
package day01

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
	"github.com/aretw0/advent/puzzles/internal/parse"
)

func init() {
	registry.Register("puzzles.Year2024.Day01", New)
}

type Solution struct{}

func New() (domain.Solution, error) {
	return Solution{}, nil
}

// PartOne pairs the sorted lists and sums the distance of each pair.
func (Solution) PartOne(input string) (string, error) {
	left, right, err := lists(input)
	if err != nil {
		return "", err
	}
	slices.Sort(left)
	slices.Sort(right)

	total := 0
	for i := range left {
		total += abs(left[i] - right[i])
	}
	return strconv.Itoa(total), nil
}

// PartTwo sums each left id weighted by how often it appears on the right.
func (Solution) PartTwo(input string) (string, error) {
	left, right, err := lists(input)
	if err != nil {
		return "", err
	}

	counts := make(map[int]int, len(right))
	for _, r := range right {
		counts[r]++
	}

	total := 0
	for _, l := range left {
		total += l * counts[l]
	}
	return strconv.Itoa(total), nil
}

func lists(input string) (left, right []int, err error) {
	for i, line := range parse.Lines(input) {
		values, err := parse.Ints(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(values) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected 2 ids, got %d", i+1, len(values))
		}
		left = append(left, values[0])
		right = append(right, values[1])
	}
	return left, right, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
