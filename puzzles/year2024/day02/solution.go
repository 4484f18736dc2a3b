// Package day02 solves 2024 day 2: counting safe reactor reports.
package day02

import (
	"fmt"
	"strconv"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
	"github.com/aretw0/advent/puzzles/internal/parse"
)

func init() {
	registry.Register("puzzles.Year2024.Day02", New)
}

type Solution struct{}

func New() (domain.Solution, error) {
	return Solution{}, nil
}

// PartOne counts the reports that are safe as they are.
func (Solution) PartOne(input string) (string, error) {
	return count(input, safe)
}

// PartTwo counts the reports that are safe once at most one level is removed.
func (Solution) PartTwo(input string) (string, error) {
	return count(input, dampened)
}

func count(input string, ok func([]int) bool) (string, error) {
	n := 0
	for i, line := range parse.Lines(input) {
		report, err := parse.Ints(line)
		if err != nil {
			return "", fmt.Errorf("report %d: %w", i+1, err)
		}
		if ok(report) {
			n++
		}
	}
	return strconv.Itoa(n), nil
}

// safe reports whether levels strictly increase or decrease by 1 to 3 each step.
func safe(levels []int) bool {
	return monotonic(levels, 1) || monotonic(levels, -1)
}

func monotonic(levels []int, sign int) bool {
	for i := 1; i < len(levels); i++ {
		d := (levels[i] - levels[i-1]) * sign
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

func dampened(levels []int) bool {
	if safe(levels) {
		return true
	}
	buf := make([]int, 0, len(levels))
	for skip := range levels {
		buf = buf[:0]
		buf = append(buf, levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if safe(buf) {
			return true
		}
	}
	return false
}
