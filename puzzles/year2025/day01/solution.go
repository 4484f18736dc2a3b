// Package day01 solves 2025 day 1: counting how often a safe dial points at zero.
package day01

import (
	"fmt"
	"strconv"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
	"github.com/aretw0/advent/puzzles/internal/parse"
)

func init() {
	registry.Register("puzzles.Year2025.Day01", New)
}

const (
	dialSize = 100
	start    = 50
)

type Solution struct{}

func New() (domain.Solution, error) {
	return Solution{}, nil
}

// PartOne counts the rotations that leave the dial at zero.
func (Solution) PartOne(input string) (string, error) {
	rotations, err := parseRotations(input)
	if err != nil {
		return "", err
	}

	position, count := start, 0
	for _, r := range rotations {
		position = mod(position+r, dialSize)
		if position == 0 {
			count++
		}
	}
	return strconv.Itoa(count), nil
}

// PartTwo counts every click that passes the dial over zero.
func (Solution) PartTwo(input string) (string, error) {
	rotations, err := parseRotations(input)
	if err != nil {
		return "", err
	}

	position, count := start, 0
	for _, r := range rotations {
		count += zeroCrossings(position, r)
		position = mod(position+r, dialSize)
	}
	return strconv.Itoa(count), nil
}

func zeroCrossings(position, rotation int) int {
	full := abs(rotation) / dialSize
	next := position + rotation%dialSize

	var crosses bool
	if rotation > 0 {
		crosses = next >= dialSize
	} else {
		crosses = position != 0 && next <= 0
	}
	if crosses {
		full++
	}
	return full
}

func parseRotations(input string) ([]int, error) {
	lines := parse.Lines(input)
	rotations := make([]int, 0, len(lines))
	for _, line := range lines {
		if len(line) < 2 {
			return nil, fmt.Errorf("invalid rotation %q", line)
		}
		n, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, fmt.Errorf("invalid rotation %q: %w", line, err)
		}
		switch line[0] {
		case 'L':
			rotations = append(rotations, -n)
		case 'R':
			rotations = append(rotations, n)
		default:
			return nil, fmt.Errorf("invalid direction in %q", line)
		}
	}
	return rotations, nil
}

func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
