// Package day03 solves 2024 day 3: summing the mul instructions of corrupted memory.
package day03

import (
	"regexp"
	"strconv"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
)

func init() {
	registry.Register("puzzles.Year2024.Day03", New)
}

var (
	mulPattern         = regexp.MustCompile(`mul\((\d+),(\d+)\)`)
	conditionalPattern = regexp.MustCompile(`mul\((\d+),(\d+)\)|don't\(\)|do\(\)`)
)

type Solution struct{}

func New() (domain.Solution, error) {
	return Solution{}, nil
}

// PartOne sums every mul instruction.
func (Solution) PartOne(input string) (string, error) {
	return sum(input, mulPattern)
}

// PartTwo sums the mul instructions enabled by the latest do() or don't().
func (Solution) PartTwo(input string) (string, error) {
	return sum(input, conditionalPattern)
}

func sum(input string, pattern *regexp.Regexp) (string, error) {
	enabled := true
	total := 0
	for _, m := range pattern.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if !enabled {
				continue
			}
			a, err := strconv.Atoi(m[1])
			if err != nil {
				return "", err
			}
			b, err := strconv.Atoi(m[2])
			if err != nil {
				return "", err
			}
			total += a * b
		}
	}
	return strconv.Itoa(total), nil
}
