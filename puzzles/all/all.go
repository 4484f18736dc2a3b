// Package all registers every bundled puzzle.
package all

import (
	_ "github.com/aretw0/advent/puzzles/year2024/day01"
	_ "github.com/aretw0/advent/puzzles/year2024/day02"
	_ "github.com/aretw0/advent/puzzles/year2024/day03"
	_ "github.com/aretw0/advent/puzzles/year2025/day01"
)
