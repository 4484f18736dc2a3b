// Package parse holds the input helpers shared by the bundled puzzles.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits input into its non-blank lines. Both LF and CRLF endings are accepted.
func Lines(input string) []string {
	var lines []string
	for line := range strings.Lines(input) {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Ints parses the whitespace separated integers of a line.
func Ints(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}
