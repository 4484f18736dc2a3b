package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))"

func TestPartOne(t *testing.T) {
	got, err := Solution{}.PartOne(example)
	require.NoError(t, err)
	assert.Equal(t, "161", got)
}

func TestPartTwo(t *testing.T) {
	got, err := Solution{}.PartTwo(example)
	require.NoError(t, err)
	assert.Equal(t, "48", got)
}

func TestMultiline(t *testing.T) {
	got, err := Solution{}.PartTwo("mul(2,3)don't()\nmul(4,4)\ndo()mul(1,1)")
	require.NoError(t, err)
	assert.Equal(t, "7", got)
}
