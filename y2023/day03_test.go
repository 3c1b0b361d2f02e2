package main

import (
	"testing"

	"github.com/advent/aoc"
	"github.com/stretchr/testify/require"
)

func TestSchematicNumbers(t *testing.T) {
	g := aoc.ParseGrid([]string{"467..114..", "...*......"})
	nums := schematicNumbers(g)
	require.Equal(t, []partNumber{
		{n: 467, at: aoc.Pt{X: 0, Y: 0}, digits: 3},
		{n: 114, at: aoc.Pt{X: 5, Y: 0}, digits: 3},
	}, nums)
}

func TestEdgeNumbers(t *testing.T) {
	// Numbers at the right edge and symbols on the diagonal both count.
	require.Equal(t, 12+3, puzzle("...12\n..*..\n3....\n.#...\n").D3p1())
	require.Equal(t, 36, puzzle("...12\n..*..\n..3..\n").D3p2())
}
