package main

import (
	"testing"

	"github.com/advent/aoc"
	"github.com/stretchr/testify/require"
)

const smallTrail = `#.###
#.>.#
#v#v#
#.>.#
###v#
###.#
`

func TestSlopeGraph(t *testing.T) {
	g := puzzle(smallTrail).Grid()
	start, end := trailEnds(g)
	require.Equal(t, aoc.Pt{X: 1, Y: 0}, start)
	require.Equal(t, aoc.Pt{X: 3, Y: 5}, end)

	gr := slopeGraph(g, start, end)
	require.Len(t, gr.Nodes, 4)
	require.Equal(t, 1, gr.Edges[start][aoc.Pt{X: 1, Y: 1}])
	// Both branches meet uphill of the exit and neither leads back up.
	require.Equal(t, 4, gr.Edges[aoc.Pt{X: 1, Y: 1}][aoc.Pt{X: 3, Y: 3}])
	require.Empty(t, gr.Edges[aoc.Pt{X: 3, Y: 3}][aoc.Pt{X: 1, Y: 1}])
	// The corridor to the entrance has no slope, yet it is one-way.
	require.NotContains(t, gr.Edges[aoc.Pt{X: 1, Y: 1}], start)
	require.Empty(t, gr.Edges[end])
	require.Len(t, gr.TopoSort(), 4)

	n, ok := gr.LongestPathDAG(start, end)
	require.True(t, ok)
	require.Equal(t, 7, n)
}

func TestCanStep(t *testing.T) {
	require.True(t, canStep('.', aoc.Up))
	require.True(t, canStep('>', aoc.Right))
	require.False(t, canStep('>', aoc.Left))
	require.True(t, canStep('v', aoc.Down))
	require.False(t, canStep('v', aoc.Up))
}
