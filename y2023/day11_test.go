package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const galaxyImage = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

func TestGalaxyDistances(t *testing.T) {
	g := puzzle(galaxyImage).Grid()
	require.Equal(t, 374, galaxyDistances(g, 2))
	require.Equal(t, 1030, galaxyDistances(g, 10))
	require.Equal(t, 8410, galaxyDistances(g, 100))
	require.Equal(t, 11, galaxyDistances(puzzle("#.#\n").Grid(), 10))
}
