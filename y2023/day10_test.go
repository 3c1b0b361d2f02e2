package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFarthestPipe(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"FS\nLJ\n", 2},
		{".....\n.S-7.\n.|.|.\n.L-J.\n.....\n", 4},
		{"..F7.\n.FJ|.\nSJ.L7\n|F--J\nLJ...\n", 8},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, puzzle(tt.input).D10p1(), tt.input)
	}
}

func TestEnclosedTiles(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{`...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`, 4},
		{`.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`, 8},
		{"S-7\n|.|\nL-J\n", 1},
		{"S-7.\n|.|.\n|.|.\nL-J.\n", 2},
		{"S---7.\n|...|.\n|...|.\n|...|.\nL---J.\n", 9},
		{"S---7.\n|F-7|.\n||-||.\n|L-J|.\nL---J.\n", 9},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, puzzle(tt.input).D10p2(), tt.input)
	}
}

func TestPipeExits(t *testing.T) {
	for pipe, exits := range pipeExits {
		require.NotEqual(t, exits[0], exits[1], "pipe %c", pipe)
	}
	require.Panics(t, func() { pipeLoop(puzzle("...\n.S.\n...\n").Grid()) })
}
