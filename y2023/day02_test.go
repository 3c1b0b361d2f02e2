package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGame(t *testing.T) {
	g := parseGame("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red")
	require.Equal(t, 3, g.id)
	require.Len(t, g.draws, 3)
	require.Equal(t, cubes{r: 20, g: 13, b: 6}, g.minSet())
	require.False(t, g.minSet().within(cubes{12, 13, 14}))
}

func TestParseGameBadColor(t *testing.T) {
	require.Panics(t, func() { parseGame("Game 1: 3 purple") })
}
