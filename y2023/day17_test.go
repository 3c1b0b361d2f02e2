package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUltraCrucible(t *testing.T) {
	input := `111111111111
999999999991
999999999991
999999999991
999999999991
`
	require.Equal(t, 71, puzzle(input).D17p2())
}

func TestMinHeatLossTiny(t *testing.T) {
	require.Equal(t, 2, minHeatLoss(heatMap([]string{"19", "11"}), 1, 3))
}
