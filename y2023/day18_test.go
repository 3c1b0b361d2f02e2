package main

import (
	"testing"

	"github.com/advent/aoc"
	"github.com/stretchr/testify/require"
)

func TestDigPlanFromColor(t *testing.T) {
	steps := parseDigPlan([]string{"R 6 (#70c710)", "D 5 (#0dc571)"}, true)
	require.Equal(t, []digStep{{aoc.Right, 461937}, {aoc.Down, 56407}}, steps)
	require.Equal(t, []aoc.Pt{{X: 0, Y: 0}, {X: 461937, Y: 0}, {X: 461937, Y: 56407}}, trenchCorners(steps))
}

func TestLagoonMethodsAgree(t *testing.T) {
	lines := puzzle(`R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
`).Lines()
	steps := parseDigPlan(lines, false)
	require.Equal(t, 62, lagoonByFill(steps))
	require.Equal(t, 62, aoc.PolygonBoundedPoints(trenchCorners(steps)))
}

func TestBadDigPlan(t *testing.T) {
	require.Panics(t, func() { parseDigPlan([]string{"R 6 (#70c71)"}, true) })
	require.Panics(t, func() { parseDigPlan([]string{"R 6 (#70c719)"}, true) })
}
