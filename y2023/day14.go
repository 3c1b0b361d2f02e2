package main

import (
	"github.com/advent/aoc"
	"tailscale.com/util/deephash"
)

// tiltNorth rolls every round rock as far up as it goes.
func tiltNorth(g aoc.Grid[byte]) {
	for x := range g.Size().X {
		free := 0
		for y := range g {
			switch g[y][x] {
			case '#':
				free = y + 1
			case 'O':
				g[y][x] = '.'
				g[free][x] = 'O'
				free++
			}
		}
	}
}

// tilt rolls every round rock as far as it goes toward d.
func tilt(g aoc.Grid[byte], d aoc.Direction) aoc.Grid[byte] {
	switch d {
	case aoc.Left:
		g = g.RotateClockwise()
		tiltNorth(g)
		return g.RotateCounterClockwise()
	case aoc.Right:
		g = g.RotateCounterClockwise()
		tiltNorth(g)
		return g.RotateClockwise()
	case aoc.Down:
		g = g.RotateClockwise().RotateClockwise()
		tiltNorth(g)
		return g.RotateCounterClockwise().RotateCounterClockwise()
	}
	tiltNorth(g)
	return g
}

// spinCycle tilts north, west, south and east in turn.
func spinCycle(g aoc.Grid[byte]) aoc.Grid[byte] {
	for _, d := range []aoc.Direction{aoc.Up, aoc.Left, aoc.Down, aoc.Right} {
		g = tilt(g, d)
	}
	return g
}

func northLoad(g aoc.Grid[byte]) int {
	load := 0
	g.All(func(p aoc.Pt, v byte) bool {
		if v == 'O' {
			load += len(g) - p.Y
		}
		return true
	})
	return load
}

/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s solver) D14p1() any {
	g := s.Grid()
	tiltNorth(g)
	return northLoad(g)
}

// want=64
func (s solver) D14p2() any {
	const cycles = 1_000_000_000
	g := s.Grid()
	seen := map[deephash.Sum]int{}
	var states []aoc.Grid[byte]
	for i := 0; ; i++ {
		h := g.Hash()
		if j, ok := seen[h]; ok {
			period := i - j
			s.Debugf("spin cycle repeats: first seen after %d, period %d", j, period)
			return northLoad(states[j+(cycles-j)%period])
		}
		if i == cycles {
			return northLoad(g)
		}
		seen[h] = i
		states = append(states, g)
		g = spinCycle(g.Clone())
	}
}
