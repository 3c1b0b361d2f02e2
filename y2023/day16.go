package main

import (
	"slices"

	"github.com/advent/aoc"
)

// beamTurns returns the directions a beam travelling in d leaves tile in.
func beamTurns(tile byte, d aoc.Direction) []aoc.Direction {
	switch tile {
	case '/':
		// Right and Up swap, as do Left and Down.
		if d.Horizontal() {
			return []aoc.Direction{d.Turn(false)}
		}
		return []aoc.Direction{d.Turn(true)}
	case '\\':
		if d.Horizontal() {
			return []aoc.Direction{d.Turn(true)}
		}
		return []aoc.Direction{d.Turn(false)}
	case '|':
		if d.Horizontal() {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case '-':
		if !d.Horizontal() {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Direction{d}
}

// energized returns how many tiles the beam entering at start passes
// through.
func energized(g aoc.Grid[byte], start aoc.Path) int {
	seen := map[aoc.Path]bool{}
	tiles := map[aoc.Pt]bool{}
	q := aoc.NewQueue(start)
	q.While(func(p aoc.Path) bool {
		if seen[p] {
			return true
		}
		seen[p] = true
		tiles[p.Pt] = true
		for _, d := range beamTurns(g.At(p.Pt), p.Dir) {
			if next, ok := g.Move(aoc.Path{Pt: p.Pt, Dir: d}); ok {
				q.Push(next)
			}
		}
		return true
	})
	return len(tiles)
}

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s solver) D16p1() any {
	return energized(s.Grid(), aoc.Path{Dir: aoc.Right})
}

// want=51
func (s solver) D16p2() any {
	g := s.Grid()
	return slices.Max(aoc.Parallel(g.EdgePaths(), func(p aoc.Path) int {
		return energized(g, p)
	}))
}
