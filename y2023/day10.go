package main

import (
	"fmt"

	"github.com/advent/aoc"
)

var pipeExits = map[byte][2]aoc.Direction{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Left, aoc.Right},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Left, aoc.Down},
	'F': {aoc.Right, aoc.Down},
}

func pipeHasExit(pipe byte, d aoc.Direction) bool {
	exits, ok := pipeExits[pipe]
	return ok && (exits[0] == d || exits[1] == d)
}

// pipeLoop returns the tiles of the loop through S in walking order, closed
// by repeating S at the end.
func pipeLoop(g aoc.Grid[byte]) []aoc.Pt {
	start, ok := aoc.Find(g, 'S')
	if !ok {
		panic("no start tile")
	}
	var dirs []aoc.Direction
	for _, d := range aoc.Directions {
		if v, ok := g.AtOk(start.Add(d.Delta())); ok && pipeHasExit(v, d.Opposite()) {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) < 2 {
		panic(fmt.Sprintf("start tile connects to %d pipes", len(dirs)))
	}
	// Stray pipes may also point at S; only the real loop comes back.
	for _, d := range dirs {
		if loop, ok := walkPipes(g, start, d); ok {
			return loop
		}
	}
	panic("no loop through the start tile")
}

func walkPipes(g aoc.Grid[byte], start aoc.Pt, dir aoc.Direction) ([]aoc.Pt, bool) {
	loop := []aoc.Pt{start}
	p := start
	for {
		p = p.Add(dir.Delta())
		if !g.In(p) {
			return nil, false
		}
		loop = append(loop, p)
		if p == start {
			return loop, true
		}
		exits, ok := pipeExits[g.At(p)]
		switch {
		case !ok:
			return nil, false
		case exits[0] == dir.Opposite():
			dir = exits[1]
		case exits[1] == dir.Opposite():
			dir = exits[0]
		default:
			return nil, false
		}
	}
}

/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func (s solver) D10p1() any {
	loop := pipeLoop(s.Grid())
	return (len(loop) - 1) / 2
}

/*
want=10

FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
*/
func (s solver) D10p2() any {
	return aoc.PolygonInteriorPoints(pipeLoop(s.Grid()))
}
