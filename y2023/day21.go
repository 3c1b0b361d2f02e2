package main

import (
	"github.com/advent/aoc"
)

// reachablePlots counts the garden plots the elf can stand on after exactly
// steps steps. On an infinite map the grid repeats in every direction.
func reachablePlots(g aoc.Grid[byte], steps int, infinite bool) int {
	start, ok := aoc.Find(g, 'S')
	if !ok {
		panic("no start")
	}
	size := g.Size()
	dist := map[aoc.Pt]int{start: 0}
	q := aoc.NewQueue(start)
	q.While(func(p aoc.Pt) bool {
		d := dist[p]
		if d == steps {
			return true
		}
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if _, ok := dist[n]; ok {
				return true
			}
			tile := n
			if infinite {
				tile = aoc.StandardizePt(n, size)
			}
			if v, ok := g.AtOk(tile); ok && v != '#' {
				dist[n] = d + 1
				q.Push(n)
			}
			return true
		})
		return true
	})
	// A plot reached in d steps can be revisited every two steps after.
	n := 0
	for _, d := range dist {
		if d%2 == steps%2 {
			n++
		}
	}
	return n
}

// extrapolatePlots relies on the real input: a square grid with the start
// in the middle and clear lanes to the edges. The plot count at
// half+k*size steps is then quadratic in k.
func extrapolatePlots(g aoc.Grid[byte], steps int) int {
	size := len(g)
	half := size / 2
	if (steps-half)%size != 0 {
		panic("steps do not land on a tile boundary")
	}
	target := (steps - half) / size
	seq := make([]int, 3)
	for k := range seq {
		seq[k] = reachablePlots(g, half+k*size, true)
	}
	for k := len(seq) - 1; k < target; k++ {
		seq = append(seq[1:], aoc.Extrapolate(seq, true))
	}
	return seq[min(target, len(seq)-1)]
}

/*
want=16

...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
*/
func (s solver) D21p1() any {
	steps := 64
	if s.SampleMode {
		steps = 6
	}
	return reachablePlots(s.Grid(), steps, false)
}

// want=6536
func (s solver) D21p2() any {
	if s.SampleMode {
		return reachablePlots(s.Grid(), 100, true)
	}
	return extrapolatePlots(s.Grid(), 26501365)
}
