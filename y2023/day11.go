package main

import (
	"github.com/advent/aoc"
)

// galaxyDistances returns the sum of the shortest distances between every
// pair of galaxies once each empty row and column is replaced by factor
// empty rows or columns.
func galaxyDistances(g aoc.Grid[byte], factor int) int {
	size := g.Size()
	rowHas := make([]bool, size.Y)
	colHas := make([]bool, size.X)
	var galaxies []aoc.Pt
	g.All(func(p aoc.Pt, v byte) bool {
		if v == '#' {
			galaxies = append(galaxies, p)
			rowHas[p.Y] = true
			colHas[p.X] = true
		}
		return true
	})
	// expanded[i] is the coordinate of row or column i after expansion.
	expand := func(has []bool) []int {
		out := make([]int, len(has))
		at := 0
		for i, h := range has {
			out[i] = at
			if h {
				at++
			} else {
				at += factor
			}
		}
		return out
	}
	ys, xs := expand(rowHas), expand(colHas)

	sum := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			sum += aoc.AbsDiff(xs[a.X], xs[b.X]) + aoc.AbsDiff(ys[a.Y], ys[b.Y])
		}
	}
	return sum
}

/*
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func (s solver) D11p1() any {
	return galaxyDistances(s.Grid(), 2)
}

// want=8410
func (s solver) D11p2() any {
	factor := 1_000_000
	if s.SampleMode {
		factor = 100
	}
	return galaxyDistances(s.Grid(), factor)
}
