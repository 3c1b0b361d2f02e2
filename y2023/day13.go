package main

import (
	"strings"

	"github.com/advent/aoc"
)

// mirrorRow returns the number of rows above a horizontal line of
// reflection where the mirrored rows differ in exactly smudges cells, or 0.
func mirrorRow(g aoc.Grid[byte], smudges int) int {
	for y := 1; y < len(g); y++ {
		diff := 0
		for a, b := y-1, y; a >= 0 && b < len(g) && diff <= smudges; a, b = a-1, b+1 {
			for x := range g[a] {
				if g[a][x] != g[b][x] {
					diff++
				}
			}
		}
		if diff == smudges {
			return y
		}
	}
	return 0
}

func summarizeMirrors(blocks []string, smudges int) int {
	sum := 0
	for _, b := range blocks {
		g := aoc.ParseGrid(strings.Split(b, "\n"))
		if y := mirrorRow(g, smudges); y > 0 {
			sum += 100 * y
			continue
		}
		x := mirrorRow(g.Transpose(), smudges)
		if x == 0 {
			panic("no line of reflection in:\n" + b)
		}
		sum += x
	}
	return sum
}

/*
want=405

#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#
*/
func (s solver) D13p1() any {
	return summarizeMirrors(s.Blocks(), 0)
}

// want=400
func (s solver) D13p2() any {
	return summarizeMirrors(s.Blocks(), 1)
}
