package main

import (
	"strconv"
	"strings"

	"github.com/advent/aoc"
)

type digStep struct {
	dir aoc.Direction
	n   int
}

var digDirs = map[string]aoc.Direction{
	"U": aoc.Up, "R": aoc.Right, "D": aoc.Down, "L": aoc.Left,
	// The last hex digit of a color: 0 R, 1 D, 2 L, 3 U.
	"0": aoc.Right, "1": aoc.Down, "2": aoc.Left, "3": aoc.Up,
}

// parseDigPlan reads "R 6 (#70c710)" lines. With fromColor the step comes
// from the color instead: five hex digits of distance then a direction
// digit.
func parseDigPlan(lines []string, fromColor bool) []digStep {
	steps := make([]digStep, len(lines))
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) != 3 {
			panic("bad dig step: " + l)
		}
		if !fromColor {
			d, ok := digDirs[f[0]]
			if !ok {
				panic("bad direction: " + l)
			}
			steps[i] = digStep{dir: d, n: aoc.Int(f[1])}
			continue
		}
		hex := strings.TrimSuffix(aoc.TrimPrefix(f[2], "(#"), ")")
		if len(hex) != 6 {
			panic("bad color: " + f[2])
		}
		d, ok := digDirs[hex[5:]]
		if !ok {
			panic("bad direction digit: " + hex)
		}
		steps[i] = digStep{dir: d, n: int(aoc.MustGet(strconv.ParseInt(hex[:5], 16, 64)))}
	}
	return steps
}

// trenchCorners returns the corners of the trench starting at the origin.
func trenchCorners(steps []digStep) []aoc.Pt {
	pts := []aoc.Pt{{}}
	p := aoc.Pt{}
	for _, s := range steps {
		p = p.Add(s.dir.Delta().Mul(s.n))
		pts = append(pts, p)
	}
	return pts
}

// lagoonByFill digs the trench into a grid and counts everything the
// outside flood fill cannot reach.
func lagoonByFill(steps []digStep) int {
	pts := trenchCorners(steps)
	lo, hi := pts[0], pts[0]
	for _, p := range pts {
		lo = aoc.Pt{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = aoc.Pt{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	// One cell of margin on every side keeps the outside connected.
	off := aoc.Pt{X: 1 - lo.X, Y: 1 - lo.Y}
	g := aoc.MakeGrid[byte](hi.X-lo.X+3, hi.Y-lo.Y+3).Fill('.')
	g.Set(off, '#')
	for i := 1; i < len(pts); i++ {
		to := pts[i].Add(off)
		for p := pts[i-1].Add(off); p != to; {
			p = p.Toward(to)
			g.Set(p, '#')
		}
	}
	aoc.FloodFill(g, aoc.Pt{}, '.', ' ')
	return aoc.Count(g, '#') + aoc.Count(g, '.')
}

/*
want=62

R 6 (#70c710)
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
*/
func (s solver) D18p1() any {
	return lagoonByFill(parseDigPlan(s.Lines(), false))
}

// want=952408144115
func (s solver) D18p2() any {
	pts := trenchCorners(parseDigPlan(s.Lines(), true))
	return aoc.PolygonBoundedPoints(pts)
}
