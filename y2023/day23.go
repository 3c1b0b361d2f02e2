package main

import (
	"bytes"

	"github.com/advent/aoc"
)

// trailEnds returns the single open tiles in the top and bottom rows.
func trailEnds(g aoc.Grid[byte]) (start, end aoc.Pt) {
	start = aoc.Pt{X: bytes.IndexByte(g[0], '.'), Y: 0}
	end = aoc.Pt{X: bytes.IndexByte(g[len(g)-1], '.'), Y: len(g) - 1}
	if start.X < 0 || end.X < 0 {
		panic("trail has no entrance or exit")
	}
	return start, end
}

// canStep reports whether a hiker on tile may leave it in direction d.
// Slopes only allow stepping downhill.
func canStep(tile byte, d aoc.Direction) bool {
	return tile == '.' || string(tile) == d.String()
}

func isJunction(g aoc.Grid[byte], p aoc.Pt) bool {
	n := 0
	p.ForImmediateNeighbors(func(q aoc.Pt) bool {
		if v, ok := g.AtOk(q); ok && v != '#' {
			n++
		}
		return true
	})
	return n > 2
}

// slopeGraph builds the directed graph between junctions of the trail map,
// walking each corridor in the directions its slopes allow. No arc leads
// into start or out of end.
func slopeGraph(g aoc.Grid[byte], start, end aoc.Pt) aoc.Graph[aoc.Pt] {
	var gr aoc.Graph[aoc.Pt]
	junctions := []aoc.Pt{start, end}
	g.All(func(p aoc.Pt, v byte) bool {
		if v != '#' && isJunction(g, p) {
			junctions = append(junctions, p)
		}
		return true
	})
	isNode := map[aoc.Pt]bool{}
	for _, j := range junctions {
		isNode[j] = true
		gr.AddNode(j)
	}

	for _, j := range junctions {
		if j == end {
			continue
		}
	corridor:
		for _, d := range aoc.Directions {
			at := aoc.Path{Pt: j, Dir: d}
			for steps := 1; ; steps++ {
				if !canStep(g.At(at.Pt), at.Dir) {
					continue corridor
				}
				next, ok := g.Move(at)
				if !ok || g.At(next.Pt) == '#' {
					continue corridor
				}
				if isNode[next.Pt] {
					if next.Pt != start && steps > gr.Edges[j][next.Pt] {
						gr.AddArc(j, next.Pt, steps)
					}
					continue corridor
				}
				// Corridors have exactly one way on that isn't back.
				found := false
				for _, nd := range aoc.Directions {
					if nd == next.Dir.Opposite() {
						continue
					}
					if v, ok := g.AtOk(next.Pt.Add(nd.Delta())); ok && v != '#' {
						at, found = aoc.Path{Pt: next.Pt, Dir: nd}, true
						break
					}
				}
				if !found {
					continue corridor
				}
			}
		}
	}
	return gr
}

/*
want=94

#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#
*/
func (s solver) D23p1() any {
	g := s.Grid()
	start, end := trailEnds(g)
	gr := slopeGraph(g, start, end)
	s.Debugf("%d junctions", len(gr.Nodes))
	n, ok := gr.LongestPathDAG(start, end)
	if !ok {
		panic("no way down")
	}
	return n
}

// want=154
func (s solver) D23p2() any {
	g := s.Grid()
	start, end := trailEnds(g)
	gr := g.ToGraph(start, false, func(b byte) bool { return b == '#' })
	n, ok := gr.LongestPath(start, end)
	if !ok {
		panic("no way down")
	}
	return n
}
