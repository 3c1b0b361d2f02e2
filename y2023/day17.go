package main

import (
	"github.com/advent/aoc"
)

// crucible is a search state: where the crucible is and the direction of
// the straight run that brought it there.
type crucible struct {
	at  aoc.Pt
	dir aoc.Direction
}

func heatMap(lines []string) aoc.Grid[int] {
	g := make(aoc.Grid[int], len(lines))
	for y, l := range lines {
		g[y] = aoc.Digits(l)
	}
	return g
}

// minHeatLoss finds the cheapest route from the top-left to the
// bottom-right block when every straight run is between minRun and maxRun
// blocks long and each run turns left or right from the previous one.
func minHeatLoss(g aoc.Grid[int], minRun, maxRun int) int {
	size := g.Size()
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}
	starts := []crucible{{dir: aoc.Right}, {dir: aoc.Down}}
	next := func(c crucible, visit func(crucible, int)) {
		for _, right := range []bool{false, true} {
			d := c.dir.Turn(right)
			p, loss := c.at, 0
			for run := 1; run <= maxRun; run++ {
				p = p.Add(d.Delta())
				v, ok := g.AtOk(p)
				if !ok {
					break
				}
				loss += v
				if run >= minRun {
					visit(crucible{p, d}, loss)
				}
			}
		}
	}
	loss, ok := aoc.Dijkstra(starts, next, func(c crucible) bool { return c.at == end })
	if !ok {
		panic("no route to the factory")
	}
	return loss
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	return minHeatLoss(heatMap(s.Lines()), 1, 3)
}

// want=94
func (s solver) D17p2() any {
	return minHeatLoss(heatMap(s.Lines()), 4, 10)
}
