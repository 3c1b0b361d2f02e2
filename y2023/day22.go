package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/advent/aoc"
)

type brick struct {
	lo, hi aoc.Pt3[int]
}

func parseBricks(lines []string) []brick {
	bricks := make([]brick, len(lines))
	for i, l := range lines {
		a, b, ok := strings.Cut(l, "~")
		if !ok {
			panic("bad brick: " + l)
		}
		p, q := aoc.Fields(a), aoc.Fields(b)
		if len(p) != 3 || len(q) != 3 {
			panic("bad brick: " + l)
		}
		bricks[i] = brick{
			lo: aoc.Pt3[int]{X: min(p[0], q[0]), Y: min(p[1], q[1]), Z: min(p[2], q[2])},
			hi: aoc.Pt3[int]{X: max(p[0], q[0]), Y: max(p[1], q[1]), Z: max(p[2], q[2])},
		}
	}
	return bricks
}

// settledStack is the pile after every brick has fallen. supports[i] lists
// the bricks directly under brick i, which rests on the ground when the
// list is empty. Bricks are ordered bottom to top.
type settledStack struct {
	bricks   []brick
	supports [][]int
}

func settle(bricks []brick) settledStack {
	bricks = slices.Clone(bricks)
	slices.SortFunc(bricks, func(a, b brick) int { return cmp.Compare(a.lo.Z, b.lo.Z) })

	type top struct{ z, id int }
	heights := map[aoc.Pt]top{}
	st := settledStack{bricks: bricks, supports: make([][]int, len(bricks))}
	for i, b := range bricks {
		floor := 0
		var under []int
		for x := b.lo.X; x <= b.hi.X; x++ {
			for y := b.lo.Y; y <= b.hi.Y; y++ {
				t, ok := heights[aoc.Pt{X: x, Y: y}]
				switch {
				case !ok || t.z < floor:
				case t.z > floor:
					floor, under = t.z, []int{t.id}
				case !slices.Contains(under, t.id):
					under = append(under, t.id)
				}
			}
		}
		drop := b.lo.Z - floor - 1
		b.lo.Z -= drop
		b.hi.Z -= drop
		st.bricks[i] = b
		st.supports[i] = under
		for x := b.lo.X; x <= b.hi.X; x++ {
			for y := b.lo.Y; y <= b.hi.Y; y++ {
				heights[aoc.Pt{X: x, Y: y}] = top{b.hi.Z, i}
			}
		}
	}
	return st
}

// soleSupporters returns the bricks that are the only support of another.
func (st settledStack) soleSupporters() map[int]bool {
	sole := map[int]bool{}
	for _, under := range st.supports {
		if len(under) == 1 {
			sole[under[0]] = true
		}
	}
	return sole
}

// chainReaction returns how many other bricks fall if brick i is removed.
func (st settledStack) chainReaction(i int) int {
	falling := map[int]bool{i: true}
	for j := i + 1; j < len(st.bricks); j++ {
		under := st.supports[j]
		if len(under) > 0 && !slices.ContainsFunc(under, func(k int) bool { return !falling[k] }) {
			falling[j] = true
		}
	}
	return len(falling) - 1
}

/*
want=5

1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9
*/
func (s solver) D22p1() any {
	st := settle(parseBricks(s.Lines()))
	return len(st.bricks) - len(st.soleSupporters())
}

// want=7
func (s solver) D22p2() any {
	st := settle(parseBricks(s.Lines()))
	sum := 0
	for i := range st.bricks {
		sum += st.chainReaction(i)
	}
	return sum
}
