package main

import (
	"math/big"

	"github.com/advent/aoc"
)

type hailstone struct {
	pos, vel aoc.Pt3[int]
}

func parseHail(lines []string) []hailstone {
	hail := make([]hailstone, len(lines))
	for i, l := range lines {
		f := aoc.Fields(l)
		if len(f) != 6 {
			panic("bad hailstone: " + l)
		}
		hail[i] = hailstone{
			pos: aoc.Pt3[int]{X: f[0], Y: f[1], Z: f[2]},
			vel: aoc.Pt3[int]{X: f[3], Y: f[4], Z: f[5]},
		}
	}
	return hail
}

// crossXY returns where the paths of a and b cross in the xy plane, ignoring
// z. It reports false for parallel paths and for crossings in the past of
// either hailstone.
func crossXY(a, b hailstone) (x, y float64, ok bool) {
	det := a.vel.X*b.vel.Y - a.vel.Y*b.vel.X
	if det == 0 {
		return 0, 0, false
	}
	dx, dy := float64(b.pos.X-a.pos.X), float64(b.pos.Y-a.pos.Y)
	t := (dx*float64(b.vel.Y) - dy*float64(b.vel.X)) / float64(det)
	u := (dx*float64(a.vel.Y) - dy*float64(a.vel.X)) / float64(det)
	if t < 0 || u < 0 {
		return 0, 0, false
	}
	return float64(a.pos.X) + t*float64(a.vel.X), float64(a.pos.Y) + t*float64(a.vel.Y), true
}

func crossingsWithin(hail []hailstone, lo, hi float64) int {
	n := 0
	for i, a := range hail {
		for _, b := range hail[i+1:] {
			if x, y, ok := crossXY(a, b); ok && x >= lo && x <= hi && y >= lo && y <= hi {
				n++
			}
		}
	}
	return n
}

func rat(v int) *big.Rat {
	return new(big.Rat).SetInt64(int64(v))
}

func cross(a, b aoc.Pt3[int]) aoc.Pt3[int] {
	return aoc.Pt3[int]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// rockPairRows returns the three equations a rock (P, V) hitting both a and
// b must satisfy. Each hit means (P - p)×(V - v) = 0; subtracting the two
// cancels P×V and leaves P×(vb - va) + (pb - pa)×V = pb×vb - pa×va.
func rockPairRows(a, b hailstone) ([][]*big.Rat, []*big.Rat) {
	d := aoc.Pt3[int]{X: b.vel.X - a.vel.X, Y: b.vel.Y - a.vel.Y, Z: b.vel.Z - a.vel.Z}
	c := aoc.Pt3[int]{X: b.pos.X - a.pos.X, Y: b.pos.Y - a.pos.Y, Z: b.pos.Z - a.pos.Z}
	cb, ca := cross(b.pos, b.vel), cross(a.pos, a.vel)
	rows := [][]*big.Rat{
		{rat(0), rat(d.Z), rat(-d.Y), rat(0), rat(-c.Z), rat(c.Y)},
		{rat(-d.Z), rat(0), rat(d.X), rat(c.Z), rat(0), rat(-c.X)},
		{rat(d.Y), rat(-d.X), rat(0), rat(-c.Y), rat(c.X), rat(0)},
	}
	rhs := []*big.Rat{rat(cb.X - ca.X), rat(cb.Y - ca.Y), rat(cb.Z - ca.Z)}
	return rows, rhs
}

// throwRock finds the position and velocity of a rock that hits every
// hailstone, using the first three that give an independent system.
func throwRock(hail []hailstone) (pos, vel [3]*big.Rat, ok bool) {
	for i := 1; i < len(hail); i++ {
		for j := i + 1; j < len(hail); j++ {
			a1, b1 := rockPairRows(hail[0], hail[i])
			a2, b2 := rockPairRows(hail[0], hail[j])
			x, ok := aoc.SolveLinear(append(a1, a2...), append(b1, b2...))
			if !ok {
				continue
			}
			return [3]*big.Rat(x[:3]), [3]*big.Rat(x[3:]), true
		}
	}
	return pos, vel, false
}

/*
want=2

19, 13, 30 @ -2, 1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @ 1, -5, -3
*/
func (s solver) D24p1() any {
	lo, hi := 200000000000000.0, 400000000000000.0
	if s.SampleMode {
		lo, hi = 7, 27
	}
	return crossingsWithin(parseHail(s.Lines()), lo, hi)
}

// want=47
func (s solver) D24p2() any {
	pos, vel, ok := throwRock(parseHail(s.Lines()))
	if !ok {
		panic("no independent hailstones")
	}
	s.Debugf("rock %v @ %v", pos, vel)
	sum := new(big.Rat)
	for _, v := range pos {
		sum.Add(sum, v)
	}
	if !sum.IsInt() {
		panic("rock starts between integer coordinates")
	}
	return sum.Num().Int64()
}
