package main

import (
	"github.com/advent/aoc"
)

// partNumber is a run of digits on one row of the schematic.
type partNumber struct {
	n      int
	at     aoc.Pt // leftmost digit
	digits int
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func schematicNumbers(g aoc.Grid[byte]) []partNumber {
	var nums []partNumber
	for y, row := range g {
		for x := 0; x < len(row); x++ {
			if !isDigit(row[x]) {
				continue
			}
			pn := partNumber{at: aoc.Pt{X: x, Y: y}}
			for ; x < len(row) && isDigit(row[x]); x++ {
				pn.n = pn.n*10 + aoc.Digit(rune(row[x]))
				pn.digits++
			}
			nums = append(nums, pn)
		}
	}
	return nums
}

// forAdjacent calls f once for every cell touching pn, diagonals included.
func (pn partNumber) forAdjacent(g aoc.Grid[byte], f func(aoc.Pt, byte)) {
	for y := pn.at.Y - 1; y <= pn.at.Y+1; y++ {
		for x := pn.at.X - 1; x <= pn.at.X+pn.digits; x++ {
			p := aoc.Pt{X: x, Y: y}
			if y == pn.at.Y && x >= pn.at.X && x < pn.at.X+pn.digits {
				continue
			}
			if v, ok := g.AtOk(p); ok {
				f(p, v)
			}
		}
	}
}

func isSymbol(b byte) bool {
	return b != '.' && !isDigit(b)
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	g := s.Grid()
	sum := 0
	for _, pn := range schematicNumbers(g) {
		touches := false
		pn.forAdjacent(g, func(_ aoc.Pt, v byte) {
			touches = touches || isSymbol(v)
		})
		if touches {
			sum += pn.n
		}
	}
	return sum
}

// want=467835
func (s solver) D3p2() any {
	g := s.Grid()
	gears := map[aoc.Pt][]int{}
	for _, pn := range schematicNumbers(g) {
		pn.forAdjacent(g, func(p aoc.Pt, v byte) {
			if v == '*' {
				gears[p] = append(gears[p], pn.n)
			}
		})
	}
	sum := 0
	for _, nums := range gears {
		if len(nums) == 2 {
			sum += nums[0] * nums[1]
		}
	}
	return sum
}
