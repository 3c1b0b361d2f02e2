package main

import (
	"math"
	"strings"

	"github.com/advent/aoc"
)

// waysToWin counts the whole-millisecond button holds h with
// h*(t-h) > record, i.e. the integers strictly between the roots of
// h² - t·h + record = 0.
func waysToWin(t, record int) int {
	hi, lo := aoc.SolveQuad(1, -t, record)
	return int(math.Ceil(hi)) - int(math.Floor(lo)) - 1
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	lines := s.Lines()
	times := aoc.Fields(lines[0])
	records := aoc.Fields(lines[1])
	ways := make([]int, len(times))
	for i, t := range times {
		ways[i] = waysToWin(t, records[i])
	}
	return aoc.Product(ways...)
}

// want=71503
func (s solver) D6p2() any {
	lines := s.Lines()
	join := func(l string) int {
		_, nums, _ := strings.Cut(l, ":")
		return aoc.Int(strings.ReplaceAll(nums, " ", ""))
	}
	return waysToWin(join(lines[0]), join(lines[1]))
}
