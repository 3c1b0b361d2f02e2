package main

import (
	"strings"

	"github.com/advent/aoc"
)

type desertMap struct {
	turns string
	next  map[string][2]string
}

func parseDesertMap(blocks []string) desertMap {
	m := desertMap{turns: strings.TrimSpace(blocks[0]), next: map[string][2]string{}}
	for _, l := range strings.Split(blocks[1], "\n") {
		// AAA = (BBB, CCC)
		from, to, ok := strings.Cut(l, " = (")
		if !ok {
			panic("bad node: " + l)
		}
		left, right, _ := strings.Cut(strings.TrimSuffix(to, ")"), ", ")
		m.next[from] = [2]string{left, right}
	}
	return m
}

// steps walks from start until done reports true and returns the number of
// steps taken.
func (m desertMap) steps(start string, done func(string) bool) int {
	n := 0
	for cur := start; !done(cur); n++ {
		next, ok := m.next[cur]
		if !ok {
			panic("unknown node: " + cur)
		}
		if m.turns[n%len(m.turns)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
	}
	return n
}

/*
want=2
RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	m := parseDesertMap(s.Blocks())
	return m.steps("AAA", func(n string) bool { return n == "ZZZ" })
}

/*
want=6
LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	m := parseDesertMap(s.Blocks())
	var cycles []int
	for n := range m.next {
		if strings.HasSuffix(n, "A") {
			// Each ghost reaches its Z node after exactly one full cycle.
			cycles = append(cycles, m.steps(n, func(n string) bool { return strings.HasSuffix(n, "Z") }))
		}
	}
	s.Debugf("ghost cycles: %v", cycles)
	return aoc.LCM(cycles...)
}
