package main

import (
	"slices"

	"github.com/advent/aoc"
)

// parseAlmanac returns the seed numbers and the seed-to-location pipeline.
func parseAlmanac(blocks []string) ([]int, aoc.Pipeline) {
	seeds := aoc.Fields(aoc.TrimPrefix(blocks[0], "seeds:"))
	var p aoc.Pipeline
	for _, b := range blocks[1:] {
		p = append(p, aoc.ParseRangeMap(b))
	}
	return seeds, p
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	seeds, p := parseAlmanac(s.Blocks())
	locs := make([]int, len(seeds))
	for i, seed := range seeds {
		locs[i] = p.Map(seed)
	}
	return slices.Min(locs)
}

// want=46
func (s solver) D5p2() any {
	seeds, p := parseAlmanac(s.Blocks())
	var ivs []aoc.Interval
	for i := 0; i+1 < len(seeds); i += 2 {
		ivs = append(ivs, aoc.Interval{Start: seeds[i], End: seeds[i] + seeds[i+1]})
	}
	locs := p.MapIntervals(ivs)
	s.Debugf("%d seed ranges map to %d location ranges", len(ivs), len(locs))
	return slices.MinFunc(locs, func(a, b aoc.Interval) int {
		return a.Start - b.Start
	}).Start
}
