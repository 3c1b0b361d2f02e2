package main

import (
	"testing"

	"github.com/advent/aoc"
	"github.com/stretchr/testify/require"
)

const almanac = `seeds: 79 14 55 13

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
`

func TestAlmanac(t *testing.T) {
	seeds, p := parseAlmanac(puzzle(almanac).Blocks())
	require.Equal(t, []int{79, 14, 55, 13}, seeds)
	require.Len(t, p, 7)
	require.Equal(t, "humidity-to-location", p[6].Name)
	require.Equal(t, 82, p.Map(79))
	require.Equal(t, 35, p.Map(13))
}

func TestLowestLocationByReverse(t *testing.T) {
	_, p := parseAlmanac(puzzle(almanac).Blocks())
	seeds := []aoc.Interval{{Start: 79, End: 93}, {Start: 55, End: 68}}
	require.Equal(t, 46, lowestLocationByReverse(seeds, p))
	require.Equal(t, 46, puzzle(almanac).D5p2())
}

// lowestLocationByReverse finds the answer to part two by walking location
// numbers upward and mapping each back to a seed. It is only practical on
// small inputs.
func lowestLocationByReverse(seedRanges []aoc.Interval, p aoc.Pipeline) int {
	for loc := 0; ; loc++ {
		seed := p.Reverse(loc)
		for _, r := range seedRanges {
			if r.Contains(seed) {
				return loc
			}
		}
	}
}
