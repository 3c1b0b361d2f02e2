package main

import (
	"strings"

	"github.com/advent/aoc"
)

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return calibrationSum(s.Lines(), false)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return calibrationSum(s.Lines(), true)
}

var digitWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at line[i], if any. Spelled digits may
// overlap, so "eightwo" has an 8 at 0 and a 2 at 4.
func digitAt(line string, i int, spelled bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return aoc.Digit(rune(c)), true
	}
	if spelled {
		for d, w := range digitWords {
			if strings.HasPrefix(line[i:], w) {
				return d, true
			}
		}
	}
	return 0, false
}

func calibrationSum(lines []string, spelled bool) int {
	sum := 0
	for _, l := range lines {
		first, last := -1, -1
		for i := range len(l) {
			if d, ok := digitAt(l, i, spelled); ok {
				if first == -1 {
					first = d
				}
				last = d
			}
		}
		if first == -1 {
			continue
		}
		sum += first*10 + last
	}
	return sum
}
