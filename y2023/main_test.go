package main

import (
	"testing"

	"github.com/advent/aoc"
	"github.com/advent/aoc/aoctest"
)

func TestSamples(t *testing.T) {
	aoctest.CheckSamples(t, sources, &solver{})
}

func puzzle(input string) solver {
	return solver{aoc.NewPuzzle(input)}
}
