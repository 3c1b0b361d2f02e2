package aoctest

import (
	"testing"
	"testing/fstest"

	"github.com/advent/aoc"
)

const source = `package main

/*
want=3

1 2
*/
func (s solver) D1p1() any { return nil }

// want=2
func (s solver) D1p2() any { return nil }
`

type solver struct {
	*aoc.Puzzle
}

func (s solver) D1p1() any {
	return aoc.Sum(aoc.Fields(string(s.Input()))...)
}

func (s solver) D1p2() any {
	return aoc.Product(aoc.Fields(string(s.Input()))...)
}

func TestCheckSamples(t *testing.T) {
	CheckSamples(t, fstest.MapFS{"main.go": {Data: []byte(source)}}, &solver{})
}
