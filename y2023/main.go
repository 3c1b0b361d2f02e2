// Command y2023 solves the Advent of Code 2023 puzzles.
//
// Each D{day}p{part} method carries its example in its doc comment: the
// expected answer on a want= line, followed by the example input. A part
// with only a want= line reuses the previous part's input.
package main

import (
	"embed"

	"github.com/advent/aoc"
)

func main() {
	aoc.Run(2023, sources, &solver{})
}

//go:embed *.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
