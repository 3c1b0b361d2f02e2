package main

import (
	"strings"

	"github.com/advent/aoc"
)

type cubes struct {
	r, g, b int
}

func (c cubes) max(o cubes) cubes {
	return cubes{max(c.r, o.r), max(c.g, o.g), max(c.b, o.b)}
}

func (c cubes) within(limit cubes) bool {
	return c.r <= limit.r && c.g <= limit.g && c.b <= limit.b
}

type game struct {
	id    int
	draws []cubes
}

// parseGame parses "Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red".
func parseGame(line string) game {
	head, rest, ok := strings.Cut(line, ": ")
	if !ok {
		panic("bad game: " + line)
	}
	g := game{id: aoc.Int(aoc.TrimPrefix(head, "Game "))}
	for _, d := range strings.Split(rest, "; ") {
		var c cubes
		for _, nc := range strings.Split(d, ", ") {
			n, color, _ := strings.Cut(strings.TrimSpace(nc), " ")
			switch color {
			case "red":
				c.r += aoc.Int(n)
			case "green":
				c.g += aoc.Int(n)
			case "blue":
				c.b += aoc.Int(n)
			default:
				panic("bad color: " + color)
			}
		}
		g.draws = append(g.draws, c)
	}
	return g
}

// minSet is the fewest cubes of each color that make every draw possible.
func (g game) minSet() cubes {
	var m cubes
	for _, d := range g.draws {
		m = m.max(d)
	}
	return m
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	bag := cubes{r: 12, g: 13, b: 14}
	sum := 0
	s.ForLines(func(line string) {
		if g := parseGame(line); g.minSet().within(bag) {
			sum += g.id
		}
	})
	return sum
}

// want=2286
func (s solver) D2p2() any {
	sum := 0
	s.ForLines(func(line string) {
		m := parseGame(line).minSet()
		sum += m.r * m.g * m.b
	})
	return sum
}
