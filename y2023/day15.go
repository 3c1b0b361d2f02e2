package main

import (
	"slices"
	"strings"

	"github.com/advent/aoc"
)

func holidayHash(s string) int {
	h := 0
	for i := range len(s) {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

func initSequence(input []byte) []string {
	return strings.Split(strings.TrimSpace(string(input)), ",")
}

/*
want=1320

rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7
*/
func (s solver) D15p1() any {
	sum := 0
	for _, step := range initSequence(s.Input()) {
		sum += holidayHash(step)
	}
	return sum
}

type lens struct {
	label string
	focal int
}

// want=145
func (s solver) D15p2() any {
	var boxes [256][]lens
	for _, step := range initSequence(s.Input()) {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			b := &boxes[holidayHash(label)]
			*b = slices.DeleteFunc(*b, func(l lens) bool { return l.label == label })
			continue
		}
		label, focal, ok := strings.Cut(step, "=")
		if !ok {
			panic("bad step: " + step)
		}
		b := &boxes[holidayHash(label)]
		l := lens{label, aoc.Int(focal)}
		if i := slices.IndexFunc(*b, func(l lens) bool { return l.label == label }); i >= 0 {
			(*b)[i] = l
		} else {
			*b = append(*b, l)
		}
	}
	power := 0
	for i, b := range boxes {
		for j, l := range b {
			power += (i + 1) * (j + 1) * l.focal
		}
	}
	return power
}
