package main

import (
	"strings"

	"github.com/advent/aoc"
)

// Ratings lie in [ratingStart, ratingEnd).
const (
	ratingStart = 1
	ratingEnd   = 4001
)

type partRule struct {
	cat    int // index into "xmas"; -1 for the fallback
	less   bool
	value  int
	target string
}

type workflows map[string][]partRule

func parseWorkflows(block string) workflows {
	w := workflows{}
	for _, l := range strings.Split(block, "\n") {
		name, rest, ok := strings.Cut(strings.TrimSuffix(l, "}"), "{")
		if !ok {
			panic("bad workflow: " + l)
		}
		for _, r := range strings.Split(rest, ",") {
			cond, target, ok := strings.Cut(r, ":")
			if !ok {
				w[name] = append(w[name], partRule{cat: -1, target: r})
				continue
			}
			cat := strings.IndexByte("xmas", cond[0])
			if cat < 0 || (cond[1] != '<' && cond[1] != '>') {
				panic("bad rule: " + r)
			}
			w[name] = append(w[name], partRule{
				cat:    cat,
				less:   cond[1] == '<',
				value:  aoc.Int(cond[2:]),
				target: target,
			})
		}
	}
	return w
}

func (w workflows) accepts(part [4]int) bool {
	name := "in"
	for name != "A" && name != "R" {
		rules, ok := w[name]
		if !ok {
			panic("unknown workflow: " + name)
		}
		for _, r := range rules {
			if r.cat < 0 ||
				(r.less && part[r.cat] < r.value) ||
				(!r.less && part[r.cat] > r.value) {
				name = r.target
				break
			}
		}
	}
	return name == "A"
}

// combinations counts the ratings within parts that workflow name
// eventually accepts.
func (w workflows) combinations(name string, parts [4]aoc.Interval) int {
	switch name {
	case "R":
		return 0
	case "A":
		n := 1
		for _, iv := range parts {
			n *= iv.Len()
		}
		return n
	}
	total := 0
	for _, r := range w[name] {
		if r.cat < 0 {
			return total + w.combinations(r.target, parts)
		}
		match := aoc.Interval{Start: r.value + 1, End: ratingEnd}
		rest := aoc.Interval{Start: ratingStart, End: r.value + 1}
		if r.less {
			match = aoc.Interval{Start: ratingStart, End: r.value}
			rest = aoc.Interval{Start: r.value, End: ratingEnd}
		}
		if m := parts[r.cat].Intersect(match); !m.Empty() {
			sub := parts
			sub[r.cat] = m
			total += w.combinations(r.target, sub)
		}
		parts[r.cat] = parts[r.cat].Intersect(rest)
		if parts[r.cat].Empty() {
			return total
		}
	}
	return total
}

/*
want=19114

px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}
*/
func (s solver) D19p1() any {
	blocks := s.Blocks()
	w := parseWorkflows(blocks[0])
	sum := 0
	for _, l := range strings.Split(blocks[1], "\n") {
		f := aoc.Fields(l)
		if len(f) != 4 {
			panic("bad part: " + l)
		}
		if part := [4]int(f); w.accepts(part) {
			sum += aoc.Sum(f...)
		}
	}
	return sum
}

// want=167409079868000
func (s solver) D19p2() any {
	w := parseWorkflows(s.Blocks()[0])
	all := aoc.Interval{Start: ratingStart, End: ratingEnd}
	return w.combinations("in", [4]aoc.Interval{all, all, all, all})
}
