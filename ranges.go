package aoc

import (
	"fmt"
	"strings"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start, End int
}

func (iv Interval) Len() int {
	return max(0, iv.End-iv.Start)
}

func (iv Interval) Empty() bool {
	return iv.End <= iv.Start
}

func (iv Interval) Contains(v int) bool {
	return iv.Start <= v && v < iv.End
}

// Intersect returns the overlap of iv and o, which may be empty.
func (iv Interval) Intersect(o Interval) Interval {
	return Interval{max(iv.Start, o.Start), min(iv.End, o.End)}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// RangeMapping sends [Src, Src+Len) to [Dst, Dst+Len).
type RangeMapping struct {
	Dst, Src, Len int
}

// ParseRangeMapping parses a "dst src len" line. It panics on anything else.
func ParseRangeMapping(line string) RangeMapping {
	f := strings.Fields(line)
	if len(f) != 3 {
		panic(fmt.Sprintf("bad range mapping %q", line))
	}
	return RangeMapping{Dst: Int(f[0]), Src: Int(f[1]), Len: Int(f[2])}
}

func (m RangeMapping) source() Interval {
	return Interval{m.Src, m.Src + m.Len}
}

func (m RangeMapping) dest() Interval {
	return Interval{m.Dst, m.Dst + m.Len}
}

// RangeMap is one stage of a pipeline: a set of disjoint mappings, with
// values outside every mapping passing through unchanged.
type RangeMap struct {
	Name     string
	Mappings []RangeMapping
}

// ParseRangeMap parses a block whose first line is a header such as
// "seed-to-soil map:" followed by one mapping per line.
func ParseRangeMap(block string) RangeMap {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	m := RangeMap{Name: strings.TrimSuffix(strings.TrimSpace(lines[0]), " map:")}
	for _, l := range lines[1:] {
		m.Mappings = append(m.Mappings, ParseRangeMapping(l))
	}
	return m
}

func (m RangeMap) Map(v int) int {
	for _, rm := range m.Mappings {
		if rm.source().Contains(v) {
			return v - rm.Src + rm.Dst
		}
	}
	return v
}

// Reverse maps v back through the first mapping whose destination range
// holds it, or returns v unchanged.
func (m RangeMap) Reverse(v int) int {
	for _, rm := range m.Mappings {
		if rm.dest().Contains(v) {
			return v - rm.Dst + rm.Src
		}
	}
	return v
}

// MapIntervals maps every interval through m, splitting at mapping
// boundaries. The total length of the result equals that of ivs.
func (m RangeMap) MapIntervals(ivs []Interval) []Interval {
	var out []Interval
	todo := NewQueue(ivs...)
	todo.While(func(iv Interval) bool {
		if iv.Empty() {
			return true
		}
		for _, rm := range m.Mappings {
			src := rm.source()
			in := iv.Intersect(src)
			if in.Empty() {
				continue
			}
			off := rm.Dst - rm.Src
			out = append(out, Interval{in.Start + off, in.End + off})
			todo.Push(
				Interval{iv.Start, in.Start},
				Interval{in.End, iv.End},
			)
			return true
		}
		out = append(out, iv)
		return true
	})
	return out
}

// Pipeline applies its maps in order.
type Pipeline []RangeMap

func (p Pipeline) Map(v int) int {
	for _, m := range p {
		v = m.Map(v)
	}
	return v
}

func (p Pipeline) Reverse(v int) int {
	for i := len(p) - 1; i >= 0; i-- {
		v = p[i].Reverse(v)
	}
	return v
}

func (p Pipeline) MapIntervals(ivs []Interval) []Interval {
	for _, m := range p {
		ivs = m.MapIntervals(ivs)
	}
	return ivs
}
