package aoc

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRangeMappingReverse(t *testing.T) {
	m := RangeMap{Mappings: []RangeMapping{ParseRangeMapping("1 0 2")}}
	tests := []struct {
		name string
		f    func(int) int
		in   int
		want int
	}{
		{"Map", m.Map, 1, 2},
		{"Map", m.Map, 2, 2}, // outside the source range
		{"Reverse", m.Reverse, 2, 1},
		{"Reverse", m.Reverse, 1, 0},
		{"Reverse", m.Reverse, 0, 0},
	}
	for _, tt := range tests {
		if got := tt.f(tt.in); got != tt.want {
			t.Errorf("%s(%d) = %d, want %d", tt.name, tt.in, got, tt.want)
		}
	}
	for v := range 2 {
		if got := m.Reverse(m.Map(v)); got != v {
			t.Errorf("Reverse(Map(%d)) = %d", v, got)
		}
	}

	m = RangeMap{Mappings: []RangeMapping{ParseRangeMapping("45 77 23")}}
	if got := m.Map(77); got != 45 {
		t.Errorf("Map(77) = %d, want 45", got)
	}
	if got := m.Reverse(45); got != 77 {
		t.Errorf("Reverse(45) = %d, want 77", got)
	}
}

func TestParseRangeMap(t *testing.T) {
	got := ParseRangeMap("seed-to-soil map:\n50 98 2\n52 50 48\n")
	want := RangeMap{
		Name: "seed-to-soil",
		Mappings: []RangeMapping{
			{Dst: 50, Src: 98, Len: 2},
			{Dst: 52, Src: 50, Len: 48},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseRangeMap mismatch (-want +got):\n%s", diff)
	}
}

func TestMapIntervals(t *testing.T) {
	m := ParseRangeMap("seed-to-soil map:\n50 98 2\n52 50 48")
	got := m.MapIntervals([]Interval{{40, 60}, {95, 105}})
	slices.SortFunc(got, func(a, b Interval) int { return a.Start - b.Start })
	want := []Interval{
		{40, 50},   // below every mapping
		{50, 52},   // 98..100 -> 50..52
		{52, 62},   // 50..60 -> 52..62
		{97, 100},  // 95..98 -> 97..100
		{100, 105}, // above every mapping
	}
	total := 0
	for _, iv := range got {
		total += iv.Len()
	}
	if total != 30 {
		t.Errorf("MapIntervals total length = %d, want 30", total)
	}
	if diff := cmp.Diff(joined(want), joined(got)); diff != "" {
		t.Errorf("MapIntervals mismatch (-want +got):\n%s", diff)
	}
}

// joined merges adjacent and overlapping intervals of a sorted list.
func joined(ivs []Interval) []Interval {
	var out []Interval
	for _, iv := range ivs {
		if n := len(out); n > 0 && out[n-1].End >= iv.Start {
			out[n-1].End = max(out[n-1].End, iv.End)
			continue
		}
		out = append(out, iv)
	}
	return out
}

func TestPipeline(t *testing.T) {
	p := Pipeline{
		ParseRangeMap("a-to-b map:\n50 98 2\n52 50 48"),
		ParseRangeMap("b-to-c map:\n0 15 37\n37 52 2\n39 0 15"),
	}
	// 79 -> 81 -> 81, 14 -> 14 -> 53, 55 -> 57 -> 57, 13 -> 13 -> 52
	for seed, want := range map[int]int{79: 81, 14: 53, 55: 57, 13: 52} {
		if got := p.Map(seed); got != want {
			t.Errorf("Map(%d) = %d, want %d", seed, got, want)
		}
		if got := p.Reverse(want); got != seed {
			t.Errorf("Reverse(%d) = %d, want %d", want, got, seed)
		}
	}
	out := p.MapIntervals([]Interval{{79, 93}})
	if len(out) != 1 || out[0] != (Interval{81, 95}) {
		t.Errorf("MapIntervals = %v, want [[81,95)]", out)
	}
}

func TestInterval(t *testing.T) {
	a := Interval{0, 10}
	if got := a.Intersect(Interval{5, 20}); got != (Interval{5, 10}) {
		t.Errorf("Intersect = %v, want [5,10)", got)
	}
	if got := a.Intersect(Interval{10, 20}); !got.Empty() || got.Len() != 0 {
		t.Errorf("Intersect = %v, want empty", got)
	}
	if a.Contains(10) || !a.Contains(0) {
		t.Error("Contains is not half-open")
	}
}
