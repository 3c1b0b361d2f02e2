package aoc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func grid(s string) Grid[byte] {
	return ParseGrid(strings.Split(strings.TrimSpace(s), "\n"))
}

func TestRotate(t *testing.T) {
	g := grid(`
abc
def`)
	cw := g.RotateClockwise()
	if diff := cmp.Diff("da\neb\nfc\n", cw.String()); diff != "" {
		t.Errorf("RotateClockwise mismatch (-want +got):\n%s", diff)
	}
	ccw := g.RotateCounterClockwise()
	if diff := cmp.Diff("cf\nbe\nad\n", ccw.String()); diff != "" {
		t.Errorf("RotateCounterClockwise mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g, cw.RotateCounterClockwise()); diff != "" {
		t.Errorf("rotate round trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("ad\nbe\ncf\n", g.Transpose().String()); diff != "" {
		t.Errorf("Transpose mismatch (-want +got):\n%s", diff)
	}
	four := g
	for range 4 {
		four = four.RotateClockwise()
	}
	if four.Hash() != g.Hash() {
		t.Error("four clockwise turns changed the grid hash")
	}
	if g.Hash() == cw.Hash() {
		t.Error("rotated grid has the same hash")
	}
}

func TestFloodFill(t *testing.T) {
	g := grid(`
.....
.###.
.#.#.
.###.
.....`)
	if got := FloodFill(g, Pt{0, 0}, '.', 'x'); got != 16 {
		t.Errorf("FloodFill outside = %d, want 16", got)
	}
	if got := Count(g, byte('.')); got != 1 {
		t.Errorf("Count('.') = %d, want 1", got)
	}
	if got := FloodFill(g, Pt{2, 2}, '.', 'o'); got != 1 {
		t.Errorf("FloodFill inside = %d, want 1", got)
	}
	if got := FloodFill(g, Pt{1, 1}, '.', 'o'); got != 0 {
		t.Errorf("FloodFill on wall = %d, want 0", got)
	}
	if got := FloodFill(g, Pt{-1, 0}, '.', 'o'); got != 0 {
		t.Errorf("FloodFill outside grid = %d, want 0", got)
	}
}

func TestFind(t *testing.T) {
	g := grid(`
..#
S..`)
	if p, ok := Find(g, 'S'); !ok || p != (Pt{0, 1}) {
		t.Errorf("Find(S) = %v, %v; want {0 1}, true", p, ok)
	}
	if _, ok := Find(g, 'Z'); ok {
		t.Error("Find(Z) found something")
	}
}

func TestEdgePaths(t *testing.T) {
	g := MakeGrid[int](3, 2)
	paths := g.EdgePaths()
	if len(paths) != 2*3+2*2 {
		t.Fatalf("got %d edge paths, want 10", len(paths))
	}
	for _, p := range paths {
		if _, ok := g.Move(p); !ok {
			t.Errorf("edge path %v points out of the grid", p)
		}
	}
}

func TestToGraph(t *testing.T) {
	tests := []struct {
		name       string
		grid       string
		start, end Pt
		longest    int
	}{
		{
			name:  "corridor",
			grid:  ".....",
			start: Pt{0, 0}, end: Pt{4, 0},
			longest: 4,
		},
		{
			name: "bend",
			grid: `
#.###
#...#
###.#`,
			start: Pt{1, 0}, end: Pt{3, 2},
			longest: 4,
		},
		{
			name: "equal loop",
			grid: `
#.###
#...#
#.#.#
#...#
###.#`,
			start: Pt{1, 0}, end: Pt{3, 4},
			longest: 6,
		},
		{
			// The loop's two sides are 8 and 4 long.
			name: "unequal loop",
			grid: `
#.#####
#.....#
#.###.#
#.....#
###.###`,
			start: Pt{1, 0}, end: Pt{3, 4},
			longest: 10,
		},
	}
	for _, tt := range tests {
		g := grid(tt.grid)
		gr := g.ToGraph(tt.start, false, func(b byte) bool { return b == '#' })
		got, ok := gr.LongestPath(tt.start, tt.end)
		if !ok || got != tt.longest {
			t.Errorf("%s: LongestPath = %v, %v; want %v, true", tt.name, got, ok, tt.longest)
		}
		if len(gr.Nodes) != 2 {
			t.Errorf("%s: collapsed graph has %d nodes, want 2: %v", tt.name, len(gr.Nodes), gr.Nodes)
		}
	}
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		if d.Turn(true).Turn(false) != d {
			t.Errorf("%v: right then left = %v", d, d.Turn(true).Turn(false))
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite = %v", d, d.Opposite().Opposite())
		}
		if got := d.Delta().Add(d.Opposite().Delta()); got != (Pt{}) {
			t.Errorf("%v: delta + opposite delta = %v", d, got)
		}
	}
	if Up.Turn(false) != Left {
		t.Errorf("Up.Turn(false) = %v, want Left", Up.Turn(false))
	}
}

func TestStandardizePt(t *testing.T) {
	size := Pt{11, 11}
	tests := []struct {
		p, want Pt
	}{
		{Pt{3, 4}, Pt{3, 4}},
		{Pt{11, 0}, Pt{0, 0}},
		{Pt{-1, -12}, Pt{10, 10}},
		{Pt{25, -22}, Pt{3, 0}},
	}
	for _, tt := range tests {
		if got := StandardizePt(tt.p, size); got != tt.want {
			t.Errorf("StandardizePt(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestMDist(t *testing.T) {
	if got := (Pt{1, 6}).MDist(Pt{5, 11}); got != 9 {
		t.Errorf("MDist = %d, want 9", got)
	}
	if got := (Pt{0, 0}).Toward(Pt{-3, 5}); got != (Pt{-1, 1}) {
		t.Errorf("Toward = %v, want {-1 1}", got)
	}
}
