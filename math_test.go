package aoc

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		pts      []Pt
		area     int
		bounded  int
		interior int
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			area:     25,
			bounded:  36,
			interior: 16,
		},
		{
			// Counter-clockwise works too.
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 0, Y: 2},
				{X: 2, Y: 2},
				{X: 2, Y: 0},
				{X: 0, Y: 0},
			},
			area:     4,
			bounded:  9,
			interior: 1,
		},
	}

	for _, tt := range tests {
		if got := PolygonArea(tt.pts); got != tt.area {
			t.Errorf("PolygonArea(%v) = %v, want %v", tt.pts, got, tt.area)
		}
		if got := PolygonBoundedPoints(tt.pts); got != tt.bounded {
			t.Errorf("PolygonBoundedPoints(%v) = %v, want %v", tt.pts, got, tt.bounded)
		}
		if got := PolygonInteriorPoints(tt.pts); got != tt.interior {
			t.Errorf("PolygonInteriorPoints(%v) = %v, want %v", tt.pts, got, tt.interior)
		}
	}
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		in       []int
		next     int
		previous int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
	}
	for _, tt := range tests {
		if got := Extrapolate(tt.in, true); got != tt.next {
			t.Errorf("Extrapolate(%v, true) = %v, want %v", tt.in, got, tt.next)
		}
		if got := Extrapolate(tt.in, false); got != tt.previous {
			t.Errorf("Extrapolate(%v, false) = %v, want %v", tt.in, got, tt.previous)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{7}, 7},
		{[]int{2, 3}, 6},
		{[]int{4, 6, 10}, 60},
		{[]int{20777, 18673, 13939, 17621, 19199, 12361}, 17972669116327},
	}
	for _, tt := range tests {
		if got := LCM(tt.in...); got != tt.want {
			t.Errorf("LCM(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSolveQuad(t *testing.T) {
	// x^2 - 7x + 9: race of 7ms with record 9.
	hi, lo := SolveQuad(1, -7, 9)
	if lo < 1.69 || lo > 1.7 || hi < 5.3 || hi > 5.31 {
		t.Errorf("SolveQuad(1, -7, 9) = %v, %v", hi, lo)
	}
}

func TestFields(t *testing.T) {
	got := Fields("p=19, 13, 30 @ -2,  1, -2")
	want := []int{19, 13, 30, -2, 1, -2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
	if got := Product(Fields("Time: 7 15 30")...); got != 3150 {
		t.Errorf("Product = %v, want 3150", got)
	}
}

func TestSolveLinear(t *testing.T) {
	r := func(v int64) *big.Rat { return big.NewRat(v, 1) }
	// x + y + z = 6, 2y + 5z = -4, 2x + 5y - z = 27
	a := [][]*big.Rat{
		{r(1), r(1), r(1)},
		{r(0), r(2), r(5)},
		{r(2), r(5), r(-1)},
	}
	b := []*big.Rat{r(6), r(-4), r(27)}
	x, ok := SolveLinear(a, b)
	if !ok {
		t.Fatal("SolveLinear reported a singular system")
	}
	for i, want := range []int64{5, 3, -2} {
		if x[i].Cmp(r(want)) != 0 {
			t.Errorf("x[%d] = %v, want %d", i, x[i], want)
		}
	}
	if a[0][0].Cmp(r(1)) != 0 {
		t.Error("SolveLinear modified its input")
	}

	singular := [][]*big.Rat{{r(1), r(2)}, {r(2), r(4)}}
	if _, ok := SolveLinear(singular, []*big.Rat{r(1), r(2)}); ok {
		t.Error("SolveLinear solved a singular system")
	}
}
