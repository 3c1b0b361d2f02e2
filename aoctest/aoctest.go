// Package aoctest checks solvers against the samples in their doc comments.
package aoctest

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/advent/aoc"
)

// CheckSamples runs every part of slvr that has a sample as a subtest and
// reports a mismatch as a failure.
func CheckSamples(t *testing.T, src fs.FS, slvr any) {
	t.Helper()
	for _, r := range aoc.SampleRuns(src, slvr) {
		t.Run(r.Name, func(t *testing.T) {
			if got := fmt.Sprint(r.Solve()); got != r.Want {
				t.Errorf("%s() = %v, want %v", r.Name, got, r.Want)
			}
		})
	}
}
