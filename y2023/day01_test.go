package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitAt(t *testing.T) {
	line := "xtwone3four"
	var got []int
	for i := range len(line) {
		if d, ok := digitAt(line, i, true); ok {
			got = append(got, d)
		}
	}
	require.Equal(t, []int{2, 1, 3, 4}, got)

	_, ok := digitAt(line, 1, false)
	require.False(t, ok, "spelled digit matched with spelling off")
}

func TestCalibration(t *testing.T) {
	require.Equal(t, 83, puzzle("eightwothree\n").D1p2())
	require.Equal(t, 77, puzzle("treb7uchet\n").D1p1())
	require.Equal(t, 0, puzzle("nodigits\n").D1p1())
}
