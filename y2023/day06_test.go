package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaysToWin(t *testing.T) {
	tests := []struct {
		time, record, want int
	}{
		{7, 9, 4},
		{15, 40, 8},
		{30, 200, 9}, // roots are exactly 10 and 20
		{71530, 940200, 71503},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, waysToWin(tt.time, tt.record), "time %d record %d", tt.time, tt.record)
	}
}
