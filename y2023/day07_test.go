package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCamelCardsTies(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"33322 10\n22233 1\n", 21},
		{"33333 1\n22223 10\n22233 100\n22234 1000\n22334 10000\n22345 100000\n23456 1000000\n", 1234567},
		{"A2222 1\nT2222 10\n92222 100\n", 123},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, puzzle(tt.input).D7p1(), tt.input)
	}
}

func TestHandKind(t *testing.T) {
	require.Equal(t, 6, handKind("JJJJJ", true))
	require.Equal(t, 5, handKind("KTJJT", true))
	require.Equal(t, 2, handKind("KTJJT", false))
	require.Equal(t, 4, handKind("2233J", true))
	require.Equal(t, 0, handKind("23456", true))
}
