package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOasis(t *testing.T) {
	require.Equal(t, 68, puzzle("10 13 16 21 30 45\n").D9p1())
	require.Equal(t, 5, puzzle("10 13 16 21 30 45\n").D9p2())
	require.Equal(t, -4, puzzle("-1 -2 -3\n").D9p1())
}
