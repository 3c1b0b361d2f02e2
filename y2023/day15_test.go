package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHolidayHash(t *testing.T) {
	require.Equal(t, 52, holidayHash("HASH"))
	require.Equal(t, 0, holidayHash("rn"))
	require.Equal(t, 30, holidayHash("rn=1"))
}

func TestLensReplaceKeepsOrder(t *testing.T) {
	// rn and cm both go to box 0; replacing rn keeps it first.
	require.Equal(t, 1*1*5+1*2*2, puzzle("rn=1,cm=2,rn=5\n").D15p2())
	require.Equal(t, 2, puzzle("rn=1,cm=2,rn-\n").D15p2())
}
