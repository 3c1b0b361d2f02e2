package main

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

const wiring = `jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr
`

func TestSplitWiring(t *testing.T) {
	g := parseWiring(puzzle(wiring).Lines())
	require.Len(t, g.Nodes, 15)

	a, b, tries := splitWiring(g, rand.New(rand.NewPCG(3, 4)), 10000)
	require.ElementsMatch(t, []int{6, 9}, []int{a, b})
	require.Positive(t, tries)

	// No random tries leaves it to the minimum cut.
	a, b, tries = splitWiring(g, rand.New(rand.NewPCG(3, 4)), 0)
	require.ElementsMatch(t, []int{6, 9}, []int{a, b})
	require.Zero(t, tries)
	require.Len(t, g.Nodes, 15)
}

func TestSplitWiringNoThreeCut(t *testing.T) {
	// A triangle's minimum cut has two wires.
	g := parseWiring([]string{"a: b c", "b: c"})
	require.Panics(t, func() { splitWiring(g, rand.New(rand.NewPCG(1, 1)), 10) })
}
