package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/advent/aoc"
)

func parseWiring(lines []string) *aoc.Graph[string] {
	var g aoc.Graph[string]
	for _, l := range lines {
		from, to, ok := strings.Cut(l, ": ")
		if !ok {
			panic("bad component: " + l)
		}
		for _, c := range strings.Fields(to) {
			g.AddEdge(from, c, 1)
		}
	}
	return &g
}

// maxContractions bounds the random search before falling back to the
// deterministic minimum cut.
const maxContractions = 500

// splitWiring cuts the three wires that split the components in two and
// returns the sizes of the two groups. It tries up to maxTries random
// contractions, then falls back to the minimum cut. tries is the number of
// random contractions run.
func splitWiring(g *aoc.Graph[string], r *rand.Rand, maxTries int) (a, b, tries int) {
	var cut []aoc.Edge[string]
	for tries < maxTries && len(cut) != 3 {
		tries++
		cut, _ = g.RandomCut(r)
	}
	if len(cut) != 3 {
		cut = g.MinCut()
	}
	if len(cut) != 3 {
		panic(fmt.Sprintf("minimum cut has %d wires, want 3", len(cut)))
	}
	rest := g.Clone()
	for _, e := range cut {
		rest.RemoveEdge(e.A, e.B)
	}
	a = len(rest.ReachableNodes(cut[0].A))
	b = len(rest.ReachableNodes(cut[0].B))
	if a+b != len(g.Nodes) {
		panic("cut does not split the components in two")
	}
	return a, b, tries
}

/*
want=54

jqt: rhn xhk nvd
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
*/
func (s solver) D25p1() any {
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	a, b, tries := splitWiring(parseWiring(s.Lines()), r, maxContractions)
	s.Debugf("3-cut after %d random contractions", tries)
	return a * b
}
