package aoc

import (
	"fmt"
	"maps"
	"math"
	"math/rand/v2"
	"slices"
)

// Graph is a weighted graph. Edges added with AddEdge are stored in both
// directions; AddArc stores only one.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// AddEdge adds an undirected edge between a and b.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

// AddArc adds a directed edge from a to b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}

// indexed numbers the nodes of g so searches can use slices instead of maps.
type indexed[K comparable] struct {
	ids   map[K]int
	nodes []K
	adj   [][]arc
}

type arc struct {
	to, dist int
}

func (g *Graph[K]) index() indexed[K] {
	ix := indexed[K]{ids: make(map[K]int, len(g.Nodes))}
	for k := range g.Nodes {
		ix.ids[k] = len(ix.nodes)
		ix.nodes = append(ix.nodes, k)
	}
	ix.adj = make([][]arc, len(ix.nodes))
	for k, es := range g.Edges {
		a := ix.ids[k]
		for b, d := range es {
			ix.adj[a] = append(ix.adj[a], arc{ix.ids[b], d})
		}
	}
	return ix
}

// LongestPath returns the length of the longest simple path from start to
// end. It explores every simple path, so g should be small; collapse it
// first.
func (g Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	if !g.Nodes[start] || !g.Nodes[end] {
		return 0, false
	}
	ix := g.index()
	visited := make([]bool, len(ix.nodes))
	var walk func(n int) (int, bool)
	walk = func(n int) (int, bool) {
		if n == ix.ids[end] {
			return 0, true
		}
		visited[n] = true
		defer func() {
			visited[n] = false
		}()
		max, found := 0, false
		for _, a := range ix.adj[n] {
			if visited[a.to] {
				continue
			}
			if got, ok := walk(a.to); ok && (!found || got+a.dist > max) {
				max, found = got+a.dist, true
			}
		}
		return max, found
	}
	return walk(ix.ids[start])
}

// TopoSort returns the nodes of a directed acyclic graph so that every arc
// points forward. It panics if the graph has a cycle.
func (g *Graph[K]) TopoSort() []K {
	indeg := make(map[K]int, len(g.Nodes))
	for k := range g.Nodes {
		indeg[k] += 0
		for to := range g.Edges[k] {
			indeg[to]++
		}
	}
	var q Queue[K]
	for k, d := range indeg {
		if d == 0 {
			q.Push(k)
		}
	}
	order := make([]K, 0, len(g.Nodes))
	q.While(func(k K) bool {
		order = append(order, k)
		for to := range g.Edges[k] {
			if indeg[to]--; indeg[to] == 0 {
				q.Push(to)
			}
		}
		return true
	})
	if len(order) != len(indeg) {
		panic("graph has a cycle")
	}
	return order
}

// LongestPathDAG returns the length of the longest path from start to end in
// a directed acyclic graph, relaxing arcs in topological order.
func (g *Graph[K]) LongestPathDAG(start, end K) (int, bool) {
	dist := map[K]int{start: 0}
	for _, k := range g.TopoSort() {
		d, ok := dist[k]
		if !ok {
			continue
		}
		for to, w := range g.Edges[k] {
			if cur, ok := dist[to]; !ok || d+w > cur {
				dist[to] = d + w
			}
		}
	}
	d, ok := dist[end]
	return d, ok
}

// Collapse collapses the graph by removing any nodes with only two edges and
// merging the two edges into one. Where that creates a parallel edge the
// longer one is kept.
func (g *Graph[K]) Collapse() {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 {
				continue
			}
			var ks [2]K
			var ds [2]int
			i := 0
			for k, v := range e {
				ks[i], ds[i] = k, v
				i++
			}
			if ks[0] == k1 || ks[1] == k1 {
				continue
			}
			trimmed = true
			g.RemoveNode(k1)
			if d := ds[0] + ds[1]; d > g.Edges[ks[0]][ks[1]] {
				g.AddEdge(ks[0], ks[1], d)
			}
		}
		if !trimmed {
			break
		}
	}
}

type Edge[T comparable] struct {
	A, B T
}

// AnyKey returns any key from the map.
// It panics if the map is empty.
func AnyKey[K comparable, V any](m map[K]V) K {
	for k := range m {
		return k
	}
	panic("bad")
}

// MinCut calculates the minimum cut of a graph using the Stoer–Wagner
// algorithm. It returns a list of edges that make up the cut.
func (g *Graph[T]) MinCut() []Edge[T] {
	var (
		g2 = g.Clone() // copy of graph to mutate

		start = AnyKey(g2.Nodes) // any node

		// groups maps each remaining node to the original nodes merged
		// into it.
		groups = map[T][]T{}

		minCut = math.MaxInt
		best   []T
	)
	for k := range g2.Nodes {
		groups[k] = []T{k}
	}
	for len(g2.Nodes) > 1 {
		s, t, w := g2.minCutPhase(start)
		if w < minCut {
			minCut = w
			best = slices.Clone(groups[t])
		}
		groups[s] = append(groups[s], groups[t]...)
		delete(groups, t)
		g2.merge(s, t)
	}

	side := make(map[T]bool, len(best))
	for _, v := range best {
		side[v] = true
	}
	var cuts []Edge[T]
	for _, v := range best {
		for e, w := range g.Edges[v] {
			if !side[e] {
				cuts = append(cuts, Edge[T]{v, e})
				minCut -= w
			}
		}
	}
	if minCut != 0 {
		panic(fmt.Sprintf("reconstructed cut is off by %d", minCut))
	}
	return cuts
}

// minCutPhase runs one phase of the min cut algorithm. It returns the last two
// nodes traversed and the weight of the cut.
//
// It is equivalent to running a max flow algorithm from start to any other node
// in the graph.
func (g *Graph[T]) minCutPhase(start T) (s, t T, wOut int) {
	pq := MaxQueue[T]()
	var pris = map[T]*PQI[T]{}
	for k := range g.Nodes {
		i := &PQI[T]{
			V: k,
			P: 0,
		}
		if k == start {
			i.P = math.MaxInt / 2
		}
		pris[k] = i
		pq.Push(i)
	}

	for pq.Len() > 0 {
		next := pq.Pop()

		for k, v := range g.Edges[next.V] {
			p := pris[k]
			if p.Index() != -1 {
				p.P += v
				pq.Update(p)
			}
		}
		s, t = t, next.V
		wOut = next.P
	}
	return
}

func (g *Graph[T]) merge(s, t T) {
	for k, tvk := range g.Edges[t] {
		g.RemoveEdge(t, k)
		if k == s {
			continue
		}
		g.AddEdge(s, k, g.Edges[s][k]+tvk)
	}
	delete(g.Nodes, t)
	delete(g.Edges, t)
}

// RandomCut runs one round of Karger's contraction algorithm: edges are
// contracted in random order until two super-nodes remain. It returns the
// edges crossing between them and the nodes on either side. Repeat until the
// cut has the expected size; each round finds a minimum cut with probability
// at least 2/n².
func (g *Graph[K]) RandomCut(r *rand.Rand) (cut []Edge[K], sides [2][]K) {
	ix := g.index()
	var edges []Edge[int]
	for a, arcs := range ix.adj {
		for _, e := range arcs {
			if a < e.to {
				edges = append(edges, Edge[int]{a, e.to})
			}
		}
	}
	r.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	parent := make([]int, len(ix.nodes))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	remaining := len(ix.nodes)
	for _, e := range edges {
		if remaining <= 2 {
			break
		}
		if a, b := find(e.A), find(e.B); a != b {
			parent[b] = a
			remaining--
		}
	}

	root := find(0)
	for i, n := range ix.nodes {
		if find(i) == root {
			sides[0] = append(sides[0], n)
		} else {
			sides[1] = append(sides[1], n)
		}
	}
	for _, e := range edges {
		if find(e.A) != find(e.B) {
			cut = append(cut, Edge[K]{ix.nodes[e.A], ix.nodes[e.B]})
		}
	}
	return cut, sides
}

// Dijkstra returns the lowest total cost of reaching a state for which done
// returns true, starting from any of starts. next calls visit for each state
// reachable in one move together with the move's cost, which must not be
// negative.
func Dijkstra[S comparable](starts []S, next func(s S, visit func(S, int)), done func(S) bool) (int, bool) {
	q := MinQueue[S]()
	dist := make(map[S]int)
	for _, s := range starts {
		dist[s] = 0
		q.PushValue(s, 0)
	}
	for q.Len() > 0 {
		it := q.Pop()
		if it.P > dist[it.V] {
			continue // stale
		}
		if done(it.V) {
			return it.P, true
		}
		next(it.V, func(s S, cost int) {
			d := it.P + cost
			if old, ok := dist[s]; ok && old <= d {
				return
			}
			dist[s] = d
			q.PushValue(s, d)
		})
	}
	return 0, false
}
