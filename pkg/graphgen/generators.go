package graphgen

import (
	"github.com/deanfra/erebos-level-generator/pkg/genrng"
	"github.com/deanfra/erebos-level-generator/pkg/roomgraph"
)

// Linear returns a chain graph 0 -> 1 -> ... -> n-1.
func Linear(n int) roomgraph.InputGraph {
	g := newSimpleGraph(n)
	for i := 0; i < n-1; i++ {
		g.addEdge(i, i+1)
	}
	return g
}

// Complete returns a mesh graph with a directed edge i -> j for every
// pair i < j, the same upper-triangular structure a barbell graph's
// mesh clusters use.
func Complete(n int) roomgraph.InputGraph {
	g := newSimpleGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.addEdge(i, j)
		}
	}
	return g
}

// GNPRandom returns a directed Erdos-Renyi graph on n nodes: every
// ordered pair (u, v) with u != v gets an edge independently with
// probability p.
func GNPRandom(n int, p float64, rng *genrng.RNG) roomgraph.InputGraph {
	g := newSimpleGraph(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if rng.Float64() < p {
				g.addEdge(u, v)
			}
		}
	}
	return g
}
