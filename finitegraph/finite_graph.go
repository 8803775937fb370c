// Package finitegraph provides FiniteGraph, a labelled n-vertex
// adjacency-list implementation of graph.Graph[int]. It exists mainly to
// exercise the randomness recycler against closed-form ground truth (see
// recycler's density tests).
package finitegraph

import (
	"fmt"

	"github.com/dragonslayerintraining/hard-spheres/graph"
)

// Edge is an unordered pair of vertex indices, both in [0, n).
type Edge [2]int

// FiniteGraph is an undirected n-vertex graph stored as an adjacency list.
// Every vertex is its own first neighbour, encoding the closed-neighbourhood
// convention the recycler relies on throughout. FiniteGraph is immutable
// after construction and safe to share across concurrently running
// samplers, provided each uses an independent graph.RandSource.
type FiniteGraph struct {
	adj [][]int // adj[i][0] == i; remaining entries are i's graph neighbours
}

// New builds a FiniteGraph over n vertices (indices 0..n-1) with the given
// undirected edges. It fails fast: n <= 0 returns ErrEmptyVertexSet, and any
// edge endpoint outside [0, n) returns ErrVertexOutOfRange.
func New(n int, edges []Edge) (*FiniteGraph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("finitegraph.New: n=%d: %w", n, ErrEmptyVertexSet)
	}

	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		adj[i] = append(adj[i], i) // self-loop: closed neighbourhood includes i
	}

	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n {
			return nil, fmt.Errorf("finitegraph.New: edge endpoint %d: %w", u, ErrVertexOutOfRange)
		}
		if v < 0 || v >= n {
			return nil, fmt.Errorf("finitegraph.New: edge endpoint %d: %w", v, ErrVertexOutOfRange)
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	return &FiniteGraph{adj: adj}, nil
}

var _ graph.Graph[int] = (*FiniteGraph)(nil)

// Size returns n, the vertex count.
func (g *FiniteGraph) Size() float64 {
	return float64(len(g.adj))
}

// RandomVertex returns a uniform sample from [0, n).
func (g *FiniteGraph) RandomVertex(rng graph.RandSource) int {
	return uniformIndex(rng, len(g.adj))
}

// Degree returns 1 + deg(v): the size of v's closed neighbourhood.
func (g *FiniteGraph) Degree(v int) float64 {
	return float64(len(g.adj[v]))
}

// RandomNeighbor returns a uniform sample from v's closed neighbourhood,
// i.e. v union its graph neighbours.
func (g *FiniteGraph) RandomNeighbor(v int, rng graph.RandSource) int {
	nbrs := g.adj[v]
	return nbrs[uniformIndex(rng, len(nbrs))]
}

// IsAdjacent reports whether q lies in p's closed neighbourhood.
func (g *FiniteGraph) IsAdjacent(p, q int) bool {
	for _, w := range g.adj[p] {
		if w == q {
			return true
		}
	}
	return false
}

// uniformIndex draws a uniform index in [0, n) from rng's Float64, clamping
// to n-1 the vanishingly rare case where rng.Float64()*n rounds up to n.
func uniformIndex(rng graph.RandSource, n int) int {
	idx := int(rng.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
