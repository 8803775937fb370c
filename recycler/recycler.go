// Package recycler implements the randomness recycler: a perfect sampler
// for the hard-core Gibbs model, P(I) ∝ λ^|I| over independent sets I of a
// graph G, built via a partial-rejection / coupling-from-the-past style
// construction rather than running a Markov chain to equilibrium.
//
// # Algorithm
//
// The sampler realises a space-time Poisson point process on V(G) x [0,λ]
// by progressively introducing candidate points indexed by a real-valued
// label and repairing conflicts locally instead of restarting globally:
//
//  1. Extending (while the dent queue D is empty): draw a waiting time
//     Δ ~ Exp(graph.Size()), advance the current label λ_now by Δ. If λ_now
//     now exceeds the target, the construction is finished. Otherwise draw a
//     uniformly random vertex and try to add it at label λ_now.
//  2. Draining (while D is non-empty): pop a dent (ℓ, p) — meaning "the
//     activity around p was reduced to ℓ and must be repopulated" — draw a
//     waiting time Δ ~ Exp(graph.Degree(p)) and set ℓ' = ℓ + Δ. If ℓ' exceeds
//     λ_now, the dent is fully lifted and discarded. Otherwise push (ℓ', p)
//     back, draw a uniformly random point q in p's closed neighbourhood, and
//     — unless q falls in a region some other dent has reduced below ℓ' —
//     try to add q at label ℓ'.
//  3. try_add(p, ℓ): scan the retained set S in decreasing label order for a
//     member adjacent to p (closed adjacency — p conflicts with itself).
//     The first such member q is evicted, a dent (0, q) is pushed ("q must
//     be resampled from scratch") and a dent (ℓ_q, p) is pushed ("p's
//     activity is provisionally reduced to ℓ_q"); p is not inserted. If no
//     conflict is found, (ℓ, p) is inserted into S.
//
// When D is empty and λ_now exceeds the target, S's vertices are the
// returned sample. At every moment D is empty, the joint law of S is
// exactly the hard-core Gibbs measure at the current λ_now — this is the
// recycler's central correctness invariant.
//
// The algorithm is sequential and synchronous: it has no suspension points
// and consumes randomness from a single caller-supplied graph.RandSource in
// a fixed order for a fixed seed. It is not guaranteed to terminate once
// lambdaTarget is pushed past the hard-core model's uniqueness threshold on
// G; the implementation does not special-case that regime.
package recycler

import (
	"fmt"

	"github.com/dragonslayerintraining/hard-spheres/graph"
	"github.com/dragonslayerintraining/hard-spheres/internal/pointset"
)

// LabeledPoint pairs a real label with a graph vertex. A label is the
// arrival time, along the region's Poisson process, at which the point was
// (or would be) introduced.
type LabeledPoint[V comparable] struct {
	Label  float64
	Vertex V
}

// RandomIndependentSet draws an exact sample from the hard-core Gibbs
// measure P(I) ∝ lambdaTarget^|I| over independent sets of graph, using rng
// as the sole source of randomness. It returns the vertices of the sampled
// independent set in no specified order.
//
// lambdaTarget must be non-negative; a strictly negative value returns
// ErrNegativeActivity before any randomness is consumed. lambdaTarget == 0
// always returns an empty, nil-error result.
//
// RandomIndependentSet consumes a finite amount of randomness whenever it
// returns, but is not guaranteed to return at all once lambdaTarget exceeds
// G's uniqueness threshold — callers wanting a bound must wrap the call
// with an external timeout (e.g. running it in a goroutine and selecting on
// a context.Context); the sampler itself has no cancellation points.
func RandomIndependentSet[V comparable](g graph.Graph[V], lambdaTarget float64, rng graph.RandSource) ([]V, error) {
	if lambdaTarget < 0 {
		return nil, fmt.Errorf("recycler.RandomIndependentSet: lambdaTarget=%g: %w", lambdaTarget, ErrNegativeActivity)
	}

	s := pointset.New[V]()
	var dents []LabeledPoint[V]
	currentLambda := 0.0

	// tryAdd examines s in decreasing label order for a closed-adjacency
	// conflict with p. On conflict it evicts the offending member and
	// pushes the two repair dents described in the package doc; otherwise
	// it inserts (lam, p).
	tryAdd := func(p V, lam float64) {
		var conflictLabel float64
		var conflictVertex V
		conflict := false
		s.Descend(func(label float64, q V) bool {
			if g.IsAdjacent(p, q) {
				conflictLabel, conflictVertex, conflict = label, q, true
				return false
			}
			return true
		})
		if conflict {
			s.Delete(conflictLabel, conflictVertex)
			dents = append(dents, LabeledPoint[V]{Label: 0, Vertex: conflictVertex})
			dents = append(dents, LabeledPoint[V]{Label: conflictLabel, Vertex: p})
			return
		}
		s.Insert(lam, p)
	}

	for {
		for len(dents) > 0 {
			d := dents[len(dents)-1]
			dents = dents[:len(dents)-1]

			lifted := d.Label + rng.ExpFloat64()/g.Degree(d.Vertex)
			if lifted > currentLambda {
				continue // dent fully lifted back up to the frontier; discard
			}
			dents = append(dents, LabeledPoint[V]{Label: lifted, Vertex: d.Vertex})

			q := g.RandomNeighbor(d.Vertex, rng)

			suppressed := false
			for _, other := range dents {
				if g.IsAdjacent(q, other.Vertex) && lifted > other.Label {
					suppressed = true
					break
				}
			}
			if !suppressed {
				tryAdd(q, lifted)
			}
		}

		currentLambda += rng.ExpFloat64() / g.Size()
		if currentLambda > lambdaTarget {
			break
		}

		p := g.RandomVertex(rng)
		tryAdd(p, currentLambda)
	}

	return s.Vertices(), nil
}
