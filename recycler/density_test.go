package recycler_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/dragonslayerintraining/hard-spheres/finitegraph"
	"github.com/dragonslayerintraining/hard-spheres/recycler"
)

// estimateDensity runs numTrials independent samples of RandomIndependentSet
// and returns the sample mean of |I|, via gonum's stat.Mean rather than a
// hand-rolled accumulator — the same statistics library the reference
// pack's own distribution types (gonum/dist.Exponential.Fit) lean on for
// sufficient-statistic summaries.
func estimateDensity(g *finitegraph.FiniteGraph, activity float64, numTrials int, rng *rand.Rand) float64 {
	sizes := make([]float64, numTrials)
	for i := 0; i < numTrials; i++ {
		out, err := recycler.RandomIndependentSet[int](g, activity, rng)
		if err != nil {
			panic(err) // programmer error in the test fixture, not a runtime condition
		}
		sizes[i] = float64(len(out))
	}
	return stat.Mean(sizes, nil)
}

// TestDensity_GroundTruthAtLambdaOne checks the sampler against ground-truth
// closed-form expectations for eight small 4-vertex graphs at lambda=1,
// asserting the Monte Carlo estimate of E[|I|] is within tolerance of the
// exact value. The trial count is well below what a tight tolerance would
// need asymptotically; it's picked to keep `go test` runtime reasonable
// while still bounding the estimate tightly enough to catch a broken
// sampler.
func TestDensity_GroundTruthAtLambdaOne(t *testing.T) {
	const numTrials = 200_000
	const tolerance = 0.02

	cases := []struct {
		name  string
		edges []finitegraph.Edge
		truth float64
	}{
		{"empty", nil, 2.0},
		{"single-edge", []finitegraph.Edge{{0, 1}}, 5.0 / 3},
		{"triangle-plus-isolated", []finitegraph.Edge{{0, 1}, {0, 2}, {1, 2}}, 1.25},
		{"two-disjoint-edges", []finitegraph.Edge{{0, 1}, {2, 3}}, 4.0 / 3},
		{"path-p4", []finitegraph.Edge{{0, 1}, {1, 2}, {2, 3}}, 1.25},
		{"star-k13", []finitegraph.Edge{{0, 1}, {0, 2}, {0, 3}}, 13.0 / 9},
		{"cycle-c4", []finitegraph.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, 8.0 / 7},
		{"complete-k4", []finitegraph.Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, 0.80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := finitegraph.New(4, tc.edges)
			assert.NoError(t, err)

			rng := rand.New(rand.NewSource(42))
			est := estimateDensity(g, 1.0, numTrials, rng)
			assert.InDelta(t, tc.truth, est, tolerance,
				"estimate=%.4f truth=%.4f", est, tc.truth)
		})
	}
}

// TestDensity_CycleC4AtLambdaTwo extends the ground-truth check to a second
// activity level on the 4-cycle: lambda=2, closed-form truth 24/17.
func TestDensity_CycleC4AtLambdaTwo(t *testing.T) {
	g, err := finitegraph.New(4, []finitegraph.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	assert.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	est := estimateDensity(g, 2.0, 10_000, rng)
	assert.InDelta(t, 24.0/17, est, 0.05)
}

// TestDensity_SumMatchesMeanTimesCount cross-checks gonum's stat.Mean against
// floats.Sum/n directly, so a regression in how the two helpers are wired
// together shows up here rather than only in the tolerance-banded tests
// above.
func TestDensity_SumMatchesMeanTimesCount(t *testing.T) {
	g, err := finitegraph.New(4, []finitegraph.Edge{{0, 1}})
	assert.NoError(t, err)

	rng := rand.New(rand.NewSource(9))
	const numTrials = 5_000
	sizes := make([]float64, numTrials)
	for i := 0; i < numTrials; i++ {
		out, err := recycler.RandomIndependentSet[int](g, 1.0, rng)
		assert.NoError(t, err)
		sizes[i] = float64(len(out))
	}

	mean := stat.Mean(sizes, nil)
	sum := floats.Sum(sizes)
	assert.InDelta(t, sum/float64(numTrials), mean, 1e-12)
}
