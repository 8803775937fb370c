// Package harddisk provides HardDiskGraph, the continuous hard-disk /
// Strauss point process graph on the unit torus [0,1)^2: two points are
// adjacent iff their toroidal distance is less than 2r, for disc radius r.
package harddisk

import (
	"fmt"
	"math"

	"github.com/dragonslayerintraining/hard-spheres/graph"
)

// Point is a vertex of HardDiskGraph: a location on the unit torus. Both
// fields are always kept in [0, 1) by construction and by RandomVertex /
// RandomNeighbor, so Point is directly comparable and safe to use as a map
// key.
type Point struct {
	X, Y float64
}

// HardDiskGraph is the hard-disk graph on the unit torus with disc radius r:
// two points are adjacent iff their toroidal distance is less than rng =
// 2r. HardDiskGraph is immutable after construction and safe to share
// across concurrently running samplers, provided each uses an independent
// graph.RandSource.
type HardDiskGraph struct {
	rng float64 // 2r, the adjacency threshold
}

// New builds a HardDiskGraph with the given disc radius. radius <= 0
// returns ErrNonPositiveRadius.
func New(radius float64) (*HardDiskGraph, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("harddisk.New: radius=%g: %w", radius, ErrNonPositiveRadius)
	}
	return &HardDiskGraph{rng: 2 * radius}, nil
}

var _ graph.Graph[Point] = (*HardDiskGraph)(nil)

// Size returns the measure of the unit torus, which is always 1.
func (g *HardDiskGraph) Size() float64 {
	return 1.0
}

// RandomVertex returns a uniform sample from [0,1)^2.
func (g *HardDiskGraph) RandomVertex(rng graph.RandSource) Point {
	return Point{X: rng.Float64(), Y: rng.Float64()}
}

// Degree returns pi*(2r)^2, the measure of the ball of radius 2r around any
// point (degree is the same everywhere on the homogeneous torus).
func (g *HardDiskGraph) Degree(Point) float64 {
	return math.Pi * g.rng * g.rng
}

// RandomNeighbor returns a uniform sample from the ball of radius 2r
// centred at p, using radial sampling s=sqrt(U1), angle theta=2*pi*U2 (see
// https://mathworld.wolfram.com/DiskPointPicking.html), with each resulting
// coordinate wrapped modulo 1 back onto the torus.
func (g *HardDiskGraph) RandomNeighbor(p Point, rng graph.RandSource) Point {
	s := math.Sqrt(rng.Float64())
	theta := rng.Float64() * 2 * math.Pi
	x := p.X + g.rng*s*math.Cos(theta)
	y := p.Y + g.rng*s*math.Sin(theta)
	return Point{X: wrap(x), Y: wrap(y)}
}

// IsAdjacent reports whether p and q are within 2r of each other under the
// toroidal metric (the minimum wrap-around distance per axis).
func (g *HardDiskGraph) IsAdjacent(p, q Point) bool {
	return toroidalDist(p, q) < g.rng
}

func toroidalDist(p, q Point) float64 {
	dx := math.Abs(p.X - q.X)
	dx = math.Min(dx, 1-dx)
	dy := math.Abs(p.Y - q.Y)
	dy = math.Min(dy, 1-dy)
	return math.Hypot(dx, dy)
}

// wrap folds x into [0, 1) modulo 1. Unlike a one-sided `for x > 1 { x -= 1 }`
// correction loop, math.Mod handles negative x correctly in one step.
func wrap(x float64) float64 {
	m := math.Mod(x, 1)
	if m < 0 {
		m += 1
		if m == 1 { // a tiny negative remainder plus 1 rounds up to exactly 1
			m = 0
		}
	}
	return m
}
