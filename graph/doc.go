// Package graph defines the abstract Graph capability consumed by the
// randomness recycler (package recycler).
//
// A Graph supplies five pure-or-random operations over an opaque, comparable
// vertex identity: the total measure of the vertex set, uniform sampling of
// a vertex, the measure of a vertex's closed neighbourhood ("degree"),
// uniform sampling within that closed neighbourhood, and a closed-adjacency
// test. "Closed" means every vertex counts as its own neighbour — a vertex is
// always adjacent to itself under IsAdjacent, and RandomNeighbor may return
// the vertex itself.
//
// Two concrete instantiations live in sibling packages: finitegraph.FiniteGraph
// (a labelled n-vertex adjacency-list graph) and harddisk.HardDiskGraph (discs
// of radius r on the unit torus). Both are immutable after construction, so a
// single Graph value may be shared across concurrently running samplers as
// long as each uses an independent RandSource.
package graph
