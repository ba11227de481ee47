// Package connectivity provides emptiness, connectedness, and component
// queries over core.Graph, all total and deterministic.
package connectivity

import (
	"github.com/HamPoole/31251-data-structures-algorithms/core"
	"github.com/HamPoole/31251-data-structures-algorithms/dfs"
)

// IsEmpty reports whether g holds no vertices.
// A nil graph counts as empty.
//
// Complexity: O(1). Memory: O(1).
func IsEmpty[V core.ID](g *core.Graph[V]) bool {
	return g == nil || g.VertexCount() == 0
}

// IsConnected reports whether every vertex of g is reachable from every
// other vertex. The empty graph is vacuously connected, and so is a graph
// with a single vertex.
//
// Steps:
//  1. Empty (or nil) graph → connected by convention.
//  2. Walk depth-first from the smallest vertex.
//  3. Connected iff the walk discovered the entire vertex set.
//
// Complexity: O(V + E). Memory: O(V).
func IsConnected[V core.ID](g *core.Graph[V]) bool {
	// 1. The empty graph is vacuously connected.
	if IsEmpty(g) {
		return true
	}

	// 2. Seed a depth-first walk at the first vertex in ascending order.
	//    The seed is drawn from g itself, so the walk cannot fail.
	vertices := g.Vertices()
	res, err := dfs.DepthFirst(g, vertices[0])
	if err != nil {
		return false
	}

	// 3. Connected iff the walk covered every vertex.
	return len(res.Order) == len(vertices)
}

// Components partitions g into its connected components.
//
// Each component is a deep, induced copy of g: it contains exactly the
// component's vertices plus every edge of g with both endpoints inside,
// weights included. Components are emitted in ascending order of their
// smallest vertex; within a component, vertex enumeration follows the usual
// ascending order of core.Graph. A nil or empty graph yields an empty,
// non-nil slice; a connected graph yields a single component equal to a
// deep copy of g.
//
// Steps:
//  1. Empty (or nil) graph → no components.
//  2. Scan vertices in ascending order; every vertex not yet claimed seeds
//     a depth-first walk collecting the members of its component.
//  3. Materialize each member set with g.Subgraph, which deep-copies the
//     induced edges.
//
// Complexity: O(V + E) for the scan plus O(V + E) across the copies.
// Memory: O(V + E).
func Components[V core.ID](g *core.Graph[V]) []*core.Graph[V] {
	// 1. Nothing to partition.
	if IsEmpty(g) {
		return []*core.Graph[V]{}
	}

	var (
		vertices = g.Vertices()
		claimed  = make(map[V]bool, len(vertices))
		comps    = make([]*core.Graph[V], 0, 1)
	)

	// 2. Every unclaimed vertex, met in ascending order, seeds one component.
	var seed V
	for _, seed = range vertices {
		if claimed[seed] {
			continue
		}

		// Seeds are drawn from g itself, so the walk cannot fail.
		res, err := dfs.DepthFirst(g, seed)
		if err != nil {
			continue
		}
		for _, member := range res.Order {
			claimed[member] = true
		}

		// 3. Deep-copy the induced component.
		comps = append(comps, g.Subgraph(res.Order))
	}

	return comps
}
