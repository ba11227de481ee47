// Package articulation implements articulation point detection on
// undirected graphs by remove-and-test probing.
//
// Notes on implementation choices:
//
//   - Each candidate vertex is probed on a fresh deep copy: clone, remove,
//     re-test connectivity. The input graph is never touched.
//   - The probe is deliberately brute force, O(V · (V + E)). It follows the
//     cut-vertex definition literally, which keeps it trivially auditable
//     and makes it a handy oracle for validating low-link implementations.
package articulation

import (
	"github.com/HamPoole/31251-data-structures-algorithms/connectivity"
	"github.com/HamPoole/31251-data-structures-algorithms/core"
)

// Points returns the articulation points of g in ascending order: every
// vertex whose removal (with its incident edges) leaves a disconnected
// remainder.
//
// A removal that leaves zero or one vertices counts as connected, so the
// empty graph, K₁ and K₂ all report no articulation points. The result is
// an empty, non-nil slice when no vertex qualifies. g itself is never
// mutated; every probe runs on a scratch copy.
//
// Points applies the cut-vertex definition verbatim even when g is already
// disconnected — removal of almost any vertex then still leaves a
// disconnected remainder, so most vertices are reported. Gate with
// connectivity.IsConnected first if that reading is not what you want.
//
// Steps:
//  1. Validate: g != nil (ErrNilGraph).
//  2. For each vertex v in ascending order: clone g, remove v, and test the
//     remainder with connectivity.IsConnected.
//  3. Collect every v whose remainder came apart.
//
// Complexity: O(V · (V + E)) time, O(V + E) scratch memory per probe.
func Points[V core.ID](g *core.Graph[V]) ([]V, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Probe each vertex in ascending order on its own scratch copy.
	points := make([]V, 0)
	var v V
	for _, v = range g.Vertices() {
		scratch := g.Clone()
		scratch.RemoveVertex(v)

		// 3. A remainder that came apart marks v as a cut vertex.
		if !connectivity.IsConnected(scratch) {
			points = append(points, v)
		}
	}

	return points, nil
}
