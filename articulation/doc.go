// Package articulation finds articulation points (cut vertices) of an
// undirected graph: vertices whose removal disconnects what remains.
//
// What:
//
//   - Points(g) — the vertices of g, in ascending order, whose removal
//     (together with their incident edges) leaves a disconnected remainder.
//
// Why:
//
// Articulation points are the single points of failure of a network: cut
// one and some pair of survivors loses every path between them. Knowing
// them guides redundancy planning, and their absence certifies that a
// topology is biconnected.
//
// How:
//
// The detector is remove-and-test: for each vertex it deep-copies the
// graph, removes the vertex, and asks connectivity.IsConnected whether the
// remainder still holds together. This is the definition executed
// literally — quadratic-ish, deterministic, and easy to trust as an oracle
// when validating cleverer low-link detectors.
//
// Boundary semantics:
//
//   - Removing a vertex that leaves zero or one vertices counts as a
//     connected remainder, so the empty graph, K₁ and K₂ report no
//     articulation points.
//   - On input that is already disconnected the literal definition
//     degenerates (almost every vertex qualifies); gate with
//     connectivity.IsConnected when that matters.
//   - The input graph is never mutated.
//
// Complexity:
//
//   - Time:  O(V · (V + E)) — one clone plus one connectivity probe per vertex.
//   - Space: O(V + E) scratch per probe.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: returned if you pass a nil *core.Graph to Points.
//
// See also:
//
//   - connectivity: the IsConnected probe this package is built on.
//   - core.Graph.Clone / RemoveVertex: the scratch-copy machinery.
package articulation
