// Package dijkstra provides a precise, deterministic implementation of
// Dijkstra's shortest-path algorithm on weighted graphs with non-negative
// edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to
//     every vertex of the graph in O(V² + E) time, where V = |vertices| and
//     E = |edges|.
//   - Each round settles the next-closest vertex, found by a linear scan of
//     the vertex set rather than a priority queue. The scan order is the
//     graph's ascending vertex order, which makes every run over the same
//     graph bit-for-bit reproducible.
//   - Distances are reported for the whole vertex set: vertices the source
//     cannot reach carry the Infinity sentinel in the returned map.
//
// When to use:
//
//   - In any scenario where you need guaranteed shortest paths on a static
//     weighted graph of modest size.
//   - As a reference oracle when validating faster heap-based or heuristic
//     searches: the settle order here is fully specified, ties included.
//   - As a building block for routing, cost propagation, or reachability
//     pricing over *core.Graph values.
//
// Key behaviors:
//
//   - The extraction scan compares with ≤ against the running minimum, so
//     among vertices tied for closest, the last one in ascending order is
//     settled first.
//   - The main loop always runs exactly VertexCount rounds; unreachable
//     vertices are settled too, relaxing nothing.
//   - Relaxation saturates at Infinity: the sentinel never flows through
//     addition, so unreachable vertices cannot leak bogus finite distances.
//   - Zero-weight edges are legal and propagate distance unchanged.
//   - The empty graph yields an empty distance map and no error, whatever
//     source is passed.
//
// Performance and complexity:
//
//   - Time:  O(V² + E)
//   - Each of the V rounds performs one O(V) scan for the minimum.
//   - Each edge is examined at most twice across all relaxations.
//   - Space: O(V)
//   - One distance map and one visited map over the vertex set.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Dijkstra.
//   - ErrSourceNotFound:
//     Returned if the graph is non-empty and the specified source vertex
//     does not exist in it.
//
// API reference:
//
//	func Dijkstra[V core.ID](
//	    g *core.Graph[V],
//	    source V,
//	) (dist map[V]int64, err error)
//
//	  - g:      pointer to a core.Graph holding non-negative edge weights.
//	  - source: the starting vertex; must exist in g when g is non-empty.
//	  - dist:   map[v] = minimal distance from source to v, or Infinity if
//	            unreachable. dist[source] == 0. Empty for the empty graph.
//	  - err:    one of the sentinel errors above, or nil on success.
//
// Thread safety:
//
//   - Dijkstra only reads g, and core.Graph serializes concurrent access, so
//     concurrent queries over the same graph are safe. A concurrent writer
//     may still interleave between reads; hold the graph steady for the
//     duration of a query if exact snapshots matter.
//
// See also:
//
//   - core.Graph: graph construction, vertex/edge mutation, deep copies.
//   - connectivity.IsConnected: a cheaper query when only reachability, not
//     cost, is in question.
package dijkstra
