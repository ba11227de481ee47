// Package connectivity answers structural reachability questions over
// *core.Graph values: is the graph empty, is it connected, and what are its
// connected components.
//
// What:
//
//   - IsEmpty(g) — true iff g holds no vertices.
//   - IsConnected(g) — true iff every vertex can reach every other vertex;
//     the empty graph and the single-vertex graph are connected by convention.
//   - Components(g) — partitions g into its connected components, returning
//     each one as an independent deep copy carrying all induced edges.
//
// Why:
//
// Many graph pipelines begin with a sanity gate: refuse disconnected input,
// or fan work out per component. These three queries cover that gate with a
// deterministic, allocation-light API. All of them are total — they never
// return an error, and a nil graph is treated exactly like an empty one, so
// callers can probe untrusted values without a guard clause.
//
// Determinism:
//
// Vertices are scanned in ascending order, so components are always emitted
// in ascending order of their smallest vertex, and repeated calls over the
// same graph produce identical slices. Mutating a returned component never
// affects the original graph, and vice versa.
//
// Complexity:
//
//   - IsEmpty: O(1)
//   - IsConnected: O(V + E) time, O(V) memory
//   - Components: O(V + E) time, O(V + E) memory for the copies
//
// See also: package dfs for the underlying traversal, and Graph.Subgraph in
// package core for the induced-copy semantics each component inherits.
package connectivity
