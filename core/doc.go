// Package core provides a thread-safe, in-memory, generic Graph
// implementation for weighted undirected graphs with a minimal,
// composable API surface.
//
// The Graph G = (V,E) is deliberately simple:
//
//   - Generic vertex identifiers — any ordered, comparable type
//     (string, int, float, …) can be a vertex (constraint ID)
//   - Undirected, weighted edges with int64 costs
//   - At most one edge per vertex pair; re-adding overwrites the weight
//   - Optional self-loops (WithLoops)
//   - Constant-time edge operations via mirrored nested maps:
//     adj[u][v] = weight and adj[v][u] = weight
//   - One sync.RWMutex guarding all storage, so every method is safe
//     for concurrent use
//
// Why use core.Graph?
//
//   - Deterministic iteration — Vertices(), Edges(), Neighbors() and
//     NeighborIDs() all return ascending results, so every algorithm
//     built on top is reproducible run to run.
//   - Clone support — CloneEmpty (vertices+flags), Clone (deep copy),
//     Subgraph (deep copy induced by a vertex subset).
//   - Honest contracts — edges connect existing vertices only; breaking
//     that returns ErrVertexNotFound instead of silently inventing
//     endpoints.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (u == v); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                    // O(1), idempotent
//	HasVertex(v V) bool               // O(1)
//	RemoveVertex(v V)                 // O(deg(v)), removes incident edges
//
//	// Edge lifecycle
//	AddEdge(u, v V, weight int64) error // O(1), endpoints must exist
//	RemoveEdge(u, v V) error            // O(1)
//	HasEdge(u, v V) bool                // O(1), symmetric
//	EdgeWeight(u, v V) (int64, error)   // O(1)
//
//	// Query
//	Neighbors(v V) ([]Edge[V], error) // O(d·log d), (neighbor, weight) views
//	NeighborIDs(v V) ([]V, error)     // O(d·log d), unique, ascending
//	Vertices() []V                    // O(V·log V), ascending
//	Edges() []Edge[V]                 // O(E·log E), each edge once (From <= To)
//
//	// Counts
//	VertexCount() int                 // O(1)
//	EdgeCount() int                   // O(1), a loop counts once
//
//	// Maintenance
//	Clear()                           // O(1): reset storage, preserve flags
//
//	// Cloning
//	CloneEmpty() *Graph[V]            // O(V): vertices+flags only
//	Clone() *Graph[V]                 // O(V+E): full deep copy
//	Subgraph(vs []V) *Graph[V]        // O(K+E): induced deep copy
//
// Errors:
//
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
//	ErrLoopNotAllowed – self-loop when loops disabled
//
// The container is the substrate for the algorithm packages in this
// module (dfs, connectivity, dijkstra, articulation); those packages
// consume only the exported API above, never the internals.
package core
