// Package core: Graph method implementations
//
// This file provides thread-safe operations for vertex and edge
// management on the Graph type defined in types.go. The nested-map
// adjacency (adj[u][v] = weight, mirrored both ways) gives constant-time
// existence, insertion, and deletion; every enumeration is sorted so
// that results are reproducible run to run.

package core

import (
	"cmp"
	"slices"
)

// AddVertex inserts the vertex v into the Graph.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v)
}

// HasVertex reports whether the vertex v exists in the graph.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adj[v]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Removing an absent vertex is a no-op.
// Complexity: O(deg(v)).
func (g *Graph[V]) RemoveVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	row, exists := g.adj[v]
	if !exists {
		return
	}
	// Unhook the mirrored entries and account for every removed edge.
	for n := range row {
		g.edgeCount--
		if n != v {
			delete(g.adj[n], v)
		}
	}
	delete(g.adj, v)
}

// AddEdge connects the existing vertices u and v with an undirected edge
// of the given weight. Re-adding an existing pair overwrites the weight,
// so insertion is idempotent up to the last weight written.
// Returns ErrVertexNotFound if either endpoint is absent, or
// ErrLoopNotAllowed for u == v on a graph built without WithLoops.
// Complexity: O(1).
func (g *Graph[V]) AddEdge(u, v V, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Loop constraint
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	// 2) Both endpoints must already exist
	if _, ok := g.adj[u]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.adj[v]; !ok {
		return ErrVertexNotFound
	}
	// 3) Count only genuinely new connections; re-adding updates in place
	if _, ok := g.adj[u][v]; !ok {
		g.edgeCount++
	}
	// 4) Store the weight, mirrored for both endpoints (a loop stores once)
	g.adj[u][v] = weight
	g.adj[v][u] = weight

	return nil
}

// RemoveEdge deletes the edge u—v (and its mirror) from the graph.
// Returns ErrEdgeNotFound if the vertices are not adjacent.
// Complexity: O(1).
func (g *Graph[V]) RemoveEdge(u, v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether u and v are adjacent. Adjacency is symmetric:
// HasEdge(u, v) == HasEdge(v, u).
// Complexity: O(1).
func (g *Graph[V]) HasEdge(u, v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]

	return ok
}

// EdgeWeight returns the weight of the edge u—v.
// Returns ErrEdgeNotFound if the vertices are not adjacent.
// Complexity: O(1).
func (g *Graph[V]) EdgeWeight(u, v V) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Neighbors returns every edge incident to the vertex v as
// (From: v, To: neighbor, Weight) views, sorted by neighbor.
// A self-loop appears once. Returns ErrVertexNotFound if v is absent.
// Complexity: O(d log d), where d is the degree of v.
func (g *Graph[V]) Neighbors(v V) ([]Edge[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, exists := g.adj[v]
	if !exists {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge[V], 0, len(row))
	for n, w := range row {
		out = append(out, Edge[V]{From: v, To: n, Weight: w})
	}
	// Sort by the opposite endpoint to ensure reproducible ordering
	slices.SortFunc(out, func(a, b Edge[V]) int { return cmp.Compare(a.To, b.To) })

	return out, nil
}

// NeighborIDs returns the identifiers of all vertices adjacent to v in
// ascending order. Returns ErrVertexNotFound if v is absent.
// Complexity: O(d log d)
func (g *Graph[V]) NeighborIDs(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, exists := g.adj[v]
	if !exists {
		return nil, ErrVertexNotFound
	}
	ids := make([]V, 0, len(row))
	for n := range row {
		ids = append(ids, n)
	}
	slices.Sort(ids)

	return ids, nil
}

// Vertices returns all vertices in ascending order — the graph's native
// enumeration order.
// Complexity: O(V log V)
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()
	vs := make([]V, 0, len(g.adj))
	for v := range g.adj {
		vs = append(vs, v)
	}
	slices.Sort(vs)

	return vs
}

// Edges returns every distinct edge once, anchored at its smaller
// endpoint (From <= To), sorted by (From, To).
// Complexity: O(E log E)
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge[V], 0, g.edgeCount)
	for u, row := range g.adj {
		for v, w := range row {
			if u <= v { // emit each mirrored pair once; a loop satisfies u == v
				out = append(out, Edge[V]{From: u, To: v, Weight: w})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge[V]) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}

		return cmp.Compare(a.To, b.To)
	})

	return out
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the total number of distinct edges. O(1).
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Looped reports whether the graph permits self-loops.
func (g *Graph[V]) Looped() bool {
	return g.allowLoops
}

// Clear resets the graph to the empty state but preserves flags.
// Complexity: O(1)
func (g *Graph[V]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adj = make(map[V]map[V]int64)
	g.edgeCount = 0
}

// Internal helper methods:
////////////////////

// ensureVertex inserts v's adjacency row if missing.
// Callers must hold the write lock.
func (g *Graph[V]) ensureVertex(v V) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[V]int64)
	}
}
