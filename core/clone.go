// Package core: cloning and subgraph extraction.
//
// This file provides the deep-copy family: CloneEmpty (configuration and
// vertex set), Clone (full deep copy), and Subgraph (deep copy induced by
// a vertex subset). Copies never share storage with the source, so
// mutating a copy cannot affect the original.

package core

// cloneShell builds an empty graph carrying g's configuration.
// Callers must hold at least a read lock on g.
func (g *Graph[V]) cloneShell() *Graph[V] {
	return &Graph[V]{
		allowLoops: g.allowLoops,
		adj:        make(map[V]map[V]int64, len(g.adj)),
	}
}

// CloneEmpty returns a new Graph with identical configuration and
// vertex set, but no edges.
// Complexity: O(V)
func (g *Graph[V]) CloneEmpty() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneShell()
	for v := range g.adj {
		clone.adj[v] = make(map[V]int64)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices,
// edges, and weights.
// Complexity: O(V + E)
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneShell()
	for v, row := range g.adj {
		nrow := make(map[V]int64, len(row))
		for n, w := range row {
			nrow[n] = w
		}
		clone.adj[v] = nrow
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Subgraph returns the deep-copied subgraph induced by the given
// vertices: every listed vertex present in g, plus every edge of g with
// both endpoints listed. Absent vertices and duplicates in vs are
// ignored. The loop policy is inherited.
// Complexity: O(K + E) for K listed vertices.
func (g *Graph[V]) Subgraph(vs []V) *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sub := g.cloneShell()
	// 1) Vertex pass: admit listed vertices that exist in g.
	for _, v := range vs {
		if _, ok := g.adj[v]; !ok {
			continue
		}
		if _, ok := sub.adj[v]; !ok {
			sub.adj[v] = make(map[V]int64)
		}
	}
	// 2) Edge pass: carry over every edge with both endpoints admitted.
	//    The mirror entry lands when the loop reaches the opposite row,
	//    so each direction is written exactly once.
	for u := range sub.adj {
		for n, w := range g.adj[u] {
			if _, ok := sub.adj[n]; !ok {
				continue
			}
			sub.adj[u][n] = w
			if u <= n { // count each undirected edge once
				sub.edgeCount++
			}
		}
	}

	return sub
}
