// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// Vertices are settled in order of increasing distance and their incident
// edges relaxed accordingly.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Each of the V rounds extracts one vertex via a linear scan of the
//     vertex set: V scans of O(V).
//   - Each edge is relaxed at most twice (once per endpoint): O(E) total.
//   - Space: O(V) for the distance and visited maps.
//
// Notes on implementation choices:
//
//   - Extraction is a linear scan rather than a heap: the quadratic bound is
//     acceptable for the graph sizes this package targets, and the scan keeps
//     extraction order fully deterministic.
//   - The scan compares with ≤ against the running minimum, so among tied
//     vertices the last one in ascending order is settled first.
//   - The loop always runs exactly VertexCount rounds. A round in which every
//     remaining vertex sits at Infinity still settles one of them; the
//     saturating guard in relax keeps an Infinity distance from spreading.
//   - Weights are assumed non-negative; no pre-scan rejects negatives.
package dijkstra

import (
	"fmt"

	"github.com/HamPoole/31251-data-structures-algorithms/core"
)

// Dijkstra computes shortest distances from source to every vertex of the
// weighted graph g.
//
// Returns:
//
//   - dist: map from every vertex to its minimum distance from source
//     (Infinity if unreachable; the source itself maps to 0). An empty
//     graph yields an empty map.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source when g is non-empty (ErrSourceNotFound).
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
func Dijkstra[V core.ID](g *core.Graph[V], source V) (map[V]int64, error) {
	// 1) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) An empty graph has no distances to report; source is irrelevant.
	if g.VertexCount() == 0 {
		return map[V]int64{}, nil
	}

	// 3) Validate source exists in the graph.
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	// 4) Prepare the runner state: distances, visited set, scan order.
	order := g.Vertices()
	r := &runner[V]{
		g:       g,
		order:   order,
		dist:    make(map[V]int64, len(order)),
		visited: make(map[V]bool, len(order)),
	}

	// 5) Initialize distances and run the main loop.
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V core.ID] struct {
	g       *core.Graph[V] // the input graph; read-only within Dijkstra
	order   []V            // vertices in ascending order; fixed scan order
	dist    map[V]int64    // vertex → current best distance from source
	visited map[V]bool     // vertex → distance finalized
}

// init sets every tentative distance to Infinity and the source to zero.
func (r *runner[V]) init(source V) {
	for _, v := range r.order {
		r.dist[v] = Infinity
	}
	r.dist[source] = 0
}

// process is the core loop. Each round settles exactly one vertex: the
// unvisited vertex with the smallest tentative distance, then relaxes its
// incident edges. The loop runs once per vertex, so every vertex is settled
// even when unreachable.
func (r *runner[V]) process() error {
	rounds := len(r.order)
	for i := 0; i < rounds; i++ {
		// 1) Extract the closest unvisited vertex by linear scan.
		u := r.nextClosest()

		// 2) Mark u as settled. Its distance is now final.
		r.visited[u] = true

		// 3) Relax all edges incident to u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// nextClosest scans the vertex set in ascending order and returns the
// unvisited vertex with the minimal tentative distance. Ties resolve to the
// last tied vertex in scan order (the ≤ comparison below). At least one
// unvisited vertex always remains while process is looping, so a candidate
// is always found.
func (r *runner[V]) nextClosest() V {
	var (
		candidate V
		best      = Infinity
	)
	for _, v := range r.order {
		if r.visited[v] {
			continue
		}
		if r.dist[v] <= best {
			candidate = v
			best = r.dist[v]
		}
	}

	return candidate
}

// relax examines each edge incident to u and improves the tentative
// distance of its unvisited neighbors where a shorter path through u exists.
// Visited neighbors are skipped: their distances are already final.
//
// The guard on dist[u] keeps Infinity saturating: an unreachable u relaxes
// nothing, so Infinity + weight can never overflow into a bogus distance.
func (r *runner[V]) relax(u V) error {
	// 1) Unreachable vertices settle silently.
	if r.dist[u] == Infinity {
		return nil
	}

	// 2) Fetch the incident edges of u.
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %v: %w", u, err)
	}

	// 3) Attempt relaxation along each edge u—t for unvisited t.
	var (
		e       core.Edge[V]
		newDist int64
	)
	for _, e = range neighbors {
		if r.visited[e.To] {
			continue
		}
		newDist = r.dist[u] + e.Weight
		if newDist < r.dist[e.To] {
			r.dist[e.To] = newDist
		}
	}

	return nil
}
