// Package dfs implements depth-first traversal on core.Graph.
// It supports cancellation, pre- and post-order hooks, depth and
// neighbor limits, and diagnostics.
//
// Key features:
//   - DepthFirst(g, start, opts...): traverse everything reachable from start
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for traversal (V = vertices, E = edges), plus the
//     overhead of hooks and filters.
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit (wrapped).
package dfs

import (
	"fmt"

	"github.com/HamPoole/31251-data-structures-algorithms/core"
)

// walker encapsulates state during a traversal.
type walker[V core.ID] struct {
	graph *core.Graph[V] // underlying graph
	opts  Options[V]     // traversal options
	res   *Result[V]     // result collector
}

// DepthFirst performs a depth-first traversal of g starting at start,
// following undirected edges in ascending neighbor order. The returned
// Result carries the reached set plus discovery order, depths, and
// parent links. Returns an error only for precondition violations
// (nil graph, missing start), cancellation, or a failing hook.
func DepthFirst[V core.ID](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify the start vertex
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hints
	n := g.VertexCount()
	res := &Result[V]{
		Order:   make([]V, 0, n),
		Depth:   make(map[V]int, n),
		Parent:  make(map[V]V, n),
		Visited: make(map[V]bool, n),
	}

	w := &walker[V]{graph: g, opts: dopts, res: res}

	// 5. Walk the tree rooted at start
	err := w.walk(start, 0)

	// 6. Expose diagnostics, even for a walk that aborted early
	res.SkippedNeighbors = w.opts.SkippedNeighbors
	if err != nil {
		return res, err
	}

	return res, nil
}

// walk visits vertex v at the given depth, recursing into unvisited
// neighbors. It honors context cancellation, the depth limit, hooks,
// and filtering.
func (w *walker[V]) walk(v V, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited, record discovery order and depth
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	// 4. Fetch sorted neighbor views once
	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %v: %w", v, err)
	}

	// 5. Explore each neighbor
	var e core.Edge[V]
	var next V
	for _, e = range nbs {
		next = e.To

		// A self-loop never recurses
		if next == v {
			continue
		}

		// Neighbor filtering
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(next) {
			w.opts.SkippedNeighbors++
			continue
		}

		if w.res.Visited[next] {
			continue
		}

		// The depth limit gates descent; a vertex kept out by the limit
		// acquires no Parent entry.
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}

		w.res.Parent[next] = v
		if err = w.walk(next, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}

	return nil
}
