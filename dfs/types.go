// Package dfs defines types and options for depth-first traversal,
// including cancellation, pre-/post-order hooks, depth limiting,
// neighbor filtering, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/HamPoole/31251-data-structures-algorithms/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DepthFirst.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of a traversal.
// Use with DepthFirst(g, start, opts...).
//
// Options carry the graph's vertex type. Constructors taking a V-typed
// function (WithOnVisit, WithFilterNeighbor, ...) infer V from their
// argument; the scalar ones (WithContext, WithMaxDepth) are
// instantiated explicitly, e.g. dfs.WithMaxDepth[string](2).
type Option[V core.ID] func(*Options[V])

// Options holds configurable parameters for depth-first traversal.
// It controls hooks, limits, filtering, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[V core.ID] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the walk early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(v V) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order).
	// Returning an error aborts traversal with that error.
	OnExit func(v V) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before the
	// walk recurses into it. Return true to traverse, false to skip.
	FilterNeighbor func(v V) bool

	// SkippedNeighbors tracks how many neighbors were skipped due to
	// FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int
}

// DefaultOptions returns an Options value with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions[V core.ID]() Options[V] {
	return Options[V]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext[V core.ID](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a vertex is first discovered.
func WithOnVisit[V core.ID](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a vertex's descendants have been explored.
func WithOnExit[V core.ID](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth[V core.ID](limit int) Option[V] {
	return func(o *Options[V]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(v) == false, v is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor[V core.ID](fn func(v V) bool) Option[V] {
	return func(o *Options[V]) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
// It reports discovery order, depths, parent links, and visited flags,
// as well as diagnostics like SkippedNeighbors.
type Result[V core.ID] struct {
	// Order records vertices in the sequence they were discovered
	// (pre-order). On an aborted walk it holds the portion walked.
	Order []V

	// Depth maps each reached vertex to its distance (#edges) from the start.
	Depth map[V]int

	// Parent maps each vertex to the vertex from which it was first
	// discovered. The start vertex does not appear in this map.
	Parent map[V]V

	// Visited flags the vertices reached by the traversal.
	Visited map[V]bool

	// SkippedNeighbors reports how many neighbors were skipped due to
	// FilterNeighbor returning false.
	SkippedNeighbors int
}

// Reached reports whether v was reached by the traversal.
func (r *Result[V]) Reached(v V) bool {
	return r.Visited[v]
}
