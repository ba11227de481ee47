// Package dfs implements depth-first traversal on a core.Graph — the
// reachability workhorse underneath the connectivity and articulation
// packages, and a useful exploration tool in its own right.
//
// What:
//
//   - DepthFirst: explores as far as possible along each branch before
//     backtracking, following undirected edges in ascending neighbor
//     order. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//
// Why:
//
//   - Answer "what can I reach from here?" deterministically
//   - Drive connectedness tests and component extraction
//   - Observe traversal progress through hooks without touching results
//
// Key Types:
//
//   - Option:  functional options for traversal behavior
//   - Options: holds Context, hooks, MaxDepth, FilterNeighbor
//   - Result:  collects Order (pre-order), Depth, Parent, Visited maps
//
// Complexity:
//
//   - Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil              graph pointer is nil
//   - ErrStartVertexNotFound   start vertex not in graph
//   - context.Canceled         walk canceled via context
//   - hook errors              propagated from OnVisit or OnExit, wrapped
//
// Functions:
//
//   - DepthFirst(g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error)
//     perform depth-first traversal from start
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithOnExit(),
//     WithMaxDepth(), WithFilterNeighbor()
package dfs
