// Package graphalgos is an in-memory toolkit for weighted undirected
// graphs: a generic, thread-safe container plus the classic connectivity
// and shortest-path algorithms built on top of it.
//
// 🚀 What is inside?
//
//	A small, focused library that brings together:
//		• core:         generic Graph container — vertices, weighted edges, clones, subgraphs
//		• dfs:          depth-first traversal with hooks, depth limits and cancellation
//		• connectivity: emptiness / connectedness tests and connected-component extraction
//		• dijkstra:     single-source shortest distances (classic linear-scan formulation)
//		• articulation: cut-vertex detection by remove-and-retest
//
// ✨ Why this shape?
//
//   - Generic – any ordered, comparable type can serve as a vertex (ints, strings, …)
//   - Deterministic – every enumeration is sorted, every result reproducible
//   - Rock-solid guarantees – R/W locks on the container, pure functions on top
//   - Pure Go – the only external dependency is testify, and only in tests
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square: four vertices, four edges, no articulation points —
//	remove any one corner and the other three stay connected.
//
//	go get github.com/HamPoole/31251-data-structures-algorithms
package graphalgos
