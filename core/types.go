// Package core defines the generic Graph and Edge types and provides
// thread-safe primitives for building, querying, and cloning weighted
// undirected graphs.
//
// All core APIs share one sync.RWMutex internally, so individual calls
// are safe across goroutines; consistency over a whole traversal still
// requires that no writer runs concurrently.
//
// This file declares ID, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// ID constrains the types usable as vertex identifiers: any ordered,
// comparable type (strings, integers, floats). The ordering doubles as
// the graph's native enumeration order — Vertices, Edges, and Neighbors
// all report ascending results. Float identifiers must not be NaN.
type ID interface{ cmp.Ordered }

// Edge is one endpoint-anchored view of an undirected weighted edge.
//
// From is the vertex the view is anchored at, To the opposite endpoint,
// Weight the cost carried by the connection. The same physical edge
// appears as {From: u, To: v} in u's neighbor list and {From: v, To: u}
// in v's.
type Edge[V ID] struct {
	// From is the anchoring endpoint.
	From V

	// To is the opposite endpoint.
	To V

	// Weight is the cost of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

// graphConfig collects construction-time flags applied by GraphOption.
// It is deliberately not generic so that options compose without
// spelling out the vertex type at every call site.
type graphConfig struct {
	allowLoops bool // permit self-loops
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// Graph is the core in-memory graph data structure: simple (at most one
// edge per vertex pair), undirected, weighted, and generic over the
// vertex identifier type V.
//
// Adjacency is stored as nested maps adj[u][v] = weight, mirrored for
// both endpoints, so edge existence, insertion, and deletion are all
// constant-time. A vertex with no edges is a key with an empty inner map.
type Graph[V ID] struct {
	mu sync.RWMutex // guards adj and edgeCount

	// Configuration flags
	allowLoops bool // allow self-loops

	// adj[u][v] holds the weight of the edge u—v; mirrored as adj[v][u].
	adj map[V]map[V]int64

	// edgeCount tracks the number of distinct edges (a loop counts once).
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default the graph rejects self-loops.
// Complexity: O(1)
func NewGraph[V ID](opts ...GraphOption) *Graph[V] {
	var cfg graphConfig
	// Apply options
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		allowLoops: cfg.allowLoops,
		adj:        make(map[V]map[V]int64),
	}
}
