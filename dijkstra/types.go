// Package dijkstra defines the sentinel values for the single-source
// shortest-path engine.
//
// Dijkstra computes the minimum cost from one source vertex to every other
// vertex of a weighted graph with non-negative edge weights. Distances are
// returned for the whole vertex set; vertices the source cannot reach keep
// the Infinity sentinel.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrSourceNotFound  if the graph is non-empty and the source vertex
//	                     does not exist in it.
package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance assigned to vertices unreachable from the source.
// Relaxation treats it as saturating: an Infinity distance never propagates
// through addition.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the specified source vertex does not
	// exist in the provided non-empty graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found in graph")
)
