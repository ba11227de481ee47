// Package articulation defines the sentinel values for the articulation
// point detector.
//
// An articulation point (cut vertex) is a vertex whose removal, together
// with its incident edges, disconnects the remaining graph.
//
// Errors (sentinel):
//
//	– ErrNilGraph  if the provided graph pointer is nil.
package articulation

import "errors"

// ErrNilGraph indicates that a nil *core.Graph was passed to Points.
var ErrNilGraph = errors.New("articulation: graph is nil")
