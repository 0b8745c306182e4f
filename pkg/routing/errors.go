package routing

import "errors"

// ErrNoRouteFound is returned when the open set empties without reaching
// the end node.
var ErrNoRouteFound = errors.New("routing: no route found")

// ErrEmptyGraph is returned when a graph has zero nodes and a snap query
// has nothing to match against.
var ErrEmptyGraph = errors.New("routing: graph has no nodes")
