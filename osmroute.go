// Package osmroute builds a road graph from an OSM XML export and routes
// between two coordinates on it.
package osmroute

import (
	"fmt"
	"io"

	"osmroute/pkg/geo"
	"osmroute/pkg/graph"
	"osmroute/pkg/osm"
	"osmroute/pkg/routing"
)

// Build streams r once and returns the road graph extracted from it.
func Build(r io.Reader) (*graph.Graph, error) {
	return osm.Build(r)
}

// Route snaps start and end to their nearest graph nodes and returns the
// A*-optimal sequence of node ids between them, start to end inclusive.
//
// If no route exists, the returned error wraps routing.ErrNoRouteFound and
// additionally reports whether start and end lie in different weakly
// connected components of g, which is usually the more useful diagnostic
// for a disconnected OSM extract.
func Route(g *graph.Graph, start, end geo.Coordinate) ([]int64, error) {
	path, err := routing.Route(g, start, end)
	if err == nil {
		return path, nil
	}
	if err != routing.ErrNoRouteFound {
		return nil, err
	}

	startID, snapErr := routing.Snap(g, start)
	if snapErr != nil {
		return nil, err
	}
	endID, snapErr := routing.Snap(g, end)
	if snapErr != nil {
		return nil, err
	}
	if graph.SameComponent(g, startID, endID) {
		return nil, fmt.Errorf("%w: start and end are in the same graph component but unreachable by road", err)
	}
	return nil, fmt.Errorf("%w: start and end are in disconnected graph components", err)
}
