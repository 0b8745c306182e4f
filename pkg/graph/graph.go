// Package graph holds the in-memory road graph produced by pkg/osm and
// consumed by pkg/routing.
package graph

import "osmroute/pkg/geo"

// Node is a routable point in the graph: an OSM node that lies on at least
// one road-class way.
type Node struct {
	ID  int64
	lat float64
	lon float64
}

func (n Node) Lat() float64 { return n.lat }
func (n Node) Lon() float64 { return n.lon }

// Edge is a directed connection between two nodes with a precomputed
// distance in meters. Edge is comparable, so it can live directly as a map
// key in a node's adjacency set.
type Edge struct {
	From, To int64
	Distance uint64
}

// Graph is an adjacency-set road graph keyed by OSM node id. One-way ways
// contribute a single directed Edge; bidirectional ways contribute both
// directions.
type Graph struct {
	Nodes     map[int64]Node
	Adjacency map[int64]map[Edge]struct{}
}

// New returns an empty Graph ready for AddNode/AddEdge calls.
func New() *Graph {
	return &Graph{
		Nodes:     make(map[int64]Node),
		Adjacency: make(map[int64]map[Edge]struct{}),
	}
}

// AddNode registers a routable node. Calling it twice for the same id is a
// no-op on the second call's coordinates — callers only add a node once.
func (g *Graph) AddNode(id int64, lat, lon float64) {
	if _, ok := g.Nodes[id]; ok {
		return
	}
	g.Nodes[id] = Node{ID: id, lat: lat, lon: lon}
	g.Adjacency[id] = make(map[Edge]struct{})
}

// AddEdge adds a directed edge from -> to. Both endpoints must already have
// been registered via AddNode. Adding the same edge twice is harmless: the
// adjacency set dedups it.
func (g *Graph) AddEdge(from, to int64, distance uint64) {
	g.Adjacency[from][Edge{From: from, To: to, Distance: distance}] = struct{}{}
}

// HasNode reports whether id is a routable node in the graph.
func (g *Graph) HasNode(id int64) bool {
	_, ok := g.Nodes[id]
	return ok
}

// NumNodes returns the number of routable nodes.
func (g *Graph) NumNodes() int {
	return len(g.Nodes)
}

// NumEdges returns the total number of directed edges.
func (g *Graph) NumEdges() int {
	n := 0
	for _, edges := range g.Adjacency {
		n += len(edges)
	}
	return n
}

// Neighbors returns the directed edges leaving id. It returns nil for an
// unknown id rather than panicking, since callers (A*, component checks)
// frequently probe ids defensively.
func (g *Graph) Neighbors(id int64) map[Edge]struct{} {
	return g.Adjacency[id]
}

var _ geo.Location = Node{}
