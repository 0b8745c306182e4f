package routing

import (
	"osmroute/pkg/geo"
	"osmroute/pkg/graph"
)

// NearestNodeFinder resolves a query coordinate to the id of the closest
// routable node. The default Snap does a linear scan; pkg/spatial provides
// an index-backed implementation of the same contract for callers issuing
// many queries against one graph.
type NearestNodeFinder interface {
	Nearest(q geo.Location) (id int64, ok bool)
}

// Snap returns the node in g nearest to q by great-circle distance,
// breaking ties by lowest id. It is an O(|V|) linear scan, acceptable for a
// single query; see pkg/spatial for a reusable index.
func Snap(g *graph.Graph, q geo.Location) (int64, error) {
	if g.NumNodes() == 0 {
		return 0, ErrEmptyGraph
	}

	var best int64
	var bestDist uint64
	first := true

	for id, n := range g.Nodes {
		d := geo.Distance(q, n)
		if first || d < bestDist || (d == bestDist && id < best) {
			best = id
			bestDist = d
			first = false
		}
	}

	return best, nil
}
