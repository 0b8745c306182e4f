// Package spatial provides an accelerated nearest-node lookup for graphs
// too large for the routing engine's default linear scan to snap queries
// against repeatedly.
package spatial

import (
	"github.com/tidwall/rtree"

	"osmroute/pkg/geo"
	"osmroute/pkg/graph"
)

// Index is an R-tree-backed nearest-node index over a graph's routable
// nodes. Build it once per graph and reuse it across snap queries; unlike
// the linear scan in pkg/routing, a lookup only measures the nodes the
// R-tree finds near the query, and scans every node only when none lies
// within its widest search window.
type Index struct {
	tree  rtree.RTree
	nodes map[int64]graph.Node
}

// NewIndex inserts every node of g into a fresh Index.
func NewIndex(g *graph.Graph) *Index {
	idx := &Index{nodes: make(map[int64]graph.Node, len(g.Nodes))}
	for id, n := range g.Nodes {
		idx.nodes[id] = n
		point := [2]float64{n.Lon(), n.Lat()}
		idx.tree.Insert(point, point, id)
	}
	return idx
}

// Nearest returns the id of the node in the index closest to q by
// great-circle distance, breaking ties by lowest id. ok is false only when
// the index is empty.
func (idx *Index) Nearest(q geo.Location) (id int64, ok bool) {
	if len(idx.nodes) == 0 {
		return 0, false
	}

	center := [2]float64{q.Lon(), q.Lat()}

	// Expand a square search window around q until it contains at least
	// one candidate, then verify by also searching one ring further out
	// (a point can be nearer in true distance than in bounding-box terms
	// near the window's edge). Degrees are a coarse but monotonic proxy
	// for great-circle distance at the scale of a single search.
	const startDelta = 0.01 // roughly 1km at the equator
	delta := startDelta
	var candidates []int64

	for attempt := 0; attempt < 20; attempt++ {
		candidates = candidates[:0]
		min := [2]float64{center[0] - delta, center[1] - delta}
		max := [2]float64{center[0] + delta, center[1] + delta}
		idx.tree.Search(min, max, func(_, _ [2]float64, data interface{}) bool {
			candidates = append(candidates, data.(int64))
			return true
		})
		if len(candidates) > 0 {
			candidates = candidates[:0]
			outer := 2 * delta
			idx.tree.Search([2]float64{center[0] - outer, center[1] - outer},
				[2]float64{center[0] + outer, center[1] + outer},
				func(_, _ [2]float64, data interface{}) bool {
					candidates = append(candidates, data.(int64))
					return true
				})
			break
		}
		delta *= 4
	}

	if len(candidates) == 0 {
		// The expanding search exhausted its bound; fall back to a full
		// scan rather than reporting no match, since we know the index
		// is non-empty.
		for nodeID := range idx.nodes {
			candidates = append(candidates, nodeID)
		}
	}

	best := candidates[0]
	bestDist := geo.Distance(q, idx.nodes[best])
	for _, c := range candidates[1:] {
		d := geo.Distance(q, idx.nodes[c])
		if d < bestDist || (d == bestDist && c < best) {
			best = c
			bestDist = d
		}
	}
	return best, true
}

// Len returns the number of nodes in the index.
func (idx *Index) Len() int {
	return len(idx.nodes)
}
