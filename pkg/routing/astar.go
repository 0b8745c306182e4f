package routing

import (
	"osmroute/pkg/geo"
	"osmroute/pkg/graph"
)

// pqItem is a priority queue entry: a candidate node and the f-score it was
// pushed with. A node can appear more than once if its g-score improved
// after an earlier push; stale entries are discarded at pop time via the
// closed set rather than decrease-key.
type pqItem struct {
	node int64
	f    uint64
}

// minHeap is a concrete array-backed min-heap ordered by f-score, avoiding
// the interface boxing of container/heap for a type this hot.
type minHeap struct {
	items []pqItem
}

func (h *minHeap) Len() int { return len(h.items) }

func (h *minHeap) Push(node int64, f uint64) {
	h.items = append(h.items, pqItem{node: node, f: f})
	h.siftUp(len(h.items) - 1)
}

func (h *minHeap) Pop() pqItem {
	n := len(h.items)
	item := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return item
}

func (h *minHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].f >= h.items[parent].f {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *minHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.items[left].f < h.items[smallest].f {
			smallest = left
		}
		if right < n && h.items[right].f < h.items[smallest].f {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

// Route runs A* from the graph node nearest start to the node nearest end
// and returns the ordered sequence of node ids on the optimal path.
func Route(g *graph.Graph, start, end geo.Coordinate) ([]int64, error) {
	startID, err := Snap(g, start)
	if err != nil {
		return nil, err
	}
	endID, err := Snap(g, end)
	if err != nil {
		return nil, err
	}

	return routeBetween(g, startID, endID)
}

func routeBetween(g *graph.Graph, startID, endID int64) ([]int64, error) {
	endNode := g.Nodes[endID]
	heuristic := func(id int64) uint64 {
		return geo.Distance(g.Nodes[id], endNode)
	}

	gScore := map[int64]uint64{startID: 0}
	parent := make(map[int64]int64)
	closed := make(map[int64]struct{})

	var open minHeap
	open.Push(startID, heuristic(startID))

	for open.Len() > 0 {
		cur := open.Pop()
		if _, done := closed[cur.node]; done {
			continue
		}
		if cur.node == endID {
			return reconstruct(parent, startID, endID), nil
		}
		closed[cur.node] = struct{}{}

		for e := range g.Neighbors(cur.node) {
			if _, done := closed[e.To]; done {
				continue
			}
			t := gScore[cur.node] + e.Distance
			if cost, ok := gScore[e.To]; !ok || t < cost {
				gScore[e.To] = t
				parent[e.To] = cur.node
				open.Push(e.To, t+heuristic(e.To))
			}
		}
	}

	return nil, ErrNoRouteFound
}

// reconstruct walks parent from end back to start and reverses the result.
// parent is acyclic by construction: each write strictly decreases the
// written node's g-score, so the walk terminates.
func reconstruct(parent map[int64]int64, start, end int64) []int64 {
	path := []int64{end}
	cur := end
	for cur != start {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
