package osm

import (
	"fmt"
	"io"
	"log"

	"osmroute/pkg/geo"
	"osmroute/pkg/graph"
)

// Build streams r once and returns the road graph implied by its node and
// way elements. It drives the FSM with a single mutable open-way slot: at
// most one <way> can be open at a time, matching the OSM XML invariant that
// elements do not nest across siblings.
func Build(r io.Reader) (*graph.Graph, error) {
	reader := NewReader(r)

	type pendingWay struct {
		id       int64
		isRoad   bool
		isOneway bool
		nodes    []int64
	}

	nodes := make(map[int64]nodeElement)
	roadNodeIDs := make(map[int64]struct{})
	var ways []pendingWay

	var openWay *wayElement
	var nodeCount, wayCount uint64

	for {
		ev, err := reader.Next()
		if err != nil {
			return nil, err
		}

		switch ev.Kind {
		case Start:
			if ev.Name != "way" {
				continue
			}
			if openWay != nil {
				return nil, fmt.Errorf("osm: nested <way> at way id %d", openWay.id)
			}
			w, err := newWayElement(ev)
			if err != nil {
				return nil, err
			}
			openWay = w

		case Empty:
			if openWay != nil {
				switch ev.Name {
				case "way":
					return nil, fmt.Errorf("osm: nested <way> at way id %d", openWay.id)
				case "nd":
					if err := openWay.handleNd(ev); err != nil {
						return nil, err
					}
				case "tag":
					openWay.handleTag(ev)
				}
				continue
			}
			if ev.Name == "node" {
				n, err := newNodeElement(ev)
				if err != nil {
					return nil, err
				}
				nodes[n.id] = n
				nodeCount++
			}

		case End:
			if ev.Name != "way" {
				continue
			}
			if openWay == nil {
				return nil, fmt.Errorf("osm: </way> without a matching open <way>")
			}
			isRoad, isOneway := openWay.classify()
			if isRoad {
				for _, id := range openWay.nodes {
					roadNodeIDs[id] = struct{}{}
				}
				ways = append(ways, pendingWay{
					id:       openWay.id,
					isRoad:   true,
					isOneway: isOneway,
					nodes:    openWay.nodes,
				})
			}
			openWay = nil
			wayCount++

		case Eof:
			if openWay != nil {
				return nil, fmt.Errorf("osm: unexpected end of input with <way> id %d still open", openWay.id)
			}
			g := graph.New()
			for id := range roadNodeIDs {
				n, ok := nodes[id]
				if !ok {
					continue
				}
				g.AddNode(n.id, n.lat, n.lon)
			}

			for _, w := range ways {
				filtered := w.nodes[:0:0]
				for _, id := range w.nodes {
					if g.HasNode(id) {
						filtered = append(filtered, id)
					}
				}
				if len(filtered) < 2 {
					continue
				}
				for i := 0; i+1 < len(filtered); i++ {
					u, v := filtered[i], filtered[i+1]
					d := geo.Distance(g.Nodes[u], g.Nodes[v])
					g.AddEdge(u, v, d)
					if !w.isOneway {
						g.AddEdge(v, u, d)
					}
				}
			}

			log.Printf("osm: read %d nodes, %d ways; graph has %d routable nodes and %d edges",
				nodeCount, wayCount, g.NumNodes(), g.NumEdges())

			return g, nil
		}
	}
}
