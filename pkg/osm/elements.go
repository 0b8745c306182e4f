package osm

import (
	"fmt"
	"strconv"

	"github.com/paulmach/osm"
)

// roadClasses are the highway=* values that make a way routable. Order
// doesn't matter; membership does.
var roadClasses = map[string]struct{}{
	"motorway":       {},
	"trunk":          {},
	"primary":        {},
	"secondary":      {},
	"tertiary":       {},
	"unclassified":   {},
	"residential":    {},
	"motorway_link":  {},
	"trunk_link":     {},
	"primary_link":   {},
	"secondary_link": {},
	"tertiary_link":  {},
	"road":           {},
}

// nodeElement is the decoded attribute set of a single <node>.
type nodeElement struct {
	id  int64
	lat float64
	lon float64
}

// newNodeElement decodes a <node>'s required attributes. A missing or
// unparsable id, lat or lon is a fatal, not a silently-skipped, condition.
func newNodeElement(ev Event) (nodeElement, error) {
	idStr, ok := ev.Attr("id")
	if !ok {
		return nodeElement{}, fmt.Errorf("node missing required attribute %q", "id")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nodeElement{}, fmt.Errorf("node id %q is not an integer: %w", idStr, err)
	}

	latStr, ok := ev.Attr("lat")
	if !ok {
		return nodeElement{}, fmt.Errorf("node %d missing required attribute %q", id, "lat")
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nodeElement{}, fmt.Errorf("node %d lat %q is not a decimal value: %w", id, latStr, err)
	}

	lonStr, ok := ev.Attr("lon")
	if !ok {
		return nodeElement{}, fmt.Errorf("node %d missing required attribute %q", id, "lon")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nodeElement{}, fmt.Errorf("node %d lon %q is not a decimal value: %w", id, lonStr, err)
	}

	return nodeElement{id: id, lat: lat, lon: lon}, nil
}

// wayElement is the accumulating state of a <way> between its Start and
// End events. Its <tag> children are collected into tags as they arrive;
// classify derives is_road/is_oneway from the accumulated set once the way
// closes.
type wayElement struct {
	id    int64
	nodes []int64
	tags  osm.Tags
}

// newWayElement decodes a <way>'s required id attribute.
func newWayElement(ev Event) (*wayElement, error) {
	idStr, ok := ev.Attr("id")
	if !ok {
		return nil, fmt.Errorf("way missing required attribute %q", "id")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("way id %q is not an integer: %w", idStr, err)
	}
	return &wayElement{id: id}, nil
}

// handleNd appends a <nd ref="..."> child's node id to the way's node list.
func (w *wayElement) handleNd(ev Event) error {
	refStr, ok := ev.Attr("ref")
	if !ok {
		return fmt.Errorf("way %d: nd missing required attribute %q", w.id, "ref")
	}
	ref, err := strconv.ParseInt(refStr, 10, 64)
	if err != nil {
		return fmt.Errorf("way %d: nd ref %q is not an integer: %w", w.id, refStr, err)
	}
	w.nodes = append(w.nodes, ref)
	return nil
}

// handleTag appends a <tag k="..." v="..."> child to the way's tag set.
// Attributes with no k or v are ignored rather than treated as fatal: §4.4
// only makes id/ref parsing failures fatal.
func (w *wayElement) handleTag(ev Event) {
	k, hasKey := ev.Attr("k")
	v, hasVal := ev.Attr("v")
	if !hasKey || !hasVal {
		return
	}
	w.tags = append(w.tags, osm.Tag{Key: k, Value: v})
}

// classify derives is_road and is_oneway from the way's accumulated tags,
// per §4.4, once all of a way's <tag> children have been seen.
func (w *wayElement) classify() (isRoad, isOneway bool) {
	_, isRoad = roadClasses[w.tags.Find("highway")]

	switch w.tags.Find("oneway") {
	case "yes", "true", "1":
		isOneway = true
	case "no", "false", "0":
		isOneway = false
	}
	if w.tags.Find("junction") == "roundabout" {
		isOneway = true
	}
	return isRoad, isOneway
}
