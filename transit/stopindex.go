// Package transit: R-tree index over stop locations.
package transit

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// pointTolerance inflates a stop location into the tiny non-degenerate
// rectangle rtreego requires for point data.
const pointTolerance = 1e-9

// stopEntry wraps a Stop for R-tree storage.
type stopEntry struct {
	stop Stop
}

// Bounds implements rtreego.Spatial.
func (e *stopEntry) Bounds() rtreego.Rect {
	return rtreego.Point{e.stop.Location[0], e.stop.Location[1]}.ToRect(pointTolerance)
}

// StopIndex answers nearest-stop and region queries over a fixed set
// of stops. Build once per Feed; the index is read-only afterwards.
type StopIndex struct {
	tree *rtreego.Rtree
}

// NewStopIndex indexes the given stops by location.
func NewStopIndex(stops map[int64]Stop) *StopIndex {
	tree := rtreego.NewTree(2, 25, 50) // two dimensions, 25..50 entries per node
	for _, s := range stops {
		tree.Insert(&stopEntry{stop: s})
	}

	return &StopIndex{tree: tree}
}

// Size returns the number of indexed stops.
func (si *StopIndex) Size() int {
	return si.tree.Size()
}

// Nearest returns up to k stops closest to p, nearest first. The
// R-tree candidate ranking is planar, so the result is re-ranked by
// great-circle distance before returning.
func (si *StopIndex) Nearest(p orb.Point, k int) []Stop {
	if k <= 0 {
		return nil
	}
	found := si.tree.NearestNeighbors(k, rtreego.Point{p[0], p[1]})
	stops := make([]Stop, 0, len(found))
	for _, item := range found {
		if item == nil {
			continue
		}
		stops = append(stops, item.(*stopEntry).stop)
	}
	sort.Slice(stops, func(i, j int) bool {
		return geo.Distance(p, stops[i].Location) < geo.Distance(p, stops[j].Location)
	})

	return stops
}

// Within returns the stops inside the axis-aligned lon/lat box spanned
// by min and max, ordered by stop id.
func (si *StopIndex) Within(min, max orb.Point) []Stop {
	rect, err := rtreego.NewRect(
		rtreego.Point{min[0], min[1]},
		[]float64{max[0] - min[0], max[1] - min[1]},
	)
	if err != nil {
		// Inverted or zero-extent boxes hold nothing.
		return nil
	}

	found := si.tree.SearchIntersect(rect)
	stops := make([]Stop, 0, len(found))
	for _, item := range found {
		stops = append(stops, item.(*stopEntry).stop)
	}
	sort.Slice(stops, func(i, j int) bool { return stops[i].ID < stops[j].ID })

	return stops
}
