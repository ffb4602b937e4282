package geomatics

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/quadtree"
)

// Index is a quadtree over geojson features. Each feature is keyed by the
// centroid of its geometry, so area features are found by their center of
// mass rather than a corner of their bound.
type Index struct {
	qt *quadtree.Quadtree
}

// centroidPointer adapts a feature to the quadtree's orb.Pointer interface.
type centroidPointer struct {
	*geojson.Feature
}

func (cp centroidPointer) Point() orb.Point {
	centroid, _ := planar.CentroidArea(cp.Geometry)
	return centroid
}

// NewIndex returns an empty index covering the given bound.
func NewIndex(bound orb.Bound) *Index {
	return &Index{qt: quadtree.New(bound)}
}

// Add indexes a feature. Features whose centroid falls outside the index
// bound are rejected.
func (ix *Index) Add(f *geojson.Feature) error {
	return ix.qt.Add(centroidPointer{f})
}

// Nearest returns the feature whose centroid is closest to the query point,
// or nil for an empty index.
func (ix *Index) Nearest(p orb.Point) *geojson.Feature {
	found := ix.qt.Find(p)
	if found == nil {
		return nil
	}
	return found.(centroidPointer).Feature
}

// KNearest returns up to k features ordered by centroid distance from the
// query point.
func (ix *Index) KNearest(p orb.Point, k int) []*geojson.Feature {
	return collect(ix.qt.KNearest(nil, p, k))
}

// InBound returns the features whose centroids fall inside the bound.
func (ix *Index) InBound(b orb.Bound) []*geojson.Feature {
	return collect(ix.qt.InBound(nil, b))
}

func collect(pointers []orb.Pointer) []*geojson.Feature {
	features := make([]*geojson.Feature, 0, len(pointers))
	for _, p := range pointers {
		features = append(features, p.(centroidPointer).Feature)
	}
	return features
}
