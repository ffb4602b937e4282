package geomatics

import (
	"errors"

	"github.com/paulmach/orb"
)

var (
	// ErrShortLine is returned when a linestring is constructed from
	// fewer than two distinct points.
	ErrShortLine = errors.New("linestring requires at least two distinct points")

	// ErrShortRing is returned when a polygon ring is constructed from
	// fewer than three distinct vertices.
	ErrShortRing = errors.New("polygon ring requires at least three distinct vertices")
)

// NewPoint returns a point at (x, y). Any numeric input is accepted.
func NewPoint(x float64, y float64) orb.Point {
	return orb.Point{x, y}
}

// NewLine returns a linestring through the given points, in the order given.
// The input slice is copied, so later changes to it do not reach the line.
func NewLine(points []orb.Point) (orb.LineString, error) {
	if countDistinct(points) < 2 {
		return nil, ErrShortLine
	}
	line := make(orb.LineString, len(points))
	copy(line, points)
	return line, nil
}

// NewPolygon returns a polygon whose exterior ring is formed by closing the
// given vertex sequence. The closing vertex may be supplied or omitted.
func NewPolygon(points []orb.Point) (orb.Polygon, error) {
	ring, err := newRing(points)
	if err != nil {
		return nil, err
	}
	return orb.Polygon{ring}, nil
}

// NewPolygonWithHoles is NewPolygon with interior rings. Each hole is closed
// and validated like the exterior; hole placement is not checked.
func NewPolygonWithHoles(exterior []orb.Point, holes ...[]orb.Point) (orb.Polygon, error) {
	poly, err := NewPolygon(exterior)
	if err != nil {
		return nil, err
	}
	for _, hole := range holes {
		ring, err := newRing(hole)
		if err != nil {
			return nil, err
		}
		poly = append(poly, ring)
	}
	return poly, nil
}

// NewMultiPoint groups points into a multipoint.
func NewMultiPoint(points ...orb.Point) orb.MultiPoint {
	return orb.MultiPoint(points)
}

// NewMultiLine groups linestrings into a multilinestring.
func NewMultiLine(lines ...orb.LineString) orb.MultiLineString {
	return orb.MultiLineString(lines)
}

// NewMultiPolygon groups polygons into a multipolygon.
func NewMultiPolygon(polygons ...orb.Polygon) orb.MultiPolygon {
	return orb.MultiPolygon(polygons)
}

// NewCollection groups arbitrary geometries.
func NewCollection(geometries ...orb.Geometry) orb.Collection {
	return orb.Collection(geometries)
}

// Closed reports whether the sequence forms a closed ring, i.e. it has more
// than two points and the first equals the last.
func Closed(points []orb.Point) bool {
	if len(points) > 2 {
		return points[0].Equal(points[len(points)-1])
	}
	return false
}

func newRing(points []orb.Point) (orb.Ring, error) {
	// drop a supplied closing vertex before counting
	if Closed(points) {
		points = points[:len(points)-1]
	}
	if countDistinct(points) < 3 {
		return nil, ErrShortRing
	}
	ring := make(orb.Ring, 0, len(points)+1)
	ring = append(ring, points...)
	ring = append(ring, points[0])
	return ring, nil
}

func countDistinct(points []orb.Point) int {
	n := 0
	for i, p := range points {
		seen := false
		for _, q := range points[:i] {
			if p.Equal(q) {
				seen = true
				break
			}
		}
		if !seen {
			n++
		}
	}
	return n
}
