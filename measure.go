package geomatics

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Centroid returns the center of mass of any geometry variant. For polygons
// the centroid is area weighted, for linestrings length weighted.
func Centroid(g orb.Geometry) orb.Point {
	centroid, _ := planar.CentroidArea(g)
	return centroid
}

// Area returns the enclosed euclidean area of the geometry. Points and
// linestrings have no enclosed area and yield zero rather than an error.
// Ring winding does not matter; the magnitude is always returned.
func Area(g orb.Geometry) float64 {
	return math.Abs(planar.Area(g))
}

// Length returns the total euclidean path length of the geometry: cumulative
// segment length for a linestring, perimeter (exterior plus interior rings)
// for a polygon. Length is defined uniformly across variants, so no type
// dispatch is needed.
func Length(g orb.Geometry) float64 {
	return planar.Length(g)
}

// Interpolate returns the point reached after travelling the given fraction
// of the linestring's length along its path.
func Interpolate(ls orb.LineString, fraction float64) orb.Point {
	if len(ls) == 0 {
		return orb.Point{}
	}

	target := planar.Length(ls) * fraction
	travelled := 0.0

	for i := 0; i < len(ls)-1; i++ {
		distance := planar.Distance(ls[i], ls[i+1])

		// target falls within this segment
		if travelled+distance > target {
			remainder := target - travelled
			t := remainder / distance
			return orb.Point{
				ls[i][0] + (ls[i+1][0]-ls[i][0])*t,
				ls[i][1] + (ls[i+1][1]-ls[i][1])*t,
			}
		}

		travelled += distance
	}

	return ls[len(ls)-1]
}

// Midpoint returns the point halfway along the linestring's path. Unlike
// Centroid, the result always lies on the line itself.
func Midpoint(ls orb.LineString) orb.Point {
	return Interpolate(ls, 0.5)
}

// BoundArea approximates the area of a bounding box, clamping degenerate
// dimensions so that points and axis-aligned lines still compare by size.
func BoundArea(b orb.Bound) float64 {
	width := b.Max[0] - b.Min[0]
	height := b.Max[1] - b.Min[1]
	return math.Max(width, 0.000001) * math.Max(height, 0.000001)
}
