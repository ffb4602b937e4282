// Package geomatics collects the geometry helpers used throughout the
// Programming in Geomatics course material.
//
// The package follows the OGC Simple Feature Access model: a Point is a
// single coordinate pair, a LineString is an ordered sequence of at least
// two points, and a Polygon is one closed exterior ring plus any number of
// closed interior rings (holes). Multi* variants and GeometryCollection
// group the basic types. All geometric math (centroids, areas, lengths)
// is delegated to github.com/paulmach/orb; nothing here reimplements it.
//
// Geometries are plain orb values and are never mutated after
// construction, so the accessors are safe to call repeatedly.
package geomatics
