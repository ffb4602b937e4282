package geomatics

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Simplify reduces the vertex count of a geometry using Douglas-Peucker
// with the given tolerance in coordinate units. The input is cloned first;
// the simplifier otherwise reduces in place.
func Simplify(g orb.Geometry, tolerance float64) orb.Geometry {
	return simplify.DouglasPeucker(tolerance).Simplify(orb.Clone(g))
}
