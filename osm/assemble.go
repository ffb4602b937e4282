package osm

import (
	"github.com/paulmach/orb"

	geomatics "github.com/burakucncu/programming-in-geomatics"
)

// ConnectRings joins open ways end-to-end into closed rings. Ways are first
// connected where one's last point equals another's first; when no such pair
// remains, ways running in the opposite winding are reversed and retried.
// Ways that never close are discarded.
func ConnectRings(ways []orb.LineString) []orb.Ring {
	lastOpenCount := len(ways)
	tryReversed := false

	for len(ways) > 1 {
		ways = connectPass(ways, tryReversed)

		if len(ways) == lastOpenCount {
			if tryReversed {
				// nothing left to join
				break
			}
			tryReversed = true
			lastOpenCount = 0
		}

		lastOpenCount = len(ways)
	}

	return closedRings(ways)
}

// LargestRing returns the ring covering the largest bounding-box area,
// or nil for an empty slice.
func LargestRing(rings []orb.Ring) orb.Ring {
	largestArea := 0.0
	var largest orb.Ring

	for _, ring := range rings {
		area := geomatics.BoundArea(ring.Bound())
		if area > largestArea {
			largestArea = area
			largest = ring
		}
	}

	return largest
}

// connectPass joins at most one pair of ways and returns the shortened
// slice; callers loop until no join is possible.
func connectPass(ways []orb.LineString, tryReversed bool) []orb.LineString {
	for i, way := range ways {
		for j, candidate := range ways {
			if i == j {
				continue
			}

			var joined orb.LineString

			if last(way).Equal(first(candidate)) {
				joined = mergeWays(way, candidate)
			} else if first(way).Equal(last(candidate)) {
				joined = mergeWays(candidate, way)
			} else if tryReversed {
				if last(way).Equal(last(candidate)) {
					joined = mergeWays(way, reverseWay(candidate))
				} else if first(way).Equal(first(candidate)) {
					joined = mergeWays(reverseWay(way), candidate)
				}
			}

			if len(joined) > 0 {
				ways = removeIndices(ways, i, j)
				return append(ways, joined)
			}
		}
	}

	return ways
}

func closedRings(ways []orb.LineString) []orb.Ring {
	rings := make([]orb.Ring, 0, len(ways))
	for _, way := range ways {
		if geomatics.Closed(way) {
			rings = append(rings, orb.Ring(way))
		}
	}
	return rings
}

func mergeWays(a orb.LineString, b orb.LineString) orb.LineString {
	merged := make(orb.LineString, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return merged
}

func reverseWay(way orb.LineString) orb.LineString {
	reversed := make(orb.LineString, 0, len(way))
	for i := len(way) - 1; i >= 0; i-- {
		reversed = append(reversed, way[i])
	}
	return reversed
}

func removeIndices(ways []orb.LineString, drop ...int) []orb.LineString {
	kept := make([]orb.LineString, 0, len(ways))
	for i, way := range ways {
		matched := false
		for _, d := range drop {
			if i == d {
				matched = true
				break
			}
		}
		if !matched {
			kept = append(kept, way)
		}
	}
	return kept
}

func first(way orb.LineString) orb.Point { return way[0] }
func last(way orb.LineString) orb.Point  { return way[len(way)-1] }
