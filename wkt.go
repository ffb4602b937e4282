package geomatics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// MarshalWKT renders any geometry variant as well-known text with
// space-separated tuples, e.g. "LINESTRING (45.2 22.34, 100.22 -3.2)".
func MarshalWKT(g orb.Geometry) string {
	switch g := g.(type) {
	case orb.Point:
		return "POINT (" + formatTuple(g) + ")"
	case orb.MultiPoint:
		if len(g) == 0 {
			return "MULTIPOINT EMPTY"
		}
		return "MULTIPOINT (" + formatTuples(g) + ")"
	case orb.LineString:
		if len(g) == 0 {
			return "LINESTRING EMPTY"
		}
		return "LINESTRING (" + formatTuples(g) + ")"
	case orb.MultiLineString:
		if len(g) == 0 {
			return "MULTILINESTRING EMPTY"
		}
		parts := make([]string, len(g))
		for i, ls := range g {
			parts[i] = "(" + formatTuples(ls) + ")"
		}
		return "MULTILINESTRING (" + strings.Join(parts, ", ") + ")"
	case orb.Ring:
		return MarshalWKT(orb.Polygon{g})
	case orb.Polygon:
		if len(g) == 0 {
			return "POLYGON EMPTY"
		}
		return "POLYGON (" + formatRings(g) + ")"
	case orb.MultiPolygon:
		if len(g) == 0 {
			return "MULTIPOLYGON EMPTY"
		}
		parts := make([]string, len(g))
		for i, poly := range g {
			parts[i] = "(" + formatRings(poly) + ")"
		}
		return "MULTIPOLYGON (" + strings.Join(parts, ", ") + ")"
	case orb.Collection:
		if len(g) == 0 {
			return "GEOMETRYCOLLECTION EMPTY"
		}
		parts := make([]string, len(g))
		for i, member := range g {
			parts[i] = MarshalWKT(member)
		}
		return "GEOMETRYCOLLECTION (" + strings.Join(parts, ", ") + ")"
	case orb.Bound:
		return MarshalWKT(g.ToPolygon())
	}
	panic(fmt.Sprintf("geomatics: unsupported geometry type %T", g))
}

// UnmarshalWKT parses the geometry types the course constructs: POINT,
// MULTIPOINT, LINESTRING and POLYGON (with interior rings).
func UnmarshalWKT(s string) (orb.Geometry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	upper := strings.ToUpper(s)

	switch {
	case strings.HasPrefix(upper, "MULTIPOINT"):
		body, err := wktBody(s, "(", ")")
		if err != nil {
			return nil, err
		}
		points, err := parseTuples(body)
		if err != nil {
			return nil, err
		}
		return orb.MultiPoint(points), nil

	case strings.HasPrefix(upper, "POINT"):
		body, err := wktBody(s, "(", ")")
		if err != nil {
			return nil, err
		}
		points, err := parseTuples(body)
		if err != nil {
			return nil, err
		}
		if len(points) != 1 {
			return nil, errors.New("wkt point: expected a single tuple")
		}
		return points[0], nil

	case strings.HasPrefix(upper, "LINESTRING"):
		body, err := wktBody(s, "(", ")")
		if err != nil {
			return nil, err
		}
		points, err := parseTuples(body)
		if err != nil {
			return nil, err
		}
		if len(points) < 2 {
			return nil, ErrShortLine
		}
		return orb.LineString(points), nil

	case strings.HasPrefix(upper, "POLYGON"):
		body, err := wktBody(s, "((", "))")
		if err != nil {
			return nil, err
		}
		var poly orb.Polygon
		for _, part := range splitRings(body) {
			points, err := parseTuples(part)
			if err != nil {
				return nil, err
			}
			if len(points) < 3 {
				return nil, ErrShortRing
			}
			ring := orb.Ring(points)
			if !ring.Closed() {
				ring = append(ring, ring[0])
			}
			poly = append(poly, ring)
		}
		return poly, nil
	}

	return nil, errors.New("unsupported wkt type")
}

func wktBody(s, opener, closer string) (string, error) {
	i := strings.Index(s, opener)
	j := strings.LastIndex(s, closer)
	if i < 0 || j <= i {
		return "", fmt.Errorf("invalid wkt: %q", s)
	}
	return s[i+len(opener) : j], nil
}

func splitRings(body string) []string {
	// normalize spacing around ring separators before splitting
	body = strings.ReplaceAll(body, ") , (", "),(")
	body = strings.ReplaceAll(body, "), (", "),(")
	return strings.Split(body, "),(")
}

func parseTuples(body string) ([]orb.Point, error) {
	var points []orb.Point
	for _, tuple := range strings.Split(body, ",") {
		fields := strings.Fields(strings.TrimSpace(tuple))
		if len(fields) < 2 {
			return nil, fmt.Errorf("invalid wkt tuple: %q", tuple)
		}
		x, errx := strconv.ParseFloat(fields[0], 64)
		y, erry := strconv.ParseFloat(fields[1], 64)
		if errx != nil || erry != nil {
			return nil, fmt.Errorf("invalid wkt tuple: %q", tuple)
		}
		points = append(points, orb.Point{x, y})
	}
	return points, nil
}

func formatRings(poly orb.Polygon) string {
	parts := make([]string, len(poly))
	for i, ring := range poly {
		parts[i] = "(" + formatTuples(ring) + ")"
	}
	return strings.Join(parts, ", ")
}

func formatTuples(points []orb.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = formatTuple(p)
	}
	return strings.Join(parts, ", ")
}

func formatTuple(p orb.Point) string {
	return formatCoord(p[0]) + " " + formatCoord(p[1])
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
