package store

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// geometry kind markers, first byte of every stored value
const (
	kindPoint byte = iota + 1
	kindLine
	kindPolygon
)

// Coordinates are stored as 64 bit floats packed big-endian and truncated
// to 6 bytes each, because we don't need the additional precision
// (> 7 decimal places). A pair therefore occupies 12 bytes.
const pairSize = 12

func appendPair(dst []byte, p orb.Point) []byte {
	var scratch [14]byte
	binary.BigEndian.PutUint64(scratch[0:8], math.Float64bits(p[0]))
	// overwrites the two truncated bytes of x
	binary.BigEndian.PutUint64(scratch[6:14], math.Float64bits(p[1]))
	return append(dst, scratch[:pairSize]...)
}

func decodePair(src []byte) orb.Point {
	buffer := make([]byte, 8)

	copy(buffer, src[0:6])
	x := math.Float64frombits(binary.BigEndian.Uint64(buffer))

	copy(buffer, src[6:12])
	y := math.Float64frombits(binary.BigEndian.Uint64(buffer))

	return orb.Point{x, y}
}

func appendPairs(dst []byte, points []orb.Point) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(points)))
	for _, p := range points {
		dst = appendPair(dst, p)
	}
	return dst
}

func decodePairs(src []byte) ([]orb.Point, []byte, error) {
	if len(src) < 4 {
		return nil, nil, fmt.Errorf("truncated coordinate sequence")
	}
	count := int(binary.BigEndian.Uint32(src[0:4]))
	src = src[4:]
	if len(src) < count*pairSize {
		return nil, nil, fmt.Errorf("truncated coordinate sequence")
	}
	points := make([]orb.Point, 0, count)
	for i := 0; i < count; i++ {
		points = append(points, decodePair(src[i*pairSize:]))
	}
	return points, src[count*pairSize:], nil
}

func encodeGeometry(g orb.Geometry) ([]byte, error) {
	switch g := g.(type) {
	case orb.Point:
		return appendPair([]byte{kindPoint}, g), nil
	case orb.LineString:
		return appendPairs([]byte{kindLine}, g), nil
	case orb.Polygon:
		// the ring count is stored in a single byte
		if len(g) > 255 {
			return nil, fmt.Errorf("polygon has too many rings: %d", len(g))
		}
		data := append([]byte{kindPolygon}, byte(len(g)))
		for _, ring := range g {
			data = appendPairs(data, ring)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unsupported geometry type %T", g)
}

func decodeGeometry(data []byte) (orb.Geometry, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty geometry value")
	}
	switch data[0] {
	case kindPoint:
		if len(data) < 1+pairSize {
			return nil, fmt.Errorf("truncated point value")
		}
		return decodePair(data[1:]), nil
	case kindLine:
		points, _, err := decodePairs(data[1:])
		if err != nil {
			return nil, err
		}
		return orb.LineString(points), nil
	case kindPolygon:
		if len(data) < 2 {
			return nil, fmt.Errorf("truncated polygon value")
		}
		rings := int(data[1])
		rest := data[2:]
		poly := make(orb.Polygon, 0, rings)
		for i := 0; i < rings; i++ {
			var points []orb.Point
			var err error
			points, rest, err = decodePairs(rest)
			if err != nil {
				return nil, err
			}
			poly = append(poly, orb.Ring(points))
		}
		return poly, nil
	}
	return nil, fmt.Errorf("unknown geometry kind 0x%02x", data[0])
}

// Node ID lists are stored as plain big-endian 64 bit integers.
func encodeRefs(refs []int64) []byte {
	data := make([]byte, 0, len(refs)*8)
	for _, ref := range refs {
		data = binary.BigEndian.AppendUint64(data, uint64(ref))
	}
	return data
}

func decodeRefs(data []byte) []int64 {
	refs := make([]int64, 0, len(data)/8)
	for i := 0; i+8 <= len(data); i += 8 {
		refs = append(refs, int64(binary.BigEndian.Uint64(data[i:])))
	}
	return refs
}
