package store

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestEncodePointSimple(t *testing.T) {
	var point = orb.Point{77, -50}
	var expected = []byte{
		0x01,
		0x40, 0x53, 0x40, 0x0, 0x0, 0x0,
		0xc0, 0x49, 0x0, 0x0, 0x0, 0x0,
	}

	// encode
	data, err := encodeGeometry(point)
	assert.NoError(t, err)
	assert.Equal(t, expected, data)

	// decode
	decoded, err := decodeGeometry(data)
	assert.NoError(t, err)
	assert.Equal(t, orb.Geometry(point), decoded)
}

func TestEncodePointFloatPrecision(t *testing.T) {
	var point = orb.Point{77.777777777, -50.555555555}
	var expected = []byte{
		0x01,
		0x40, 0x53, 0x71, 0xc7, 0x1c, 0x70,
		0xc0, 0x49, 0x47, 0x1c, 0x71, 0xc5,
	}

	// encode, truncated to 6 bytes per coordinate
	data, err := encodeGeometry(point)
	assert.NoError(t, err)
	assert.Equal(t, expected, data)

	// decode, precision preserved to ~7 decimal places
	decoded, err := decodeGeometry(data)
	assert.NoError(t, err)
	p := decoded.(orb.Point)
	assert.InDelta(t, 77.777777777, p[0], 0.000001)
	assert.InDelta(t, -50.555555555, p[1], 0.000001)
}

func TestEncodeLine(t *testing.T) {
	var line = orb.LineString{{1, 1}, {-1, -1}}
	var expected = []byte{
		0x02,
		0x0, 0x0, 0x0, 0x02,
		0x3f, 0xf0, 0x0, 0x0, 0x0, 0x0,
		0x3f, 0xf0, 0x0, 0x0, 0x0, 0x0,
		0xbf, 0xf0, 0x0, 0x0, 0x0, 0x0,
		0xbf, 0xf0, 0x0, 0x0, 0x0, 0x0,
	}

	data, err := encodeGeometry(line)
	assert.NoError(t, err)
	assert.Equal(t, expected, data)

	decoded, err := decodeGeometry(data)
	assert.NoError(t, err)
	assert.Equal(t, orb.Geometry(line), decoded)
}

func TestEncodePolygon(t *testing.T) {
	var polygon = orb.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}},
	}

	data, err := encodeGeometry(polygon)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x03), data[0])
	assert.Equal(t, byte(2), data[1])

	decoded, err := decodeGeometry(data)
	assert.NoError(t, err)
	assert.Equal(t, orb.Geometry(polygon), decoded)
}

func TestEncodePolygonRingLimit(t *testing.T) {
	polygon := make(orb.Polygon, 256)
	for i := range polygon {
		f := float64(i)
		polygon[i] = orb.Ring{{f, f}, {f + 1, f}, {f + 1, f + 1}, {f, f}}
	}

	// 256 rings overflow the count byte and must not encode
	_, err := encodeGeometry(polygon)
	assert.Error(t, err)

	// 255 rings still fit
	data, err := encodeGeometry(polygon[:255])
	assert.NoError(t, err)

	decoded, err := decodeGeometry(data)
	assert.NoError(t, err)
	assert.Len(t, decoded.(orb.Polygon), 255)
}

func TestEncodeUnsupportedKind(t *testing.T) {
	_, err := encodeGeometry(orb.MultiPoint{{1, 2}})
	assert.Error(t, err)
}

func TestDecodeTruncatedValue(t *testing.T) {
	_, err := decodeGeometry(nil)
	assert.Error(t, err)

	_, err = decodeGeometry([]byte{0x01, 0x40})
	assert.Error(t, err)

	_, err = decodeGeometry([]byte{0x02, 0x0, 0x0, 0x0, 0x05, 0x40})
	assert.Error(t, err)

	_, err = decodeGeometry([]byte{0xff})
	assert.Error(t, err)
}

func TestEncodeRefs(t *testing.T) {
	var refs = []int64{100, -7, 1 << 40}

	data := encodeRefs(refs)
	assert.Len(t, data, 24)
	assert.Equal(t, refs, decodeRefs(data))
}
