package osm

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestWayGeometryOpen(t *testing.T) {
	g := wayGeometry([]orb.Point{{0, 0}, {1, 0}, {1, 1}})

	_, ok := g.(orb.LineString)
	assert.True(t, ok)
}

func TestWayGeometryClosed(t *testing.T) {
	g := wayGeometry([]orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 0}})

	poly, ok := g.(orb.Polygon)
	assert.True(t, ok)
	assert.True(t, poly[0].Closed())
}

func TestWayGeometryDegenerateLoop(t *testing.T) {
	// a doubled point is not a polygon
	g := wayGeometry([]orb.Point{{0, 0}, {1, 1}, {0, 0}})

	_, ok := g.(orb.LineString)
	assert.True(t, ok)
}

func TestNewFeature(t *testing.T) {
	tags := map[string]string{"building": "yes"}
	f := newFeature(orb.Point{1, 2}, 42, "node", tags)

	assert.Equal(t, int64(42), f.ID)
	assert.Equal(t, int64(42), f.Properties["id"])
	assert.Equal(t, "node", f.Properties["type"])
	assert.Equal(t, tags, f.Properties["tags"])
	assert.Equal(t, orb.Geometry(orb.Point{1, 2}), f.Geometry)
}
