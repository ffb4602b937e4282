package geomatics

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
)

func testBound() orb.Bound {
	return orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}
}

func TestIndexNearest(t *testing.T) {
	ix := NewIndex(testBound())

	a := geojson.NewFeature(orb.Point{1, 1})
	a.Properties["name"] = "a"
	b := geojson.NewFeature(orb.Point{9, 9})
	b.Properties["name"] = "b"

	assert.NoError(t, ix.Add(a))
	assert.NoError(t, ix.Add(b))

	found := ix.Nearest(orb.Point{2, 2})
	assert.Equal(t, "a", found.Properties["name"])

	found = ix.Nearest(orb.Point{8, 8})
	assert.Equal(t, "b", found.Properties["name"])
}

func TestIndexUsesCentroid(t *testing.T) {
	ix := NewIndex(testBound())

	// centroid (2, 2), even though the bound corner is at the origin
	poly, err := NewPolygon([]orb.Point{{1, 1}, {3, 1}, {3, 3}, {1, 3}})
	assert.NoError(t, err)
	f := geojson.NewFeature(poly)
	f.Properties["name"] = "square"
	assert.NoError(t, ix.Add(f))

	found := ix.Nearest(orb.Point{2, 2})
	assert.Equal(t, "square", found.Properties["name"])
}

func TestIndexKNearest(t *testing.T) {
	ix := NewIndex(testBound())

	for i := 1; i <= 5; i++ {
		f := geojson.NewFeature(orb.Point{float64(i), float64(i)})
		f.Properties["i"] = i
		assert.NoError(t, ix.Add(f))
	}

	found := ix.KNearest(orb.Point{0, 0}, 3)
	assert.Len(t, found, 3)
}

func TestIndexInBound(t *testing.T) {
	ix := NewIndex(testBound())

	inside := geojson.NewFeature(orb.Point{2, 2})
	outside := geojson.NewFeature(orb.Point{8, 8})
	assert.NoError(t, ix.Add(inside))
	assert.NoError(t, ix.Add(outside))

	found := ix.InBound(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{5, 5}})
	assert.Len(t, found, 1)
	assert.Equal(t, inside, found[0])
}

func TestIndexEmpty(t *testing.T) {
	ix := NewIndex(testBound())
	assert.Nil(t, ix.Nearest(orb.Point{5, 5}))
	assert.Empty(t, ix.InBound(testBound()))
}
