// Package osm turns OpenStreetMap PBF extracts into simple-feature
// geometries. Nodes become points, ways become linestrings or polygons
// depending on whether they close, and multipolygon relations are assembled
// from their member ways. Node coordinates are cached in the geometry store
// while the extract streams through.
package osm

import (
	"fmt"
	"io"
	"log"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/qedus/osmpbf"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/burakucncu/programming-in-geomatics/store"
)

// node writes queued between flushes
const batchSize = 50000

// Loader streams a PBF extract into geojson features.
type Loader struct {
	store      *store.Store
	conditions map[string][]string
	batch      *leveldb.Batch
	pending    int
}

// NewLoader returns a loader that emits features whose tags satisfy at
// least one condition group.
func NewLoader(s *store.Store, conditions map[string][]string) *Loader {
	return &Loader{
		store:      s,
		conditions: conditions,
		batch:      new(leveldb.Batch),
	}
}

// Run decodes the extract to completion, calling emit for every matching
// feature. PBF extracts order nodes before ways before relations, so node
// coordinates are always cached by the time a way references them.
func (l *Loader) Run(d *osmpbf.Decoder, emit func(*geojson.Feature)) error {
	for {
		v, err := d.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch v := v.(type) {
		case *osmpbf.Node:
			if err := l.onNode(v, emit); err != nil {
				return err
			}
		case *osmpbf.Way:
			if err := l.onWay(v, emit); err != nil {
				return err
			}
		case *osmpbf.Relation:
			if err := l.onRelation(v, emit); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown pbf element type %T", v)
		}
	}

	return l.flush()
}

func (l *Loader) onNode(node *osmpbf.Node, emit func(*geojson.Feature)) error {
	point := orb.Point{node.Lon, node.Lat}

	// every node is cached, ways may reference untagged ones
	if err := l.store.Queue(l.batch, node.ID, point); err != nil {
		return err
	}
	l.pending++
	if l.pending >= batchSize {
		if err := l.flush(); err != nil {
			return err
		}
	}

	if hasTags(node.Tags) && MatchesAny(node.Tags, l.conditions) {
		emit(newFeature(point, node.ID, "node", node.Tags))
	}
	return nil
}

func (l *Loader) onWay(way *osmpbf.Way, emit func(*geojson.Feature)) error {
	if err := l.flush(); err != nil {
		return err
	}

	l.store.QueueRefs(l.batch, way.ID, way.NodeIDs)

	if !hasTags(way.Tags) || !MatchesAny(way.Tags, l.conditions) {
		return nil
	}

	points := make([]orb.Point, 0, len(way.NodeIDs))
	for _, ref := range way.NodeIDs {
		p, err := l.store.GetPoint(ref)
		if err != nil {
			log.Println("[warn] denormalize failed for way:", way.ID, "node not found:", ref)
			return nil
		}
		points = append(points, p)
	}

	emit(newFeature(wayGeometry(points), way.ID, "way", way.Tags))
	return nil
}

func (l *Loader) onRelation(relation *osmpbf.Relation, emit func(*geojson.Feature)) error {
	if err := l.flush(); err != nil {
		return err
	}

	if relation.Tags["type"] != "multipolygon" {
		return nil
	}
	if !hasTags(relation.Tags) || !MatchesAny(relation.Tags, l.conditions) {
		return nil
	}

	polygon := l.assemblePolygon(relation)
	if polygon == nil {
		log.Println("[warn] no closed outer ring for relation:", relation.ID)
		return nil
	}

	emit(newFeature(polygon, relation.ID, "relation", relation.Tags))
	return nil
}

// assemblePolygon builds a polygon from the relation's member ways: the
// largest ring joined from outer members becomes the exterior, closed inner
// members become holes.
func (l *Loader) assemblePolygon(relation *osmpbf.Relation) orb.Polygon {
	var outers []orb.LineString
	var inners []orb.LineString

	for _, member := range relation.Members {
		if member.Type != osmpbf.WayType {
			continue
		}
		if member.Role != "outer" && member.Role != "inner" {
			continue
		}

		points, err := l.store.GetRefPoints(member.ID)
		if err != nil || len(points) < 2 {
			continue
		}

		if member.Role == "inner" {
			inners = append(inners, orb.LineString(points))
		} else {
			outers = append(outers, orb.LineString(points))
		}
	}

	exterior := LargestRing(ConnectRings(outers))
	if exterior == nil {
		return nil
	}

	polygon := orb.Polygon{exterior}
	for _, ring := range ConnectRings(inners) {
		polygon = append(polygon, ring)
	}
	return polygon
}

func (l *Loader) flush() error {
	if l.batch.Len() == 0 {
		return nil
	}
	l.pending = 0
	return l.store.Flush(l.batch, false)
}

// wayGeometry returns a polygon for a closed point sequence and a
// linestring otherwise.
func wayGeometry(points []orb.Point) orb.Geometry {
	ring := orb.Ring(points)
	if len(ring) > 3 && ring.Closed() {
		return orb.Polygon{ring}
	}
	return orb.LineString(points)
}

func newFeature(g orb.Geometry, id int64, kind string, tags map[string]string) *geojson.Feature {
	f := geojson.NewFeature(g)
	f.ID = id
	f.Properties["id"] = id
	f.Properties["type"] = kind
	f.Properties["tags"] = tags
	return f
}
