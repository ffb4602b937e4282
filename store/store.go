// Package store persists geometries in leveldb, keyed by int64 ID, using a
// compact truncated-float binary codec. Writes can be batched and flushed
// in the caller's rhythm; bitmasks record which kind each stored ID holds.
package store

import (
	"fmt"
	"log"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// Store is a leveldb-backed geometry store.
type Store struct {
	db    *leveldb.DB
	Masks *BitmaskMap
}

// Open opens (creating if necessary) a store at the given directory.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %q: %w", path, err)
	}
	return &Store{db: db, Masks: NewBitmaskMap()}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Queue adds a geometry write to a batch without touching the database.
func (s *Store) Queue(batch *leveldb.Batch, id int64, g orb.Geometry) error {
	val, err := encodeGeometry(g)
	if err != nil {
		return err
	}
	batch.Put(geometryKey(id), val)
	s.mask(g).Insert(id)
	return nil
}

// QueueRefs adds a way's node ID list to a batch. Ref keys are prefixed with
// 'W' to keep them apart from geometry IDs.
func (s *Store) QueueRefs(batch *leveldb.Batch, id int64, refs []int64) {
	batch.Put(refsKey(id), encodeRefs(refs))
	s.Masks.WayRefs.Insert(id)
}

// Flush writes a batch to the database and resets it.
func (s *Store) Flush(batch *leveldb.Batch, sync bool) error {
	writeOpts := &opt.WriteOptions{
		NoWriteMerge: true,
		Sync:         sync,
	}
	if err := s.db.Write(batch, writeOpts); err != nil {
		return err
	}
	batch.Reset()
	return nil
}

// Put stores a single geometry immediately.
func (s *Store) Put(id int64, g orb.Geometry) error {
	val, err := encodeGeometry(g)
	if err != nil {
		return err
	}
	if err := s.db.Put(geometryKey(id), val, nil); err != nil {
		return err
	}
	s.mask(g).Insert(id)
	return nil
}

// Get returns the geometry stored under the ID.
func (s *Store) Get(id int64) (orb.Geometry, error) {
	data, err := s.db.Get(geometryKey(id), nil)
	if err != nil {
		log.Println("[warn] fetch failed for geometry ID:", id)
		return nil, err
	}
	return decodeGeometry(data)
}

// GetPoint is Get for callers that know the ID holds a point.
func (s *Store) GetPoint(id int64) (orb.Point, error) {
	g, err := s.Get(id)
	if err != nil {
		return orb.Point{}, err
	}
	p, ok := g.(orb.Point)
	if !ok {
		return orb.Point{}, fmt.Errorf("geometry %d is a %T, not a point", id, g)
	}
	return p, nil
}

// GetRefs returns the node ID list stored for a way.
func (s *Store) GetRefs(id int64) ([]int64, error) {
	data, err := s.db.Get(refsKey(id), nil)
	if err != nil {
		log.Println("[warn] lookup failed for way:", id, "noderefs not found")
		return nil, err
	}
	return decodeRefs(data), nil
}

// GetRefPoints resolves a way's node ID list to the stored points, in order.
func (s *Store) GetRefPoints(id int64) ([]orb.Point, error) {
	refs, err := s.GetRefs(id)
	if err != nil {
		return nil, err
	}
	points := make([]orb.Point, 0, len(refs))
	for _, ref := range refs {
		p, err := s.GetPoint(ref)
		if err != nil {
			log.Println("[warn] denormalize failed for way:", id, "node not found:", ref)
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func (s *Store) mask(g orb.Geometry) *Bitmask {
	switch g.(type) {
	case orb.LineString:
		return s.Masks.Lines
	case orb.Polygon:
		return s.Masks.Polygons
	default:
		return s.Masks.Points
	}
}

func geometryKey(id int64) []byte {
	return []byte(strconv.FormatInt(id, 10))
}

func refsKey(id int64) []byte {
	return []byte("W" + strconv.FormatInt(id, 10))
}
