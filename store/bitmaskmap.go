package store

import (
	"encoding/gob"
	"io"
	"os"
)

// BitmaskMap tracks which IDs are stored for each geometry kind, so
// membership can be answered without touching the database.
type BitmaskMap struct {
	Points   *Bitmask
	Lines    *Bitmask
	Polygons *Bitmask
	WayRefs  *Bitmask
}

// NewBitmaskMap returns a map with empty masks for every kind.
func NewBitmaskMap() *BitmaskMap {
	return &BitmaskMap{
		Points:   NewBitmask(),
		Lines:    NewBitmask(),
		Polygons: NewBitmask(),
		WayRefs:  NewBitmask(),
	}
}

// WriteTo gob-encodes the masks to the sink.
func (m *BitmaskMap) WriteTo(sink io.Writer) (int64, error) {
	return 0, gob.NewEncoder(sink).Encode(m)
}

// ReadFrom gob-decodes masks from the tap, replacing current contents.
func (m *BitmaskMap) ReadFrom(tap io.Reader) (int64, error) {
	return 0, gob.NewDecoder(tap).Decode(m)
}

// WriteToFile persists the masks to disk.
func (m *BitmaskMap) WriteToFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = m.WriteTo(file)
	return err
}

// ReadFromFile loads masks previously written with WriteToFile.
func (m *BitmaskMap) ReadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = m.ReadFrom(file)
	return err
}

// Stats returns the cardinality of each mask, keyed by kind.
func (m *BitmaskMap) Stats() map[string]uint64 {
	return map[string]uint64{
		"points":   m.Points.Len(),
		"lines":    m.Lines.Len(),
		"polygons": m.Polygons.Len(),
		"wayrefs":  m.WayRefs.Len(),
	}
}
