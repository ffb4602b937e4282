package store

import (
	"sync"

	popcount "github.com/tmthrgd/go-popcount"
)

// Bitmask is a set of int64 IDs packed 64 per word, safe for concurrent use.
// The word map is exported so the mask can travel through gob.
type Bitmask struct {
	Words map[uint64]uint64
	mutex sync.RWMutex
}

// NewBitmask returns an empty mask.
func NewBitmask() *Bitmask {
	return &Bitmask{Words: make(map[uint64]uint64)}
}

// Has reports whether the ID is in the set.
func (b *Bitmask) Has(id int64) bool {
	v := uint64(id)
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return (b.Words[v/64] & (1 << (v % 64))) != 0
}

// Insert adds the ID to the set.
func (b *Bitmask) Insert(id int64) {
	v := uint64(id)
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.Words[v/64] |= 1 << (v % 64)
}

// Len returns the total number of IDs in the set.
func (b *Bitmask) Len() uint64 {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	words := make([]uint64, 0, len(b.Words))
	for _, w := range b.Words {
		words = append(words, w)
	}
	return popcount.CountSlice64(words)
}
