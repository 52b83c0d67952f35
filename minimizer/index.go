// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package minimizer

import (
	"sort"

	"github.com/pangraph/graphindex/common"
)

const (
	// DefaultK is the default kmer length.
	DefaultK = 21

	// DefaultW is the default window length in kmers.
	DefaultW = 11

	// initialCapacity is the initial number of hash table slots.
	initialCapacity = 1024

	// maxLoadFactor is the occupancy threshold that triggers a rehash.
	maxLoadFactor = 0.77
)

// cell is one slot of the open-addressing table. A singleton cell stores
// the only position of its key inline; a multi cell stores an index into
// the value-list arena instead. Indices rather than pointers keep rehash
// and serialization trivial.
type cell struct {
	key   common.Key64
	value uint64
	multi bool
}

// Index is a minimizer index: an open-addressing hash table mapping kmer
// fingerprints to sets of packed graph positions. Construction is
// single-threaded; once built, the index supports concurrent read-only
// queries.
type Index struct {
	k, w int

	cells []cell
	lists [][]common.Position

	size       int // number of occupied cells
	values     int // total number of positions stored
	uniqueKeys int // number of cells in singleton shape
	maxKeys    int // rehash threshold
}

// New creates an empty index for the given kmer and window lengths.
// The kmer length is clamped to [1, KmerMaxLength] and the window length
// to at least 1.
func New(k, w int) *Index {
	if k < 1 {
		k = 1
	}
	if k > common.KmerMaxLength {
		k = common.KmerMaxLength
	}
	if w < 1 {
		w = 1
	}
	idx := &Index{k: k, w: w}
	idx.clear()
	return idx
}

// NewDefault creates an empty index with the default parameters.
func NewDefault() *Index {
	return New(DefaultK, DefaultW)
}

// clear resets the index to its initial empty state, keeping the parameters.
func (idx *Index) clear() {
	idx.cells = make([]cell, initialCapacity)
	for i := range idx.cells {
		idx.cells[i].key = common.NoKey
	}
	idx.lists = nil
	idx.size = 0
	idx.values = 0
	idx.uniqueKeys = 0
	idx.maxKeys = int(maxLoadFactor * float64(len(idx.cells)))
}

// K returns the kmer length.
func (idx *Index) K() int { return idx.k }

// W returns the window length in kmers.
func (idx *Index) W() int { return idx.w }

// Size returns the number of distinct keys in the index.
func (idx *Index) Size() int { return idx.size }

// Values returns the total number of positions stored.
func (idx *Index) Values() int { return idx.values }

// UniqueKeys returns the number of keys with exactly one position.
func (idx *Index) UniqueKeys() int { return idx.uniqueKeys }

// MaxKeys returns the number of keys the index can hold before growing.
func (idx *Index) MaxKeys() int { return idx.maxKeys }

// Copy returns a deep copy of the index.
func (idx *Index) Copy() *Index {
	result := &Index{
		k:          idx.k,
		w:          idx.w,
		cells:      make([]cell, len(idx.cells)),
		lists:      make([][]common.Position, len(idx.lists)),
		size:       idx.size,
		values:     idx.values,
		uniqueKeys: idx.uniqueKeys,
		maxKeys:    idx.maxKeys,
	}
	copy(result.cells, idx.cells)
	for i, list := range idx.lists {
		result.lists[i] = make([]common.Position, len(list))
		copy(result.lists[i], list)
	}
	return result
}

// Swap exchanges the contents of two indexes.
func (idx *Index) Swap(other *Index) {
	*idx, *other = *other, *idx
}

// Insert associates the position with the minimizer's key. Inserting the
// sentinel key or the sentinel position is a no-op, as is inserting an
// already present key/position pair.
func (idx *Index) Insert(m Minimizer, pos common.Position) {
	if m.Key == common.NoKey || pos == common.NoValue {
		return
	}

	offset := idx.probe(m.Key, m.Hash)
	c := &idx.cells[offset]
	if c.key == common.NoKey {
		idx.cells[offset] = cell{key: m.Key, value: uint64(pos)}
		idx.size++
		idx.values++
		idx.uniqueKeys++
		if idx.size > idx.maxKeys {
			idx.rehash()
		}
		return
	}

	if !c.multi {
		stored := common.Position(c.value)
		if stored == pos {
			return
		}
		list := []common.Position{stored, pos}
		if list[1] < list[0] {
			list[0], list[1] = list[1], list[0]
		}
		idx.lists = append(idx.lists, list)
		c.value = uint64(len(idx.lists) - 1)
		c.multi = true
		idx.values++
		idx.uniqueKeys--
		return
	}

	list := idx.lists[c.value]
	at := sort.Search(len(list), func(i int) bool { return list[i] >= pos })
	if at < len(list) && list[at] == pos {
		return
	}
	list = append(list, common.NoValue)
	copy(list[at+1:], list[at:])
	list[at] = pos
	idx.lists[c.value] = list
	idx.values++
}

// Find returns the positions associated with the minimizer's key in
// ascending order of their packed form. The result is a copy; it stays
// valid across later insertions.
func (idx *Index) Find(m Minimizer) []common.Position {
	if m.Key == common.NoKey {
		return nil
	}
	offset := idx.probe(m.Key, m.Hash)
	c := &idx.cells[offset]
	if c.key == common.NoKey {
		return nil
	}
	if !c.multi {
		return []common.Position{common.Position(c.value)}
	}
	list := idx.lists[c.value]
	result := make([]common.Position, len(list))
	copy(result, list)
	return result
}

// Equal reports whether two indexes have the same parameters and represent
// the same mapping from keys to position sets. The slot permutation of the
// underlying tables is not part of the identity.
func (idx *Index) Equal(other *Index) bool {
	if idx.k != other.k || idx.w != other.w {
		return false
	}
	if idx.size != other.size || idx.values != other.values || idx.uniqueKeys != other.uniqueKeys {
		return false
	}
	for i := range idx.cells {
		c := &idx.cells[i]
		if c.key == common.NoKey {
			continue
		}
		mine := idx.positions(c)
		theirs := other.Find(Minimizer{Key: c.key, Hash: c.key.Hash()})
		if len(mine) != len(theirs) {
			return false
		}
		for j := range mine {
			if mine[j] != theirs[j] {
				return false
			}
		}
	}
	return true
}

// positions returns the position list of a cell without copying.
func (idx *Index) positions(c *cell) []common.Position {
	if !c.multi {
		return []common.Position{common.Position(c.value)}
	}
	return idx.lists[c.value]
}

// probe finds the slot of the key, or the empty slot where it would be
// inserted. Capacity is a power of two; probing is linear with step one.
func (idx *Index) probe(key common.Key64, hash uint64) int {
	mask := uint64(len(idx.cells) - 1)
	offset := hash & mask
	for {
		c := &idx.cells[offset]
		if c.key == common.NoKey || c.key == key {
			return int(offset)
		}
		offset = (offset + 1) & mask
	}
}

// rehash doubles the capacity and re-probes every cell into the new table.
// Value lists stay in the arena; only the cells move.
func (idx *Index) rehash() {
	old := idx.cells
	idx.cells = make([]cell, 2*len(old))
	for i := range idx.cells {
		idx.cells[i].key = common.NoKey
	}
	idx.maxKeys = int(maxLoadFactor * float64(len(idx.cells)))
	for i := range old {
		if old[i].key == common.NoKey {
			continue
		}
		offset := idx.probe(old[i].key, old[i].key.Hash())
		idx.cells[offset] = old[i]
	}
}
