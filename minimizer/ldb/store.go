// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/pangraph/graphindex/common"
)

// Store is a disk-backed multimap from kmer fingerprints to packed graph
// positions, for indexes that outgrow memory during construction. Each
// key/position pair is one LevelDB key with an empty value; LevelDB's
// lexicographic key order yields deduplicated, ascending position lists
// for free.
type Store struct {
	db *leveldb.DB
}

// positionTable is the table space prefix of the key/position entries.
const positionTable = byte('P')

// Open opens or creates a store in the given directory.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Add records the position for the key. Adding the sentinel key or the
// sentinel position is a no-op, as is adding a pair that is already present.
func (s *Store) Add(key common.Key64, pos common.Position) error {
	if key == common.NoKey || pos == common.NoValue {
		return nil
	}
	dbKey := toDBKey(key, pos)
	return s.db.Put(dbKey[:], nil, nil)
}

// Remove removes a single key/position entry.
func (s *Store) Remove(key common.Key64, pos common.Position) error {
	dbKey := toDBKey(key, pos)
	return s.db.Delete(dbKey[:], nil)
}

// RemoveAll removes all entries with the given key.
func (s *Store) RemoveAll(key common.Key64) error {
	keyRange := rangeForKey(key)
	iter := s.db.NewIterator(&keyRange, nil)
	defer iter.Release()

	for iter.Next() {
		if err := s.db.Delete(iter.Key(), nil); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Positions returns all positions recorded for the key, in ascending order
// of their packed form.
func (s *Store) Positions(key common.Key64) ([]common.Position, error) {
	if key == common.NoKey {
		return nil, nil
	}
	keyRange := rangeForKey(key)
	iter := s.db.NewIterator(&keyRange, nil)
	defer iter.Release()

	var result []common.Position
	for iter.Next() {
		result = append(result, positionOfDBKey(iter.Key()))
	}
	return result, iter.Error()
}

// ForEach applies the callback to every position recorded for the key,
// in ascending order.
func (s *Store) ForEach(key common.Key64, callback func(common.Position)) error {
	keyRange := rangeForKey(key)
	iter := s.db.NewIterator(&keyRange, nil)
	defer iter.Release()

	for iter.Next() {
		callback(positionOfDBKey(iter.Key()))
	}
	return iter.Error()
}

// Flush the store
func (s *Store) Flush() error {
	return nil // no-op, writes are synchronous
}

// Close the store
func (s *Store) Close() error {
	return s.db.Close()
}

func rangeForKey(key common.Key64) util.Range {
	// The limit is exclusive, so it starts at the next fingerprint.
	var start, limit [17]byte
	putDBKeyPrefix(start[:], key)
	putDBKeyPrefix(limit[:], key+1)
	return util.Range{Start: start[:], Limit: limit[:9]}
}
