package ldb

import (
	"encoding/binary"

	"github.com/pangraph/graphindex/common"
)

// Entries are keyed by table prefix, the kmer fingerprint and the packed
// position. Both integers are big-endian so that LevelDB's lexicographic
// order matches ascending numeric order.

func toDBKey(key common.Key64, pos common.Position) [17]byte {
	var dbKey [17]byte
	putDBKeyPrefix(dbKey[:], key)
	binary.BigEndian.PutUint64(dbKey[9:17], uint64(pos))
	return dbKey
}

func putDBKeyPrefix(out []byte, key common.Key64) {
	out[0] = positionTable
	binary.BigEndian.PutUint64(out[1:9], uint64(key))
}

func positionOfDBKey(dbKey []byte) common.Position {
	return common.Position(binary.BigEndian.Uint64(dbKey[9:17]))
}
