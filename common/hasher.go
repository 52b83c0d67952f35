// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// WangHash is Thomas Wang's 64-bit integer mixing function. It defines the
// canonical ordering of kmer fingerprints: minimizer selection compares
// hashes, not raw keys, so that minimizers spread evenly over the sequence.
func WangHash(key uint64) uint64 {
	key = (^key) + (key << 21) // key = (key << 21) - key - 1
	key = key ^ (key >> 24)
	key = (key + (key << 3)) + (key << 8) // key * 265
	key = key ^ (key >> 14)
	key = (key + (key << 2)) + (key << 4) // key * 21
	key = key ^ (key >> 28)
	key = key + (key << 31)
	return key
}

// Hash mixes the packed kmer into its comparison order.
func (k Key64) Hash() uint64 {
	return WangHash(uint64(k))
}

// Key64Hasher is a Hasher of the Key64 type.
type Key64Hasher struct{}

func (h Key64Hasher) Hash(k *Key64) uint64 {
	return WangHash(uint64(*k))
}
