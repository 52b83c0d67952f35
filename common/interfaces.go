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

// Serializer converts a value into its fixed-width binary form and back.
type Serializer[T any] interface {
	// ToBytes returns the binary form of the value.
	ToBytes(T) []byte

	// CopyBytes writes the binary form into the given slice,
	// which must be at least Size() bytes long.
	CopyBytes(T, []byte)

	// FromBytes restores a value from its binary form.
	FromBytes([]byte) T

	// Size returns the length of the binary form in bytes.
	Size() int
}

// Hasher hashes values of the given type.
type Hasher[K any] interface {
	Hash(*K) uint64
}
