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

import "github.com/pangraph/graphindex/common"

// Minimizer is one minimizer occurrence in a sequence. Key is the packed
// kmer in the orientation with the smaller hash; Hash is its Wang hash,
// which defines the minimum within a window. For a forward minimizer the
// offset is the position of the first base of the kmer; for a reverse
// minimizer it is the position of the last base, so that the offset maps
// to the start of the kmer on the reverse strand.
type Minimizer struct {
	Key       common.Key64
	Hash      uint64
	Offset    uint32
	IsReverse bool
}

// NewMinimizer builds a minimizer record for a known key.
func NewMinimizer(key common.Key64, offset uint32, isReverse bool) Minimizer {
	return Minimizer{Key: key, Hash: key.Hash(), Offset: offset, IsReverse: isReverse}
}

// Minimizers enumerates all minimizers of the sequence in increasing order
// of kmer start; as reverse minimizers report their last base, the
// reported offsets are not necessarily sorted. Each window of W consecutive kmers contributes its
// hash-minimum kmer; a minimum shared by consecutive windows is reported
// once, at its leftmost occurrence. Invalid bases reset kmer accumulation
// and contribute no minimizers.
func (idx *Index) Minimizers(seq []byte) []Minimizer {
	var result []Minimizer
	windowLength := idx.k + idx.w - 1
	if len(seq) < windowLength {
		return result
	}

	// Monotone queue of window candidates: hashes are non-decreasing from
	// the front, so the front is always the minimum and ties keep their
	// leftmost occurrence.
	var buffer []Minimizer
	validChars, startPos := 0, uint32(0)
	var forward, reverse common.Key64
	mask := common.KeyMask(idx.k)
	shift := uint(2 * (idx.k - 1))

	for i := 0; i < len(seq); i++ {
		code, ok := common.PackBase(seq[i])
		if ok {
			forward = ((forward << 2) | common.Key64(code)) & mask
			reverse = (reverse >> 2) | (common.Key64(common.ComplementCode(code)) << shift)
			validChars++
		} else {
			forward, reverse, validChars = 0, 0, 0
		}

		// Candidates that fell out of the window expire at the front.
		if len(buffer) > 0 && buffer[0].Offset+uint32(idx.w) <= startPos {
			buffer = buffer[1:]
		}
		if validChars >= idx.k {
			m := pick(forward, reverse, startPos)
			for len(buffer) > 0 && buffer[len(buffer)-1].Hash > m.Hash {
				buffer = buffer[:len(buffer)-1]
			}
			buffer = append(buffer, m)
		}
		if i+1 >= idx.k {
			startPos++
		}

		// A full window reports its minimum unless it was already reported.
		if i+1 >= windowLength && len(buffer) > 0 {
			front := buffer[0]
			if n := len(result); n == 0 || result[n-1].Offset != front.Offset || result[n-1].IsReverse != front.IsReverse {
				result = append(result, front)
			}
		}
	}

	flipReverseOffsets(result, idx.k)
	return result
}

// LeftmostMinimizer returns the single minimizer of the whole sequence:
// the kmer with the smallest hash, at its leftmost occurrence. The second
// return value is false when the sequence contains no valid kmer.
func (idx *Index) LeftmostMinimizer(seq []byte) (Minimizer, bool) {
	best := Minimizer{Key: common.NoKey}
	found := false
	validChars, startPos := 0, uint32(0)
	var forward, reverse common.Key64
	mask := common.KeyMask(idx.k)
	shift := uint(2 * (idx.k - 1))

	for i := 0; i < len(seq); i++ {
		code, ok := common.PackBase(seq[i])
		if ok {
			forward = ((forward << 2) | common.Key64(code)) & mask
			reverse = (reverse >> 2) | (common.Key64(common.ComplementCode(code)) << shift)
			validChars++
		} else {
			forward, reverse, validChars = 0, 0, 0
		}
		if validChars >= idx.k {
			m := pick(forward, reverse, startPos)
			if !found || m.Hash < best.Hash || (m.Hash == best.Hash && m.Key < best.Key) {
				best = m
				found = true
			}
		}
		if i+1 >= idx.k {
			startPos++
		}
	}

	if found && best.IsReverse {
		best.Offset += uint32(idx.k) - 1
	}
	return best, found
}

// pick selects the orientation with the smaller hash for the kmer
// starting at the given offset.
func pick(forward, reverse common.Key64, offset uint32) Minimizer {
	forwardHash, reverseHash := forward.Hash(), reverse.Hash()
	if reverseHash < forwardHash {
		return Minimizer{Key: reverse, Hash: reverseHash, Offset: offset, IsReverse: true}
	}
	return Minimizer{Key: forward, Hash: forwardHash, Offset: offset, IsReverse: false}
}

// The sliding window tracks kmers by their start offset regardless of
// orientation; reverse minimizers are mapped to their last base only when
// the enumeration is done.
func flipReverseOffsets(minimizers []Minimizer, k int) {
	for i := range minimizers {
		if minimizers[i].IsReverse {
			minimizers[i].Offset += uint32(k) - 1
		}
	}
}
