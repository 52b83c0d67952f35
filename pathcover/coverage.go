// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package pathcover

import (
	"golang.org/x/exp/slices"

	"github.com/pangraph/graphindex/common"
)

// Coverage is the scoring policy of the path cover. The planner always
// extends towards the candidate the policy gives priority to; replacing the
// policy changes what the cover optimizes for without touching the planner.
type Coverage interface {
	// No returns the coverage of a node or window no path has touched.
	No() uint64

	// Worst returns a coverage no candidate can be worse than.
	Worst() uint64

	// GivePriority reports whether coverage a should be preferred over b.
	GivePriority(a, b uint64) bool

	// Increase returns the coverage after one more path traversal.
	Increase(c uint64) uint64
}

// SimpleCoverage counts path traversals and prefers the smallest count.
type SimpleCoverage struct{}

func (SimpleCoverage) No() uint64                    { return 0 }
func (SimpleCoverage) Worst() uint64                 { return ^uint64(0) }
func (SimpleCoverage) GivePriority(a, b uint64) bool { return a < b }
func (SimpleCoverage) Increase(c uint64) uint64      { return c + 1 }

// NodeCoverage pairs a node with its coverage counter.
type NodeCoverage struct {
	ID       common.NodeID
	Coverage uint64
}

// FindFirst locates the entry of the given node in a coverage array sorted
// by id. The node must be present.
func FindFirst(array []NodeCoverage, id common.NodeID) int {
	at, _ := slices.BinarySearchFunc(array, id, func(nc NodeCoverage, id common.NodeID) int {
		if nc.ID < id {
			return -1
		}
		if nc.ID > id {
			return 1
		}
		return 0
	})
	return at
}
