// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package graph

import "github.com/pangraph/graphindex/common"

// Handle is an oriented reference to a graph node, packed as id<<1 with the
// orientation flag in the lowest bit. The packed form doubles as the node
// encoding of path-index builders, so a handle sequence can be inserted into
// a builder without conversion.
type Handle uint64

// NewHandle packs a node id and an orientation into a handle.
func NewHandle(id common.NodeID, reverse bool) Handle {
	h := Handle(id) << 1
	if reverse {
		h |= 1
	}
	return h
}

// ID extracts the node identifier.
func (h Handle) ID() common.NodeID {
	return common.NodeID(h >> 1)
}

// IsReverse reports whether the handle refers to the reverse orientation.
func (h Handle) IsReverse() bool {
	return h&1 != 0
}

// Flip returns the handle for the opposite orientation of the same node.
func (h Handle) Flip() Handle {
	return h ^ 1
}

// HandleGraph is the read-only interface of a bidirected sequence graph.
// Implementations must enumerate nodes and edges deterministically; all
// callbacks return true to continue the iteration and false to stop it.
type HandleGraph interface {
	// MinNodeID returns the smallest node id of the graph.
	MinNodeID() common.NodeID

	// MaxNodeID returns the largest node id of the graph.
	MaxNodeID() common.NodeID

	// NodeCount returns the number of nodes.
	NodeCount() int

	// GetHandle returns the handle for the given node in the given orientation.
	GetHandle(id common.NodeID, reverse bool) Handle

	// ForEachHandle calls the callback with the forward handle of every node.
	ForEachHandle(fn func(Handle) bool)

	// FollowEdges enumerates the neighbours of the handle. With goLeft set
	// it visits the predecessors of the handle, otherwise its successors.
	FollowEdges(h Handle, goLeft bool, fn func(Handle) bool)
}

// SequenceGraph extends HandleGraph with access to node sequences.
type SequenceGraph interface {
	HandleGraph

	// Sequence returns the node sequence in the orientation of the handle.
	Sequence(h Handle) []byte
}
