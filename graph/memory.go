package graph

import (
	"golang.org/x/exp/slices"

	"github.com/pangraph/graphindex/common"
)

// MemoryGraph is a mutable in-memory bidirected sequence graph. Nodes are
// iterated in ascending id order and neighbour lists are kept sorted by
// packed handle value, so all traversals are deterministic.
type MemoryGraph struct {
	sequences map[common.NodeID][]byte
	edges     map[Handle][]Handle
	ids       []common.NodeID // sorted
}

// NewMemoryGraph creates an empty graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		sequences: make(map[common.NodeID][]byte),
		edges:     make(map[Handle][]Handle),
	}
}

// AddNode adds a node with the given sequence. Adding an existing id
// replaces its sequence. Id 0 is ignored as it cannot be encoded in a
// packed position.
func (g *MemoryGraph) AddNode(id common.NodeID, sequence []byte) {
	if id == 0 {
		return
	}
	if _, exists := g.sequences[id]; !exists {
		pos, _ := slices.BinarySearch(g.ids, id)
		g.ids = slices.Insert(g.ids, pos, id)
	}
	g.sequences[id] = sequence
}

// AddEdge adds the edge from one oriented handle to another, together with
// its implied reverse complement edge. Duplicate edges are ignored.
func (g *MemoryGraph) AddEdge(from, to Handle) {
	g.addHalfEdge(from, to)
	g.addHalfEdge(to.Flip(), from.Flip())
}

func (g *MemoryGraph) addHalfEdge(from, to Handle) {
	neighbours := g.edges[from]
	pos, found := slices.BinarySearch(neighbours, to)
	if found {
		return
	}
	g.edges[from] = slices.Insert(neighbours, pos, to)
}

func (g *MemoryGraph) MinNodeID() common.NodeID {
	if len(g.ids) == 0 {
		return 0
	}
	return g.ids[0]
}

func (g *MemoryGraph) MaxNodeID() common.NodeID {
	if len(g.ids) == 0 {
		return 0
	}
	return g.ids[len(g.ids)-1]
}

func (g *MemoryGraph) NodeCount() int {
	return len(g.ids)
}

func (g *MemoryGraph) GetHandle(id common.NodeID, reverse bool) Handle {
	return NewHandle(id, reverse)
}

func (g *MemoryGraph) ForEachHandle(fn func(Handle) bool) {
	for _, id := range g.ids {
		if !fn(NewHandle(id, false)) {
			return
		}
	}
}

func (g *MemoryGraph) FollowEdges(h Handle, goLeft bool, fn func(Handle) bool) {
	if goLeft {
		// Predecessors of h are the successors of its flip, flipped back.
		for _, next := range g.edges[h.Flip()] {
			if !fn(next.Flip()) {
				return
			}
		}
		return
	}
	for _, next := range g.edges[h] {
		if !fn(next) {
			return
		}
	}
}

// Sequence returns the node sequence in the orientation of the handle.
func (g *MemoryGraph) Sequence(h Handle) []byte {
	seq := g.sequences[h.ID()]
	if h.IsReverse() {
		return common.ReverseComplement(seq)
	}
	return seq
}
