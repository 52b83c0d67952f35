package graph

import (
	"testing"

	"github.com/pangraph/graphindex/common"
)

func TestHandlePacking(t *testing.T) {
	h := NewHandle(42, false)
	if h.ID() != 42 || h.IsReverse() {
		t.Errorf("wrong forward handle: id %d, reverse %t", h.ID(), h.IsReverse())
	}
	r := h.Flip()
	if r.ID() != 42 || !r.IsReverse() {
		t.Errorf("wrong flipped handle: id %d, reverse %t", r.ID(), r.IsReverse())
	}
	if r.Flip() != h {
		t.Errorf("double flip is not the identity")
	}
	if uint64(h) != 84 || uint64(r) != 85 {
		t.Errorf("wrong packed encoding: got %d and %d, want 84 and 85", uint64(h), uint64(r))
	}
}

func TestMemoryGraphNodes(t *testing.T) {
	g := NewMemoryGraph()
	if g.NodeCount() != 0 || g.MinNodeID() != 0 || g.MaxNodeID() != 0 {
		t.Fatalf("empty graph reports nodes")
	}
	g.AddNode(3, []byte("GATT"))
	g.AddNode(1, []byte("ACA"))
	g.AddNode(2, []byte("T"))
	g.AddNode(0, []byte("CCC")) // ignored

	if g.NodeCount() != 3 {
		t.Errorf("wrong node count: got %d, want 3", g.NodeCount())
	}
	if g.MinNodeID() != 1 || g.MaxNodeID() != 3 {
		t.Errorf("wrong id range: got [%d, %d], want [1, 3]", g.MinNodeID(), g.MaxNodeID())
	}

	var visited []common.NodeID
	g.ForEachHandle(func(h Handle) bool {
		if h.IsReverse() {
			t.Errorf("iteration produced a reverse handle")
		}
		visited = append(visited, h.ID())
		return true
	})
	if len(visited) != 3 || visited[0] != 1 || visited[1] != 2 || visited[2] != 3 {
		t.Errorf("wrong iteration order: got %v", visited)
	}
}

func TestMemoryGraphIterationCanStop(t *testing.T) {
	g := NewMemoryGraph()
	g.AddNode(1, nil)
	g.AddNode(2, nil)
	count := 0
	g.ForEachHandle(func(Handle) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("iteration did not stop: visited %d nodes", count)
	}
}

func TestMemoryGraphEdges(t *testing.T) {
	g := NewMemoryGraph()
	g.AddNode(1, []byte("A"))
	g.AddNode(2, []byte("C"))
	g.AddNode(3, []byte("G"))
	g.AddEdge(NewHandle(1, false), NewHandle(2, false))
	g.AddEdge(NewHandle(1, false), NewHandle(3, false))
	g.AddEdge(NewHandle(1, false), NewHandle(2, false)) // duplicate

	var successors []Handle
	g.FollowEdges(NewHandle(1, false), false, func(next Handle) bool {
		successors = append(successors, next)
		return true
	})
	if len(successors) != 2 || successors[0] != NewHandle(2, false) || successors[1] != NewHandle(3, false) {
		t.Errorf("wrong successors of node 1: got %v", successors)
	}

	// The implied reverse edge makes node 1 a predecessor of node 2.
	var predecessors []Handle
	g.FollowEdges(NewHandle(2, false), true, func(prev Handle) bool {
		predecessors = append(predecessors, prev)
		return true
	})
	if len(predecessors) != 1 || predecessors[0] != NewHandle(1, false) {
		t.Errorf("wrong predecessors of node 2: got %v", predecessors)
	}

	// Following the reverse orientation of node 2 reaches the flip of node 1.
	var fromReverse []Handle
	g.FollowEdges(NewHandle(2, true), false, func(next Handle) bool {
		fromReverse = append(fromReverse, next)
		return true
	})
	if len(fromReverse) != 1 || fromReverse[0] != NewHandle(1, true) {
		t.Errorf("wrong successors of the reverse of node 2: got %v", fromReverse)
	}
}

func TestMemoryGraphSequences(t *testing.T) {
	g := NewMemoryGraph()
	g.AddNode(1, []byte("GATTACA"))
	if got := string(g.Sequence(NewHandle(1, false))); got != "GATTACA" {
		t.Errorf("wrong forward sequence: got %s", got)
	}
	if got := string(g.Sequence(NewHandle(1, true))); got != "TGTAATC" {
		t.Errorf("wrong reverse sequence: got %s", got)
	}
}
