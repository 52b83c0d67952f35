package graph

import (
	"sync"
	"testing"

	"github.com/pangraph/graphindex/common"
)

func TestParallelIterationVisitsEveryNode(t *testing.T) {
	g := NewMemoryGraph()
	for id := common.NodeID(1); id <= 100; id++ {
		g.AddNode(id, []byte("A"))
	}

	var mu sync.Mutex
	visited := map[common.NodeID]int{}
	ForEachHandleParallel(g, 4, func(h Handle) {
		mu.Lock()
		visited[h.ID()]++
		mu.Unlock()
	})

	if len(visited) != 100 {
		t.Fatalf("wrong number of visited nodes: got %d, want 100", len(visited))
	}
	for id, count := range visited {
		if count != 1 {
			t.Errorf("node %d visited %d times", id, count)
		}
	}
}

func TestParallelIterationWithDefaultWorkers(t *testing.T) {
	g := NewMemoryGraph()
	g.AddNode(1, []byte("A"))

	done := false
	var mu sync.Mutex
	ForEachHandleParallel(g, 0, func(Handle) {
		mu.Lock()
		done = true
		mu.Unlock()
	})
	if !done {
		t.Errorf("callback was not invoked")
	}
}
