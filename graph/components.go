package graph

import (
	"github.com/RoaringBitmap/roaring/roaring64"

	"github.com/pangraph/graphindex/common"
)

// WeaklyConnectedComponents decomposes the graph into components that are
// connected when edge directions are ignored. Components are emitted in the
// iteration order of ForEachHandle; within a component, node ids appear in
// the order the depth-first search discovers them.
func WeaklyConnectedComponents(g HandleGraph) [][]common.NodeID {
	minID := g.MinNodeID()

	var components [][]common.NodeID
	found := roaring64.New()
	g.ForEachHandle(func(start Handle) bool {
		if found.Contains(uint64(start.ID() - minID)) {
			return true
		}
		var component []common.NodeID
		stack := []Handle{start}
		for len(stack) > 0 {
			h := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			id := h.ID()
			if found.Contains(uint64(id - minID)) {
				continue
			}
			found.Add(uint64(id - minID))
			component = append(component, id)
			push := func(next Handle) bool {
				stack = append(stack, next)
				return true
			}
			g.FollowEdges(h, false, push)
			g.FollowEdges(h, true, push)
		}
		components = append(components, component)
		return true
	})

	return components
}
