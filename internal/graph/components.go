package graph

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Component is a set of vertices reachable from its first vertex, listed in
// depth-first visiting order.
type Component []VertexID

// Components partitions the keys of adj into components. Every key that
// hasn't been visited yet starts a new depth-first search that follows
// outgoing edges only, so a component holds what its start can reach and
// nothing an earlier component already claimed.
func Components(adj *Adjacency) []Component {
	visited := roaring.New()

	var components []Component
	for _, v := range adj.Keys() {
		if visited.Contains(uint32(v)) {
			continue
		}
		components = append(components, adj.reach(v, visited))
	}

	return components
}

// reach is an iterative depth-first search from start. Neighbours are pushed
// in reverse so they're visited in the same order a recursive search would.
func (a *Adjacency) reach(start VertexID, visited *roaring.Bitmap) Component {
	stack := arraystack.New()
	stack.Push(start)

	var component Component
	for !stack.Empty() {
		top, _ := stack.Pop()
		v := top.(VertexID)
		if !visited.CheckedAdd(uint32(v)) {
			continue
		}
		component = append(component, v)

		out := a.out[v]
		for i := len(out) - 1; i >= 0; i-- {
			if !visited.Contains(uint32(out[i])) {
				stack.Push(out[i])
			}
		}
	}

	return component
}
