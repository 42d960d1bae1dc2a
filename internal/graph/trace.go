package graph

import "github.com/emirpasic/gods/stacks/arraystack"

// Path is a walk through the graph in the order Trace produced it, which
// is the reverse of the walking order.
type Path []VertexID

// Walk returns a copy of the path in walking order.
func (p Path) Walk() []VertexID {
	walk := make([]VertexID, len(p))
	for i, v := range p {
		walk[len(p)-1-i] = v
	}
	return walk
}

// StartVertex picks where to trace a component from: its first vertex with
// an outgoing edge, or its first vertex if none has one.
func StartVertex(adj *Adjacency, component Component) VertexID {
	for _, v := range component {
		if adj.OutDegree(v) > 0 {
			return v
		}
	}
	return component[0]
}

// Trace walks adj from start with Hierholzer's algorithm on an explicit
// stack. While the vertex on top of the stack has an unused edge, the
// edge's destination is popped off the vertex's list and pushed onto the
// stack; once it has none it's moved to the path. Every edge Trace uses is
// removed from adj, so no later trace can use it again.
//
// The returned path is in reverse walking order. consumed is the number of
// edges removed from adj.
func Trace(adj *Adjacency, start VertexID) (path Path, consumed int) {
	stack := arraystack.New()
	stack.Push(start)

	for !stack.Empty() {
		top, _ := stack.Peek()
		v := top.(VertexID)

		if next, ok := adj.pop(v); ok {
			stack.Push(next)
			consumed++
			continue
		}

		stack.Pop()
		path = append(path, v)
	}

	return path, consumed
}
