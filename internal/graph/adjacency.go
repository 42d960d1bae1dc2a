package graph

// Adjacency is the directed graph handed to the traversal stages. Each
// vertex key holds its outgoing destinations; tracing pops destinations off
// as it consumes them, so an Adjacency is also the traversal's work queue.
type Adjacency struct {
	order []VertexID
	out   map[VertexID][]VertexID
	edges int
}

// NewAdjacency returns an empty Adjacency.
func NewAdjacency() *Adjacency {
	return &Adjacency{out: make(map[VertexID][]VertexID)}
}

// BuildAdjacency drains edges into an Adjacency. One outgoing slot is created
// per distinct edge, whatever its occurrence count. Both ends of every edge
// become keys, in the order they're first seen.
func BuildAdjacency(edges *EdgeTable) (*Adjacency, error) {
	adj := NewAdjacency()
	edges.Drain(func(e Edge, _ uint32) {
		adj.AddEdge(e.Source, e.Destination)
	})

	if adj.Len() == 0 {
		return nil, ErrEmptyGraph
	}

	return adj, nil
}

// AddEdge appends dst to the outgoing list of src, adding keys for both.
func (a *Adjacency) AddEdge(src, dst VertexID) {
	a.ensure(src)
	a.ensure(dst)
	a.out[src] = append(a.out[src], dst)
	a.edges++
}

func (a *Adjacency) ensure(v VertexID) {
	if _, ok := a.out[v]; ok {
		return
	}
	a.out[v] = nil
	a.order = append(a.order, v)
}

// Keys returns the vertices of the graph in first-seen order.
func (a *Adjacency) Keys() []VertexID {
	return a.order
}

// Len is the number of vertex keys.
func (a *Adjacency) Len() int {
	return len(a.order)
}

// Has reports whether v is a key.
func (a *Adjacency) Has(v VertexID) bool {
	_, ok := a.out[v]
	return ok
}

// Out returns the remaining destinations of v. The slice is owned by the
// Adjacency and must not be modified.
func (a *Adjacency) Out(v VertexID) []VertexID {
	return a.out[v]
}

// OutDegree is the number of unconsumed outgoing edges of v.
func (a *Adjacency) OutDegree(v VertexID) int {
	return len(a.out[v])
}

// EdgeCount is the number of unconsumed edges left in the graph.
func (a *Adjacency) EdgeCount() int {
	return a.edges
}

// pop removes and returns the last outgoing destination of v.
func (a *Adjacency) pop(v VertexID) (VertexID, bool) {
	dsts := a.out[v]
	if len(dsts) == 0 {
		return 0, false
	}

	next := dsts[len(dsts)-1]
	a.out[v] = dsts[:len(dsts)-1]
	a.edges--

	return next, true
}
