package graph

// Edge is a directed transition between two (k-1)-mers.
type Edge struct {
	Source      VertexID
	Destination VertexID
}

// EdgeTable counts how often each distinct Edge is observed. Edges are
// remembered in first-seen order so draining is deterministic.
type EdgeTable struct {
	counts map[Edge]uint32
	order  []Edge
}

// NewEdgeTable returns an empty EdgeTable.
func NewEdgeTable() *EdgeTable {
	return &EdgeTable{counts: make(map[Edge]uint32)}
}

// Add records one occurrence of src -> dst.
func (t *EdgeTable) Add(src, dst VertexID) {
	e := Edge{Source: src, Destination: dst}
	if c, ok := t.counts[e]; ok {
		t.counts[e] = c + 1
		return
	}

	t.counts[e] = 1
	t.order = append(t.order, e)
}

// Count is the number of times src -> dst was added.
func (t *EdgeTable) Count(src, dst VertexID) uint32 {
	return t.counts[Edge{Source: src, Destination: dst}]
}

// Len is the number of distinct edges.
func (t *EdgeTable) Len() int {
	return len(t.order)
}

// Drain calls fn for every distinct edge, in first-seen order, with its
// occurrence count. Each edge is removed as it's visited and the table is
// empty and unusable afterwards.
func (t *EdgeTable) Drain(fn func(e Edge, count uint32)) {
	for i, e := range t.order {
		fn(e, t.counts[e])
		delete(t.counts, e)
		t.order[i] = Edge{}
	}

	t.order = nil
	t.counts = nil
}
