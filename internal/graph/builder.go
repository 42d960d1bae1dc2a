package graph

import "github.com/pkg/errors"

// windowStride is the step between sampled k-mer windows. Every other
// k-mer is sampled to cut the vertex and edge tables roughly in half.
const windowStride = 2

// Builder ingests reads into a vertex registry and an edge table.
type Builder struct {
	k        int
	reads    int
	vertices *Registry
	edges    *EdgeTable
}

// NewBuilder returns a Builder for k-mers of length k.
func NewBuilder(k int) (*Builder, error) {
	if k < 2 {
		return nil, errors.Wrapf(ErrInvalidK, "k=%d", k)
	}

	return &Builder{
		k:        k,
		vertices: NewRegistry(),
		edges:    NewEdgeTable(),
	}, nil
}

// K is the k-mer length of the builder.
func (b *Builder) K() int {
	return b.k
}

// AddRead splits a read into sampled k-mers. Each k-mer becomes an edge from
// its left (k-1)-mer to its right (k-1)-mer, and consecutive windows of the
// read are stitched together with an edge from the previous right (k-1)-mer
// to the current left one.
func (b *Builder) AddRead(seq string) error {
	if b.vertices == nil {
		return ErrFinished
	}

	if len(seq) < b.k {
		return errors.Wrapf(ErrReadTooShort, "read %d has length %d and k is %d", b.reads+1, len(seq), b.k)
	}

	var prevRight VertexID
	for j := 0; j < len(seq)-b.k+1; j += windowStride {
		left := b.vertices.Register(seq[j : j+b.k-1])
		right := b.vertices.Register(seq[j+1 : j+b.k])

		if j > 0 {
			b.edges.Add(prevRight, left)
		}
		b.edges.Add(left, right)

		prevRight = right
	}
	b.reads++

	return nil
}

// Reads is the number of reads ingested so far.
func (b *Builder) Reads() int {
	return b.reads
}

// Vertices is the number of distinct (k-1)-mers seen so far.
func (b *Builder) Vertices() int {
	if b.vertices == nil {
		return 0
	}
	return b.vertices.Len()
}

// Edges is the number of distinct edges seen so far.
func (b *Builder) Edges() int {
	if b.edges == nil {
		return 0
	}
	return b.edges.Len()
}

// Finish hands the vertex labels (indexed by VertexID) and the edge table
// to the caller. The builder keeps no reference to either and rejects any
// further reads.
func (b *Builder) Finish() (labels []string, edges *EdgeTable) {
	if b.vertices == nil {
		return nil, NewEdgeTable()
	}

	labels = b.vertices.Drain()
	edges = b.edges
	b.vertices = nil
	b.edges = nil

	return labels, edges
}

// Windows is the number of k-mer windows sampled from a read of length readLen.
func Windows(readLen, k int) int {
	if readLen < k {
		return 0
	}
	return (readLen - k + windowStride) / windowStride
}
