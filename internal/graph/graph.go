// Package graph builds a De Bruijn graph from reads and walks it.
//
// The graph is built in stages that hand ownership forward: a Builder
// registers (k-1)-mers and counts edges, Finish moves the vertex labels and
// the edge table out of it, BuildAdjacency drains the edge table into an
// Adjacency, and Trace consumes that Adjacency edge by edge.
package graph

import "github.com/pkg/errors"

// VertexID is the dense ID of a (k-1)-mer. IDs are handed out in
// first-seen order starting at 0.
type VertexID uint32

var (
	// ErrReadTooShort is returned when a read is shorter than k
	ErrReadTooShort = errors.New("k-mer size is larger than the read length")

	// ErrEmptyGraph is returned when no adjacency entries exist after ingestion
	ErrEmptyGraph = errors.New("adjacency list is empty")

	// ErrInvalidK is returned for a k-mer size that can't produce an edge
	ErrInvalidK = errors.New("k must be at least 2")

	// ErrFinished is returned when a read is added after Finish
	ErrFinished = errors.New("builder is finished")
)
