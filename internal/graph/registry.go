package graph

import "strings"

// Registry assigns a dense VertexID to each distinct (k-1)-mer.
type Registry struct {
	ids map[string]VertexID
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]VertexID)}
}

// Register returns the ID of kmer, assigning the next free ID if it's new.
func (r *Registry) Register(kmer string) VertexID {
	if id, ok := r.ids[kmer]; ok {
		return id
	}

	id := VertexID(len(r.ids))
	// clone so the map doesn't pin the whole read in memory
	r.ids[strings.Clone(kmer)] = id
	return id
}

// Lookup returns the ID of kmer if it has been registered.
func (r *Registry) Lookup(kmer string) (VertexID, bool) {
	id, ok := r.ids[kmer]
	return id, ok
}

// Len is the number of registered vertices.
func (r *Registry) Len() int {
	return len(r.ids)
}

// Drain moves every (k-1)-mer out of the registry into a slice indexed by
// VertexID. The registry is empty afterwards and must not be reused.
func (r *Registry) Drain() []string {
	labels := make([]string, len(r.ids))
	for kmer, id := range r.ids {
		labels[id] = kmer
		delete(r.ids, kmer)
	}
	r.ids = nil

	return labels
}
