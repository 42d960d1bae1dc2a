package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func adjacencyOf(edges ...[2]VertexID) *Adjacency {
	adj := NewAdjacency()
	for _, e := range edges {
		adj.AddEdge(e[0], e[1])
	}
	return adj
}

func TestComponents(t *testing.T) {
	tests := []struct {
		name  string
		adj   *Adjacency
		wants []Component
	}{
		{
			"single chain",
			adjacencyOf([2]VertexID{0, 1}, [2]VertexID{1, 2}),
			[]Component{{0, 1, 2}},
		},
		{
			"visits neighbours in list order",
			adjacencyOf([2]VertexID{0, 1}, [2]VertexID{0, 2}, [2]VertexID{1, 3}),
			[]Component{{0, 1, 3, 2}},
		},
		{
			"incoming edge from a later start doesn't merge components",
			adjacencyOf([2]VertexID{0, 1}, [2]VertexID{2, 1}, [2]VertexID{2, 3}),
			[]Component{{0, 1}, {2, 3}},
		},
		{
			"sink reached only later starts its own component",
			adjacencyOf([2]VertexID{5, 6}, [2]VertexID{7, 5}),
			[]Component{{5, 6}, {7}},
		},
		{
			"cycle",
			adjacencyOf([2]VertexID{0, 1}, [2]VertexID{1, 2}, [2]VertexID{2, 0}),
			[]Component{{0, 1, 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wants, Components(tt.adj))
		})
	}
}

// every key lands in exactly one component
func TestComponents_PartitionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(t, "vertices")
		m := rapid.IntRange(1, 60).Draw(t, "edges")

		adj := NewAdjacency()
		for i := 0; i < m; i++ {
			src := VertexID(rapid.IntRange(0, n-1).Draw(t, "src"))
			dst := VertexID(rapid.IntRange(0, n-1).Draw(t, "dst"))
			adj.AddEdge(src, dst)
		}

		seen := make(map[VertexID]int)
		for _, c := range Components(adj) {
			require.NotEmpty(t, c)
			for _, v := range c {
				seen[v]++
			}
		}

		require.Len(t, seen, adj.Len())
		for _, v := range adj.Keys() {
			assert.Equal(t, 1, seen[v], "vertex %d", v)
		}
	})
}
