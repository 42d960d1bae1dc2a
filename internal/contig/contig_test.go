package contig

import (
	"testing"

	"github.com/dakota-kosiorek/de-novo-assembler/internal/graph"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapLabels is an in-memory Labels
type mapLabels []string

func (m mapLabels) Lookup(id graph.VertexID) (string, error) {
	if int(id) >= len(m) {
		return "", nil
	}
	return m[id], nil
}

type failingLabels struct{}

func (failingLabels) Lookup(graph.VertexID) (string, error) {
	return "", errors.New("disk on fire")
}

func TestReconstruct(t *testing.T) {
	labels := mapLabels{"AAT", "ATC", "TCG", "CGG", "GGA", "GAT", "C\x00G"}

	tests := []struct {
		name string
		path graph.Path
		want string
	}{
		{
			"full chain",
			graph.Path{5, 4, 3, 2, 1, 0},
			"AATCGGAT",
		},
		{
			"two vertices collapse to one k-mer",
			graph.Path{1, 0},
			"AATC",
		},
		{
			"single vertex gives nothing",
			graph.Path{0},
			"",
		},
		{
			"empty path",
			nil,
			"",
		},
		{
			"unknown vertices are skipped",
			graph.Path{1, 99, 0},
			"AATC",
		},
		{
			"null bytes are stripped",
			graph.Path{0, 6},
			"CGT",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reconstruct(tt.path, labels)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconstruct_LookupError(t *testing.T) {
	_, err := Reconstruct(graph.Path{1, 0}, failingLabels{})
	assert.Error(t, err)
}
