package labels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dakota-kosiorek/de-novo-assembler/internal/graph"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), MapFile)

	require.NoError(t, WriteFile(path, 3, []string{"AAT", "ATC", "TCG"}))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "AAT\nATC\nTCG\n", string(contents))
}

func TestWriteFile_Width(t *testing.T) {
	path := filepath.Join(t.TempDir(), MapFile)

	err := WriteFile(path, 3, []string{"AAT", "AT"})
	assert.True(t, errors.Is(err, ErrLabelWidth), "got %v", err)
}

func TestWriteFile_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", MapFile)

	err := WriteFile(path, 3, []string{"AAT"})
	assert.True(t, errors.Is(err, ErrFileOpen), "got %v", err)
}

func TestFileStore_Lookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), MapFile)
	require.NoError(t, WriteFile(path, 4, []string{"AATC", "ATCG", "TCGG"}))

	s, err := OpenFile(path, 4)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 3, s.Len())

	tests := []struct {
		id   graph.VertexID
		want string
	}{
		{2, "TCGG"},
		{0, "AATC"},
		{1, "ATCG"},
		{3, ""},
		{1 << 30, ""},
	}
	for _, tt := range tests {
		got, err := s.Lookup(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "vertex %d", tt.id)
	}
}

func TestOpenFile_Missing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), MapFile), 3)
	assert.True(t, errors.Is(err, ErrFileOpen), "got %v", err)
}

// writing labels and looking them up again returns the same labels
func TestFileStore_RoundTripProperty(t *testing.T) {
	dir := t.TempDir()

	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 12).Draw(t, "width")
		n := rapid.IntRange(0, 50).Draw(t, "labels")

		labels := make([]string, n)
		for i := range labels {
			labels[i] = string(rapid.SliceOfN(rapid.SampledFrom([]byte("ACGT")), width, width).Draw(t, "label"))
		}

		path := filepath.Join(dir, MapFile)
		require.NoError(t, WriteFile(path, width, labels))

		s, err := OpenFile(path, width)
		require.NoError(t, err)
		defer s.Close()

		for i, want := range labels {
			got, err := s.Lookup(graph.VertexID(i))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}

		got, err := s.Lookup(graph.VertexID(n))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
