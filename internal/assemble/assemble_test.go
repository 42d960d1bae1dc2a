package assemble

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dakota-kosiorek/de-novo-assembler/internal/contig"
	"github.com/dakota-kosiorek/de-novo-assembler/internal/graph"
	"github.com/dakota-kosiorek/de-novo-assembler/internal/labels"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(t *testing.T, k int, store string) Options {
	return Options{
		K:            k,
		WorkDir:      filepath.Join(t.TempDir(), "4mer"),
		LabelStore:   store,
		ProgressStep: 0.05,
	}
}

func contigs(t *testing.T, res *Result) []string {
	contents, err := os.ReadFile(res.ContigsPath)
	require.NoError(t, err)
	return strings.Fields(string(contents))
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		reads    []string
		k        int
		vertices int
		contigs  []string
	}{
		{
			"overlapping reads",
			[]string{"AATCGG", "TCGGAT"},
			4,
			6,
			[]string{">contig.1", "AATCGGAT"},
		},
		{
			"single read of length k",
			[]string{"ACGT"},
			4,
			2,
			[]string{">contig.1", "ACGT"},
		},
		{
			"disjoint reads",
			[]string{"AAAC", "GGGT"},
			4,
			4,
			[]string{">contig.1", "AAAC", ">contig.2", "GGGT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(tt.reads, options(t, tt.k, labels.FileBackend))
			require.NoError(t, err)

			assert.Equal(t, tt.vertices, res.Vertices)
			assert.Equal(t, len(tt.contigs)/2, res.Contigs)
			assert.Equal(t, tt.contigs, contigs(t, res))
		})
	}
}

func TestRun_Badger(t *testing.T) {
	res, err := Run([]string{"AATCGG", "TCGGAT"}, options(t, 4, labels.BadgerBackend))
	require.NoError(t, err)

	assert.Equal(t, []string{">contig.1", "AATCGGAT"}, contigs(t, res))
}

func TestRun_Rerun(t *testing.T) {
	for _, store := range []string{labels.FileBackend, labels.BadgerBackend} {
		t.Run(store, func(t *testing.T) {
			opts := options(t, 4, store)

			_, err := Run([]string{"AAAC", "GGGT"}, opts)
			require.NoError(t, err)

			res, err := Run([]string{"AATCGG", "TCGGAT"}, opts)
			require.NoError(t, err)

			assert.Equal(t, []string{">contig.1", "AATCGGAT"}, contigs(t, res))
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		reads []string
		k     int
		want  error
	}{
		{"read shorter than k", []string{"AATCGG", "ACG"}, 4, graph.ErrReadTooShort},
		{"k too small", []string{"ACGT"}, 1, graph.ErrInvalidK},
		{"no reads", nil, 4, graph.ErrEmptyGraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options(t, tt.k, labels.FileBackend)
			_, err := Run(tt.reads, opts)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.NoFileExists(t, filepath.Join(opts.WorkDir, contig.File))
		})
	}
}

func TestRun_Logs(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	opts := options(t, 4, labels.FileBackend)
	opts.Logger = log
	_, err := Run([]string{"AATCGG", "TCGGAT"}, opts)
	require.NoError(t, err)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "finished assembly", last.Message)
	assert.Equal(t, 1, last.Data["contigs"])
}
