// Package contig rebuilds nucleotide sequences from traced graph paths and
// writes them out as FASTA records.
package contig

import (
	"strings"

	"github.com/dakota-kosiorek/de-novo-assembler/internal/graph"
	"github.com/pkg/errors"
)

// File is the name of the contig FASTA file in a work dir.
const File = "contigs.fasta"

// Labels resolves a vertex ID to its (k-1)-mer.
type Labels interface {
	Lookup(id graph.VertexID) (string, error)
}

// Reconstruct turns a path from graph.Trace into a sequence. The path is
// read back to front: the first vertex adds its whole (k-1)-mer and each
// following vertex adds only its last base, since neighbouring (k-1)-mers
// overlap by k-2 bases. Paths of one vertex or less give "".
func Reconstruct(path graph.Path, labels Labels) (string, error) {
	if len(path) <= 1 {
		return "", nil
	}

	var sb strings.Builder
	for i := len(path) - 1; i >= 0; i-- {
		label, err := labels.Lookup(path[i])
		if err != nil {
			return "", errors.Wrapf(err, "failed to look up vertex %d", path[i])
		}
		if label == "" {
			continue
		}

		if i == len(path)-1 {
			sb.WriteString(label)
		} else {
			sb.WriteByte(label[len(label)-1])
		}
	}

	return strings.ReplaceAll(sb.String(), "\x00", ""), nil
}
