// Package labels persists vertex labels ((k-1)-mers) so they can be dropped
// from memory while the graph is traversed, and looked up again by ID when
// contigs are rebuilt.
package labels

import (
	"path/filepath"

	"github.com/dakota-kosiorek/de-novo-assembler/internal/graph"
	"github.com/pkg/errors"
)

const (
	// FileBackend stores labels as fixed-width lines in MapFile
	FileBackend = "file"

	// BadgerBackend stores labels in a badger database under BadgerDir
	BadgerBackend = "badger"

	// MapFile is the name of the fixed-record label table in a work dir
	MapFile = "map.txt"

	// BadgerDir is the name of the badger label database in a work dir
	BadgerDir = "map.badger"
)

var (
	// ErrDirectory is returned when the work dir can't be created or wiped
	ErrDirectory = errors.New("could not prepare directory")

	// ErrFileOpen is returned when a label or contig file can't be opened
	ErrFileOpen = errors.New("could not open file")

	// ErrLabelWidth is returned for a label whose length breaks the fixed record width
	ErrLabelWidth = errors.New("label has the wrong width")

	// ErrBackend is returned for an unknown storage backend
	ErrBackend = errors.New("unknown label store backend")
)

// Store looks up the label of a vertex. Lookup returns "" for an ID
// that was never written.
type Store interface {
	Lookup(id graph.VertexID) (string, error)
	Close() error
}

// Write persists labels, indexed by vertex ID, into dir using backend.
// Every label must be width bases long.
func Write(backend, dir string, width int, labels []string) error {
	switch backend {
	case FileBackend, "":
		return WriteFile(filepath.Join(dir, MapFile), width, labels)
	case BadgerBackend:
		return WriteBadger(filepath.Join(dir, BadgerDir), width, labels)
	default:
		return errors.Wrap(ErrBackend, backend)
	}
}

// Open returns a Store for the labels written to dir by Write.
func Open(backend, dir string, width int) (Store, error) {
	switch backend {
	case FileBackend, "":
		return OpenFile(filepath.Join(dir, MapFile), width)
	case BadgerBackend:
		return OpenBadger(filepath.Join(dir, BadgerDir))
	default:
		return nil, errors.Wrap(ErrBackend, backend)
	}
}

// checkWidth errors out if the label of vertex id isn't width bases long
func checkWidth(id int, label string, width int) error {
	if len(label) != width {
		return errors.Wrapf(ErrLabelWidth, "vertex %d has %q, want %d bases", id, label, width)
	}
	return nil
}
