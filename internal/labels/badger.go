package labels

import (
	"encoding/binary"
	"os"

	"github.com/dakota-kosiorek/de-novo-assembler/internal/graph"
	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

// BadgerStore keeps labels in a badger database keyed by vertex ID.
type BadgerStore struct {
	db *badger.DB
}

func openBadger(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(ErrFileOpen, "failed to open badger db at %s: %v", dir, err)
	}
	return db, nil
}

// vertexKey is the big-endian encoding of id so keys sort by ID
func vertexKey(id graph.VertexID) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, uint32(id))
	return key
}

// WriteBadger writes labels into the badger database at dir, dropping
// anything left there by an earlier run.
func WriteBadger(dir string, width int, labels []string) error {
	db, err := openBadger(dir)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DropAll(); err != nil {
		return errors.Wrapf(err, "failed to clear %s", dir)
	}

	wb := db.NewWriteBatch()
	for id, label := range labels {
		if err := checkWidth(id, label, width); err != nil {
			wb.Cancel()
			return err
		}

		if err := wb.Set(vertexKey(graph.VertexID(id)), []byte(label)); err != nil {
			wb.Cancel()
			return errors.Wrapf(err, "failed to write vertex %d", id)
		}
	}

	if err := wb.Flush(); err != nil {
		return errors.Wrapf(err, "failed to flush labels to %s", dir)
	}
	return nil
}

// OpenBadger opens the badger label database at dir, which must have been
// written by WriteBadger.
func OpenBadger(dir string) (*BadgerStore, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Wrapf(ErrFileOpen, "no label database at %s: %v", dir, err)
	}

	db, err := openBadger(dir)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

// Lookup returns the label of vertex id.
func (s *BadgerStore) Lookup(id graph.VertexID) (string, error) {
	var label []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(vertexKey(id))
		if err != nil {
			return err
		}

		label, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read vertex %d", id)
	}

	return string(label), nil
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
