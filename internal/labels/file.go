package labels

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/dakota-kosiorek/de-novo-assembler/internal/graph"
	"github.com/pkg/errors"
)

// flushEvery is how many records are buffered before they're flushed to disk
const flushEvery = 5000

// WriteFile writes one label per line to path, line i holding the label of
// vertex i. Lines are all width+1 bytes long so a label can be found by
// offset alone.
func WriteFile(path string, width int, labels []string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(ErrFileOpen, "failed to open %s for writing: %v", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for id, label := range labels {
		if err := checkWidth(id, label, width); err != nil {
			return err
		}

		if _, err := w.WriteString(label); err != nil {
			return errors.Wrapf(err, "failed to write vertex %d to %s", id, path)
		}
		if err := w.WriteByte('\n'); err != nil {
			return errors.Wrapf(err, "failed to write vertex %d to %s", id, path)
		}

		if id%flushEvery == 0 {
			if err := w.Flush(); err != nil {
				return errors.Wrapf(err, "failed to flush %s", path)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "failed to flush %s", path)
	}
	return f.Close()
}

// FileStore reads labels back out of a file written by WriteFile.
type FileStore struct {
	f     *os.File
	width int
	size  int64
	buf   []byte
}

// OpenFile opens a label file whose labels are width bases long.
func OpenFile(path string, width int) (*FileStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrFileOpen, "failed to open %s for reading: %v", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(ErrFileOpen, "failed to stat %s: %v", path, err)
	}

	return &FileStore{
		f:     f,
		width: width,
		size:  info.Size(),
		buf:   make([]byte, width+1),
	}, nil
}

// Len is the number of records in the file.
func (s *FileStore) Len() int {
	return int(s.size / int64(s.width+1))
}

// Lookup seeks to the record of vertex id and reads one line.
func (s *FileStore) Lookup(id graph.VertexID) (string, error) {
	offset := int64(id) * int64(s.width+1)
	if offset >= s.size {
		return "", nil
	}

	n, err := s.f.ReadAt(s.buf, offset)
	if err != nil && err != io.EOF {
		return "", errors.Wrapf(err, "failed to read vertex %d", id)
	}

	line := s.buf[:n]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	return string(line), nil
}

// Close closes the underlying file.
func (s *FileStore) Close() error {
	return s.f.Close()
}
