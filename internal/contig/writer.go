package contig

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/dakota-kosiorek/de-novo-assembler/internal/labels"
	"github.com/pkg/errors"
)

// Label is the FASTA ID of the nth contig.
func Label(n int) string {
	return "contig." + strconv.Itoa(n)
}

// Writer numbers contigs from 1 and writes each as a FASTA record with its
// sequence on a single line.
type Writer struct {
	w     *bufio.Writer
	count int
}

// NewWriter returns a Writer on w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes seq as the next contig. Empty sequences are skipped and
// don't use up a number.
func (w *Writer) Write(seq string) (written bool, err error) {
	if seq == "" {
		return false, nil
	}

	letters := make(alphabet.Letters, len(seq))
	for i := 0; i < len(seq); i++ {
		letters[i] = alphabet.Letter(seq[i])
	}

	w.count++
	record := linear.NewSeq(Label(w.count), letters, alphabet.DNA)

	// one line per sequence: wrap at the sequence's own length
	if _, err := fasta.NewWriter(w.w, len(seq)).Write(record); err != nil {
		return false, errors.Wrapf(err, "failed to write %s", Label(w.count))
	}

	return true, nil
}

// Count is the number of contigs written.
func (w *Writer) Count() int {
	return w.count
}

// Flush writes any buffered records.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// FileWriter is a Writer that appends to a file.
type FileWriter struct {
	*Writer
	f *os.File
}

// Append opens path for appending contigs, creating it if needed.
func Append(path string) (*FileWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(labels.ErrFileOpen, "failed to open %s: %v", path, err)
	}

	return &FileWriter{Writer: NewWriter(f), f: f}, nil
}

// Close flushes the records and closes the file.
func (fw *FileWriter) Close() error {
	if err := fw.Flush(); err != nil {
		fw.f.Close()
		return errors.Wrapf(err, "failed to flush %s", fw.f.Name())
	}
	return fw.f.Close()
}
