// Package reads loads sequencing reads from FASTQ or FASTA files and checks
// them before they're handed to the assembler.
package reads

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

var (
	// ErrFormat is returned for input that isn't well formed FASTQ or FASTA
	ErrFormat = errors.New("malformed read file")

	// ErrNucleotide is returned for a read with a base outside of A, T, C and G
	ErrNucleotide = errors.New("incorrect nucleotides found in sequence (not in {A, T, C, G})")
)

// Read is a single validated sequencing read.
type Read struct {
	// ID is the read's label without its leading '@' or '>'
	ID string

	// Seq is the upper-cased sequence
	Seq string
}

// Stats summarize the reads that were loaded.
type Stats struct {
	// Count is the number of reads kept
	Count int

	// Skipped is the number of reads dropped for invalid bases
	Skipped int

	// Total is the summed length of kept reads
	Total int

	// Shortest is the length of the shortest kept read
	Shortest int

	// Longest is the length of the longest kept read
	Longest int
}

// MaxK is the largest k every read is long enough for.
func (s Stats) MaxK() int {
	return s.Shortest
}

// KMinusOneMers is the number of (k-1)-mers the reads would generate if
// every k-mer were used.
func (s Stats) KMinusOneMers(k int) int {
	return s.Total - s.Count*(k-1)
}

func (s *Stats) add(n int) {
	if s.Count == 0 || n < s.Shortest {
		s.Shortest = n
	}
	if n > s.Longest {
		s.Longest = n
	}
	s.Count++
	s.Total += n
}

// ReadFile loads reads from a FASTQ or FASTA file, gzip compressed if its
// name ends in ".gz". With skipInvalid, reads with bases other than
// A, T, C or G are dropped and counted; otherwise they're an error.
func ReadFile(path string, skipInvalid bool) ([]Read, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, errors.Wrapf(err, "could not open file '%s'", path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Stats{}, errors.Wrapf(ErrFormat, "failed to decompress %s: %v", path, err)
		}
		defer gz.Close()
		r = gz
	}

	reads, stats, err := Parse(r, skipInvalid)
	if err != nil {
		return nil, Stats{}, errors.Wrapf(err, "failed to read %s", path)
	}
	return reads, stats, nil
}

// Parse reads FASTQ (first record starts with '@') or FASTA (first record
// starts with '>') from r. Empty input gives no reads.
func Parse(r io.Reader, skipInvalid bool) ([]Read, Stats, error) {
	br := bufio.NewReader(r)

	first, err := firstByte(br)
	if err == io.EOF {
		return nil, Stats{}, nil
	}
	if err != nil {
		return nil, Stats{}, err
	}

	var (
		sr    *seqio.Scanner
		lines *lineCounter
	)
	switch first {
	case '@':
		lines = &lineCounter{r: br}
		sr = seqio.NewScanner(fastq.NewReader(lines, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)))
	case '>':
		sr = seqio.NewScanner(fasta.NewReader(br, linear.NewSeq("", nil, alphabet.DNA)))
	default:
		return nil, Stats{}, errors.Wrapf(ErrFormat, "label does not start with @ or > (found %q)", first)
	}

	var (
		reads []Read
		stats Stats
	)
	for sr.Next() {
		s := sr.Seq()
		bases, ok := sequence(s)
		if !ok {
			return nil, Stats{}, errors.Wrapf(ErrFormat, "unexpected record type %T", s)
		}

		if !validNucleotides(bases) {
			if skipInvalid {
				stats.Skipped++
				continue
			}
			return nil, Stats{}, errors.Wrapf(ErrNucleotide, "read %d (%s)", stats.Count+stats.Skipped+1, s.Name())
		}

		reads = append(reads, Read{ID: s.Name(), Seq: string(bases)})
		stats.add(len(bases))
	}
	if err := sr.Error(); err != nil {
		return nil, Stats{}, errors.Wrapf(ErrFormat, "read %d: %v", stats.Count+stats.Skipped+1, err)
	}
	if lines != nil {
		if err := lines.complete(stats.Count + stats.Skipped); err != nil {
			return nil, Stats{}, err
		}
	}

	if stats.Count == 0 {
		stats.Shortest = 0
	}

	return reads, stats, nil
}

// Sequences returns the sequences of reads, in order.
func Sequences(reads []Read) []string {
	seqs := make([]string, len(reads))
	for i, r := range reads {
		seqs[i] = r.Seq
	}
	return seqs
}

// lineCounter counts the non-blank lines read through it. The FASTQ
// reader stops quietly on a partial last record, so the count is what
// catches one.
type lineCounter struct {
	r      io.Reader
	lines  int
	inLine bool
}

func (c *lineCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	for _, b := range p[:n] {
		switch b {
		case '\n':
			if c.inLine {
				c.lines++
			}
			c.inLine = false
		case '\r', ' ', '\t':
		default:
			c.inLine = true
		}
	}
	return n, err
}

// complete drains what's left of the input and checks that it held
// whole four-line FASTQ records, as many as were parsed
func (c *lineCounter) complete(records int) error {
	if _, err := io.Copy(io.Discard, c); err != nil {
		return errors.Wrapf(ErrFormat, "failed to read: %v", err)
	}

	lines := c.lines
	if c.inLine {
		lines++
	}

	if lines%4 != 0 {
		return errors.Wrapf(ErrFormat, "all reads do not have all 4 FASTQ lines (%d lines)", lines)
	}
	if lines/4 != records {
		return errors.Wrapf(ErrFormat, "found %d FASTQ records but %d were parsed", lines/4, records)
	}
	return nil
}

// firstByte skips leading whitespace and returns the first byte without
// consuming it
func firstByte(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if !bytes.ContainsRune([]byte(" \t\r\n"), rune(b)) {
			return b, br.UnreadByte()
		}
	}
}

// sequence returns the upper-cased bases of a parsed record
func sequence(s seq.Sequence) ([]byte, bool) {
	var bases []byte
	switch r := s.(type) {
	case *linear.QSeq:
		bases = make([]byte, len(r.Seq))
		for i, ql := range r.Seq {
			bases[i] = byte(ql.L)
		}
	case *linear.Seq:
		bases = make([]byte, len(r.Seq))
		for i, l := range r.Seq {
			bases[i] = byte(l)
		}
	default:
		return nil, false
	}

	return bytes.ToUpper(bases), true
}

// validNucleotides reports whether seq is only made of A, T, C and G
func validNucleotides(seq []byte) bool {
	for _, c := range seq {
		switch c {
		case 'A', 'T', 'C', 'G':
		default:
			return false
		}
	}
	return true
}
