// Package assemble runs a whole De Bruijn graph assembly: reads are split
// into (k-1)-mers, the labels are moved to disk, the graph is split into
// subgraphs and each subgraph is traced into a contig.
package assemble

import (
	"io"
	"path/filepath"
	"time"

	"github.com/dakota-kosiorek/de-novo-assembler/internal/contig"
	"github.com/dakota-kosiorek/de-novo-assembler/internal/graph"
	"github.com/dakota-kosiorek/de-novo-assembler/internal/labels"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Options configure a single assembly run.
type Options struct {
	// K is the k-mer length
	K int

	// WorkDir receives the label table and contigs.fasta. It's wiped of
	// regular files before the run
	WorkDir string

	// LabelStore is the labels backend, labels.FileBackend by default
	LabelStore string

	// ProgressStep is the fraction of reads between progress logs
	ProgressStep float64

	// Logger receives step, progress and memory logs. Nothing is logged if nil
	Logger *logrus.Logger
}

// Result summarizes a finished assembly.
type Result struct {
	// Vertices is the number of distinct (k-1)-mers
	Vertices int

	// Edges is the number of distinct edges
	Edges int

	// Components is the number of subgraphs traced
	Components int

	// Contigs is the number of contigs written
	Contigs int

	// ContigsPath is where the contigs were written
	ContigsPath string

	// Elapsed is the wall time of the run
	Elapsed time.Duration
}

// Run assembles seqs into contigs written to opts.WorkDir. Every read must
// be at least opts.K long. Any error aborts the run; files written before
// the error are left in place.
func Run(seqs []string, opts Options) (*Result, error) {
	start := time.Now()
	log := opts.logger()

	if err := labels.Prepare(opts.WorkDir, log); err != nil {
		return nil, err
	}

	builder, err := graph.NewBuilder(opts.K)
	if err != nil {
		return nil, err
	}

	log.WithField("k", opts.K).Info("assembling De Bruijn graph")
	p := newProgress(len(seqs), opts.ProgressStep, log)
	for i, seq := range seqs {
		if err := builder.AddRead(seq); err != nil {
			return nil, err
		}
		p.tick(i)
	}

	res := &Result{
		Vertices: builder.Vertices(),
		Edges:    builder.Edges(),
	}
	log.WithFields(logrus.Fields{
		"vertices": humanize.Comma(int64(res.Vertices)),
		"edges":    humanize.Comma(int64(res.Edges)),
	}).Info("100% of reads have finished processing")
	logMemory(log, "ingest")

	edges, err := writeLabels(builder, opts, log)
	if err != nil {
		return nil, err
	}

	log.Info("assembling adjacency graph from edges")
	adj, err := graph.BuildAdjacency(edges)
	if err != nil {
		return nil, err
	}
	logMemory(log, "adjacency")

	log.Info("identifying disjoint subgraphs")
	components := graph.Components(adj)
	res.Components = len(components)

	store, err := labels.Open(opts.LabelStore, opts.WorkDir, opts.K-1)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	res.ContigsPath = filepath.Join(opts.WorkDir, contig.File)
	out, err := contig.Append(res.ContigsPath)
	if err != nil {
		return nil, err
	}

	log.WithField("subgraphs", humanize.Comma(int64(len(components)))).Info("assembling contigs from disjoint subgraphs")
	if err := traceAll(adj, components, store, out); err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, err
	}
	logMemory(log, "contigs")

	res.Contigs = out.Count()
	res.Elapsed = time.Since(start)
	log.WithFields(logrus.Fields{
		"contigs": res.Contigs,
		"path":    res.ContigsPath,
		"elapsed": formatElapsed(res.Elapsed),
	}).Info("finished assembly")

	return res, nil
}

// writeLabels moves the (k-1)-mers out of builder and onto disk, so only
// the edges stay in memory
func writeLabels(builder *graph.Builder, opts Options, log logrus.FieldLogger) (*graph.EdgeTable, error) {
	kmers, edges := builder.Finish()

	log.WithField("store", opts.LabelStore).Info("writing (k-1)-mers to disk")
	if err := labels.Write(opts.LabelStore, opts.WorkDir, opts.K-1, kmers); err != nil {
		return nil, err
	}
	return edges, nil
}

// traceAll traces one path per component and writes its contig
func traceAll(adj *graph.Adjacency, components []graph.Component, store labels.Store, out *contig.FileWriter) error {
	for _, component := range components {
		if len(component) == 0 {
			continue
		}

		path, _ := graph.Trace(adj, graph.StartVertex(adj, component))
		seq, err := contig.Reconstruct(path, store)
		if err != nil {
			return err
		}

		if _, err := out.Write(seq); err != nil {
			return errors.Wrap(err, "failed to write contig")
		}
	}

	return nil
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	return quiet
}
