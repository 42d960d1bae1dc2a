package cmd

import (
	"fmt"

	"github.com/dakota-kosiorek/de-novo-assembler/config"
	"github.com/dakota-kosiorek/de-novo-assembler/internal/assemble"
	"github.com/dakota-kosiorek/de-novo-assembler/internal/reads"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// assembleCmd is for assembling contigs from a read file
var assembleCmd = &cobra.Command{
	Use:                        "assemble <reads>",
	Short:                      "Assemble contigs from a FASTQ or FASTA read file",
	Args:                       cobra.ExactArgs(1),
	RunE:                       runAssemble,
	SuggestionsMinimumDistance: 3,
	Long: `Assemble contigs from a FASTQ or FASTA read file (optionally gzip compressed).

Every read must be at least k bases long. The <root>/<k>mer work dir is
wiped of files before the run, then receives the vertex label table and
contigs.fasta.`,
	Example: `  assembler assemble reads.fastq -k 31
  assembler assemble reads.fastq.gz --root ./out --label-store badger`,
}

// set flags
func init() {
	assembleCmd.Flags().Float64("progress-step", config.DefaultProgressStep, "fraction of reads between progress logs")
	must(viper.BindPFlag("progress-step", assembleCmd.Flags().Lookup("progress-step")))

	RootCmd.AddCommand(assembleCmd)
}

func runAssemble(cmd *cobra.Command, args []string) error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	logger.WithField("file", args[0]).Info("loading reads")
	rs, stats, err := reads.ReadFile(args[0], conf.SkipInvalid)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"reads":   humanize.Comma(int64(stats.Count)),
		"skipped": humanize.Comma(int64(stats.Skipped)),
		"bases":   humanize.Comma(int64(stats.Total)),
		"k-1mers": humanize.Comma(int64(stats.KMinusOneMers(conf.K))),
	}).Info("loaded reads")

	res, err := assemble.Run(reads.Sequences(rs), assemble.Options{
		K:            conf.K,
		WorkDir:      conf.WorkDir(),
		LabelStore:   conf.LabelStore,
		ProgressStep: conf.ProgressStep,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d contigs written to %s\n", res.Contigs, res.ContigsPath)
	return nil
}
