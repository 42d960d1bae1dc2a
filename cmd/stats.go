package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dakota-kosiorek/de-novo-assembler/config"
	"github.com/dakota-kosiorek/de-novo-assembler/internal/reads"
	"github.com/spf13/cobra"
)

// statsCmd is for summarizing a read file without assembling it
var statsCmd = &cobra.Command{
	Use:                        "stats <reads>",
	Short:                      "Summarize the reads in a FASTQ or FASTA file",
	Args:                       cobra.ExactArgs(1),
	RunE:                       runStats,
	SuggestionsMinimumDistance: 2,
	Long: `Summarize the reads in a FASTQ or FASTA file: how many were kept and
skipped, their lengths, the largest usable k, and how many (k-1)-mers
an assembly with the current k would generate.`,
}

func init() {
	RootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	_, stats, err := reads.ReadFile(args[0], conf.SkipInvalid)
	if err != nil {
		return err
	}

	return writeStats(cmd.OutOrStdout(), stats, conf.K)
}

// writeStats writes read stats as a two column table
func writeStats(out io.Writer, stats reads.Stats, k int) error {
	w := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "reads\t%d\n", stats.Count)
	fmt.Fprintf(w, "skipped\t%d\n", stats.Skipped)
	fmt.Fprintf(w, "bases\t%d\n", stats.Total)
	fmt.Fprintf(w, "shortest\t%d\n", stats.Shortest)
	fmt.Fprintf(w, "longest\t%d\n", stats.Longest)
	fmt.Fprintf(w, "max k\t%d\n", stats.MaxK())
	fmt.Fprintf(w, "(k-1)-mers\t%d\n", stats.KMinusOneMers(k))
	return w.Flush()
}
