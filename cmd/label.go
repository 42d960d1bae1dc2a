package cmd

import (
	"fmt"
	"strconv"

	"github.com/dakota-kosiorek/de-novo-assembler/config"
	"github.com/dakota-kosiorek/de-novo-assembler/internal/graph"
	"github.com/dakota-kosiorek/de-novo-assembler/internal/labels"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// labelCmd is for looking up vertex labels in an existing work dir
var labelCmd = &cobra.Command{
	Use:   "label <id>...",
	Short: "Print the (k-1)-mer of vertices from a finished assembly",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLabel,
	Long: `Print the (k-1)-mer stored for each vertex ID in the <root>/<k>mer work
dir of a finished assembly. IDs past the last vertex print an empty label.`,
	Example: "  assembler label 0 1 2 -k 31",
}

func init() {
	RootCmd.AddCommand(labelCmd)
}

func runLabel(cmd *cobra.Command, args []string) error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	store, err := labels.Open(conf.LabelStore, conf.WorkDir(), conf.K-1)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, id := range ids {
		label, err := store.Lookup(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, label)
	}

	return nil
}

// parseIDs parses vertex IDs from the command line
func parseIDs(args []string) ([]graph.VertexID, error) {
	ids := make([]graph.VertexID, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(config.ErrInvalid, "vertex ID %q: %v", arg, err)
		}
		ids = append(ids, graph.VertexID(id))
	}
	return ids, nil
}
