// Package cmd is for command line interactions with the assembler
package cmd

import (
	"os"
	"strings"

	"github.com/dakota-kosiorek/de-novo-assembler/config"
	"github.com/dakota-kosiorek/de-novo-assembler/internal/labels"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// settingsFile is an optional YAML settings file
	settingsFile string

	// logger is shared by every command
	logger = newLogger()
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "assembler",
	Short: "Assemble contigs from short reads with a De Bruijn graph",
	Long: `Build a De Bruijn graph from the k-mers of a FASTQ or FASTA read file,
split it into disjoint subgraphs and trace each subgraph into a contig.

Contigs are written to <root>/<k>mer/contigs.fasta.`,
	Version:           "0.1.0",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// set persistent flags, shared by every subcommand
func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&settingsFile, "config", "", "YAML settings file")
	flags.IntP("k", "k", config.DefaultK, "k-mer length, graph vertices are (k-1)-mers")
	flags.String("root", ".", "directory the <k>mer work dir is made in")
	flags.String("label-store", labels.FileBackend, "vertex label backend: file or badger")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("skip-invalid", true, "skip reads with bases other than A, T, C and G")

	// bound once here so no subcommand's flag shadows another's
	for _, key := range []string{"k", "root", "label-store", "log-level", "skip-invalid"} {
		must(viper.BindPFlag(key, flags.Lookup(key)))
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Fatalf("%v", err)
	}
}

// setup reads the settings file and environment and sets the log level
func setup(cmd *cobra.Command, args []string) error {
	if settingsFile != "" {
		viper.SetConfigFile(settingsFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read settings file %s", settingsFile)
		}
	}

	viper.SetEnvPrefix("assembler")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return errors.Wrap(config.ErrInvalid, err.Error())
	}
	logger.SetLevel(level)

	return nil
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}

func must(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
