// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// DefaultK is the k-mer length used when none is set
	DefaultK = 21

	// DefaultProgressStep is the fraction of reads between progress reports
	DefaultProgressStep = 0.05
)

// ErrInvalid is returned by Validate for settings that can't be used
var ErrInvalid = errors.New("invalid settings")

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// K is the k-mer length. Graph vertices are (K-1)-mers
	K int `mapstructure:"k"`

	// Root is the directory the "<k>mer" work dir is made in
	Root string `mapstructure:"root"`

	// LabelStore is the backend for vertex labels: "file" or "badger"
	LabelStore string `mapstructure:"label-store"`

	// ProgressStep is the fraction of reads between ingestion progress logs
	ProgressStep float64 `mapstructure:"progress-step"`

	// LogLevel is a logrus level name
	LogLevel string `mapstructure:"log-level"`

	// SkipInvalid drops reads with bases other than A, T, C and G
	// instead of failing
	SkipInvalid bool `mapstructure:"skip-invalid"`
}

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("k", DefaultK)
	viper.SetDefault("root", ".")
	viper.SetDefault("label-store", "file")
	viper.SetDefault("progress-step", DefaultProgressStep)
	viper.SetDefault("log-level", "info")
	viper.SetDefault("skip-invalid", true)
}

// New returns a new Config struct populated by Viper settings
// (either from a settings file, the environment, or command line
// arguments)
func New() (*Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unable to decode settings")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks that the settings can be used for an assembly.
func (c *Config) Validate() error {
	if c.K < 2 {
		return errors.Wrapf(ErrInvalid, "k must be at least 2, got %d", c.K)
	}

	switch c.LabelStore {
	case "file", "badger":
	default:
		return errors.Wrapf(ErrInvalid, "label-store must be file or badger, got %q", c.LabelStore)
	}

	if c.ProgressStep <= 0 || c.ProgressStep > 1 {
		return errors.Wrapf(ErrInvalid, "progress-step must be in (0, 1], got %v", c.ProgressStep)
	}

	return nil
}

// WorkDir is the per-k directory the label table and contigs are written to.
func (c *Config) WorkDir() string {
	return filepath.Join(c.Root, fmt.Sprintf("%dmer", c.K))
}
