// Package config is for run-wide settings unmarshalled from Viper: command
// line flags, HUNT_* environment variables, and an optional settings file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"motifhunt/internal/motif"
)

// MotifConfig is a motif given in the settings file.
type MotifConfig struct {
	Label   string `mapstructure:"label"`
	Pattern string `mapstructure:"pattern"`
	Min     int    `mapstructure:"min"`
}

// Config is the root-level settings struct.
type Config struct {
	// motifs from repeatable flags; labels and mins pair up by position
	Patterns    []string `mapstructure:"pattern"`
	Labels      []string `mapstructure:"label"`
	PatternMins []int    `mapstructure:"pattern-min"`

	// motif list file (label pattern [min] per line)
	MotifFile string `mapstructure:"motif-file"`

	// motifs from the settings file
	Motifs []MotifConfig `mapstructure:"motifs"`

	// FASTA inputs; positional arguments are appended by the CLI
	Inputs []string `mapstructure:"inputs"`

	// shared mismatch budget
	Mismatch int `mapstructure:"mismatch"`

	Output          string `mapstructure:"output"`
	OutputFile      string `mapstructure:"output-file"`
	NoHeader        bool   `mapstructure:"no-header"`
	Pretty          bool   `mapstructure:"pretty"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`

	Threads int `mapstructure:"threads"`

	LogLevel string `mapstructure:"log-level"`
	LogJSON  bool   `mapstructure:"log-json"`
	Quiet    bool   `mapstructure:"quiet"`
}

// SetDefaults registers defaults for keys that have no flag.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", "text")
	v.SetDefault("no-match-exit-code", 1)
	v.SetDefault("threads", 1)
	v.SetDefault("log-level", "info")
}

// Load reads the optional settings file into v, layers HUNT_* environment
// variables, and decodes the result.
func Load(v *viper.Viper, settingsFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("HUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("settings %s: %w", settingsFile, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	return c, nil
}

// Validate checks values that do not depend on other packages.
func (c Config) Validate() error {
	if c.Mismatch < 0 {
		return errors.New("--mismatch must be ≥ 0")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if len(c.Labels) > 0 && len(c.Labels) != len(c.Patterns) {
		return fmt.Errorf("got %d --label for %d --pattern", len(c.Labels), len(c.Patterns))
	}
	if len(c.PatternMins) > 0 && len(c.PatternMins) != len(c.Patterns) {
		return fmt.Errorf("got %d --pattern-min for %d --pattern", len(c.PatternMins), len(c.Patterns))
	}
	for _, n := range c.PatternMins {
		if n < 0 {
			return errors.New("--pattern-min must be ≥ 0")
		}
	}
	if len(c.Inputs) == 0 {
		return errors.New("at least one FASTA input is required")
	}
	return nil
}

// Entries collects motifs from flags, the settings file, and the motif file,
// in that order. Flag motifs without a label are named after their pattern.
func (c Config) Entries() ([]motif.Entry, error) {
	var out []motif.Entry
	for i, p := range c.Patterns {
		e := motif.Entry{Label: p, Pattern: p}
		if i < len(c.Labels) {
			e.Label = c.Labels[i]
		}
		if i < len(c.PatternMins) {
			e.MinOccurrences = c.PatternMins[i]
		}
		out = append(out, e)
	}
	for i, m := range c.Motifs {
		if m.Pattern == "" {
			return nil, fmt.Errorf("settings motif %d has no pattern", i+1)
		}
		if m.Min < 0 {
			return nil, fmt.Errorf("settings motif %d: min must be ≥ 0", i+1)
		}
		label := m.Label
		if label == "" {
			label = m.Pattern
		}
		out = append(out, motif.Entry{Label: label, Pattern: m.Pattern, MinOccurrences: m.Min})
	}
	if c.MotifFile != "" {
		list, err := motif.LoadTSV(c.MotifFile)
		if err != nil {
			return nil, err
		}
		out = append(out, list...)
	}
	if len(out) == 0 {
		return nil, errors.New("provide --pattern, --motif-file, or motifs in the settings file")
	}
	return out, nil
}
