package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goatx/pairwise"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatGoTest   = "gotest"
)

// Config holds the CLI settings that flags can override.
type Config struct {
	// Which builder generates the suite.
	Algorithm pairwise.Algorithm `yaml:"algorithm"`
	// Upper bound on enumerated candidate tests. Zero disables the cap.
	MaxCandidates int `yaml:"maxCandidates"`
	// Wall-clock limit for the optimal solver.
	TimeBudget time.Duration `yaml:"timeBudget"`
	// Output format of the generate command.
	Format string `yaml:"format"`
	// Package clause of generated Go tests.
	Package string `yaml:"package"`
	// zap level name.
	LogLevel string `yaml:"logLevel"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Algorithm:     pairwise.Greedy,
		MaxCandidates: pairwise.DefaultMaxCandidates,
		TimeBudget:    pairwise.DefaultTimeBudget,
		Format:        FormatText,
		Package:       "main",
		LogLevel:      "warn",
	}
}

// Load reads a YAML config file on top of the defaults. An empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	for _, err := range []error{
		ensureOneOf("algorithm", string(c.Algorithm), string(pairwise.Greedy), string(pairwise.Optimal)),
		ensureOneOf("format", c.Format, FormatText, FormatJSON, FormatMarkdown, FormatCSV, FormatGoTest),
		ensureOneOf("logLevel", c.LogLevel, "debug", "info", "warn", "error"),
		ensureNonEmpty("package", c.Package),
	} {
		if err != nil {
			return err
		}
	}
	if c.MaxCandidates < 0 {
		return fmt.Errorf("maxCandidates must be non-negative")
	}
	if c.TimeBudget <= 0 {
		return fmt.Errorf("timeBudget must be positive")
	}
	return nil
}

func ensureNonEmpty(name, val string) error {
	if val == "" {
		return fmt.Errorf("%v must not be empty", name)
	}
	return nil
}

func ensureOneOf(name, val string, allowed ...string) error {
	if err := ensureNonEmpty(name, val); err != nil {
		return err
	}
	for _, a := range allowed {
		if val == a {
			return nil
		}
	}
	return fmt.Errorf("%v must be one of %v, got %q", name, allowed, val)
}
