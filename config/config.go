package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/quizmd/qcmkit/export"
	"github.com/quizmd/qcmkit/qcm"
)

// Config holds conversion defaults for qcmkit tools.
type Config struct {
	// EnforceSingle rejects questions with more than one correct answer.
	EnforceSingle bool `toml:"enforce_single" yaml:"enforce_single" json:"enforce_single"`

	// RequireAtLeastOneCorrect rejects questions with no correct answer.
	RequireAtLeastOneCorrect bool `toml:"require_at_least_one_correct" yaml:"require_at_least_one_correct" json:"require_at_least_one_correct"`

	// Format is the default output format: "markdown", "json", or "yaml".
	Format string `toml:"format" yaml:"format" json:"format"`

	// Output is the directory or file the converted output is written to.
	// Empty means standard output.
	Output string `toml:"output" yaml:"output" json:"output"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Format: string(export.FormatMarkdown)}
}

// Options returns the parse options described by the config.
func (c Config) Options() qcm.Options {
	return qcm.Options{
		EnforceSingle:            c.EnforceSingle,
		RequireAtLeastOneCorrect: c.RequireAtLeastOneCorrect,
	}
}

// Validate checks that the config values are usable.
func (c Config) Validate() error {
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load reads a config file, dispatching on extension: .toml loads TOML,
// .yaml and .yml load YAML. Fields absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := loadTOML(path, &cfg); err != nil {
			return Config{}, err
		}
	case ".yaml", ".yml":
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadTOML(path string, cfg *Config) error {
	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("enforce_single") {
		cfg.EnforceSingle = raw.EnforceSingle
	}
	if meta.IsDefined("require_at_least_one_correct") {
		cfg.RequireAtLeastOneCorrect = raw.RequireAtLeastOneCorrect
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}

	return nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Decode over the defaults so absent fields keep them.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	cfg.Format = strings.TrimSpace(cfg.Format)
	cfg.Output = strings.TrimSpace(cfg.Output)

	return nil
}
