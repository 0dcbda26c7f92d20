package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const configPathEnv = "BIBSCREEN_CONFIG"

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Criteria  CriteriaConfig  `yaml:"criteria"`
	Output    OutputConfig    `yaml:"output"`
	Screening ScreeningConfig `yaml:"screening"`
	Database  DatabaseConfig  `yaml:"database"`
	Corpora   []CorpusConfig  `yaml:"corpora"`
}

// LoggingConfig controls slog verbosity.
type LoggingConfig struct {
	Level string `yaml:"level" env:"BIBSCREEN_LOG_LEVEL"`
}

// CriteriaConfig points at the criteria file; empty means built-in defaults.
type CriteriaConfig struct {
	Path string `yaml:"path" env:"BIBSCREEN_CRITERIA"`
}

// OutputConfig describes where the decision CSV goes.
type OutputConfig struct {
	Path string `yaml:"path" env:"BIBSCREEN_OUTPUT"`
}

// ScreeningConfig tunes corpus evaluation.
type ScreeningConfig struct {
	Workers int `yaml:"workers" env:"BIBSCREEN_WORKERS"`
}

// DatabaseConfig describes the optional Postgres audit store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_DSN"`
}

// CorpusConfig describes a single candidate corpus with its source format.
type CorpusConfig struct {
	Name    string            `yaml:"name"`
	Format  string            `yaml:"format"`
	Path    string            `yaml:"path"`
	URL     string            `yaml:"url"`
	Options map[string]string `yaml:"options"`
}

// Load reads YAML configuration (if present) over defaults and applies
// environment overrides. An explicit path wins over the env-provided one.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: env overrides: %w", err)
	}

	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Logging:   LoggingConfig{Level: "info"},
		Output:    OutputConfig{Path: "screening_results.csv"},
		Screening: ScreeningConfig{Workers: 0},
	}
}
