package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("default level = %q", cfg.Logging.Level)
	}
	if cfg.Output.Path != "screening_results.csv" {
		t.Fatalf("default output = %q", cfg.Output.Path)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
logging:
  level: debug
criteria:
  path: criteria.txt
corpora:
  - name: main
    format: bibtex
    path: articles.bib
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
	if len(cfg.Corpora) != 1 || cfg.Corpora[0].Format != "bibtex" {
		t.Fatalf("corpora = %+v", cfg.Corpora)
	}
	// Unset fields keep their defaults.
	if cfg.Output.Path != "screening_results.csv" {
		t.Fatalf("output = %q", cfg.Output.Path)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BIBSCREEN_LOG_LEVEL", "error")
	t.Setenv("BIBSCREEN_OUTPUT", "custom.csv")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("env level override ignored: %q", cfg.Logging.Level)
	}
	if cfg.Output.Path != "custom.csv" {
		t.Fatalf("env output override ignored: %q", cfg.Output.Path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config path")
	}
}
