package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"BibScreen/internal/app"
	"BibScreen/internal/config"
	"BibScreen/internal/logging"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a corpus and emit Include/Exclude decisions",
	RunE:  runScreen,
}

func runScreen(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlagOverrides(&cfg)

	if len(cfg.Corpora) == 0 {
		return fmt.Errorf("no corpus configured: pass --input or define corpora in the config file")
	}

	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	decisions, err := application.Run(cmd.Context())
	if err != nil {
		return err
	}

	logger.Info("screening results written", "records", len(decisions), "output", cfg.Output.Path)
	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if flagCriteria != "" {
		cfg.Criteria.Path = flagCriteria
	}
	if flagOutput != "" {
		cfg.Output.Path = flagOutput
	}
	if flagWorkers > 0 {
		cfg.Screening.Workers = flagWorkers
	}
	if flagInput != "" {
		corpus := config.CorpusConfig{Name: "cli", Format: flagFormat}
		if strings.HasPrefix(flagInput, "http://") || strings.HasPrefix(flagInput, "https://") {
			corpus.URL = flagInput
		} else {
			corpus.Path = flagInput
		}
		if corpus.Format == "" {
			corpus.Format = inferFormat(corpus)
		}
		cfg.Corpora = []config.CorpusConfig{corpus}
	}
}

func inferFormat(corpus config.CorpusConfig) string {
	if corpus.URL != "" {
		return "feed"
	}
	switch {
	case strings.HasSuffix(corpus.Path, ".bib"):
		return "bibtex"
	case strings.HasSuffix(corpus.Path, ".json"):
		return "json"
	default:
		return "bibtex"
	}
}
