package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/lib/pq"

	"BibScreen/internal/config"
	"BibScreen/internal/criteria"
	"BibScreen/internal/domain"
	"BibScreen/internal/engine"
	"BibScreen/internal/infrastructure/criteriafile"
	"BibScreen/internal/infrastructure/csvout"
	"BibScreen/internal/infrastructure/feed"
	"BibScreen/internal/infrastructure/parser"
	"BibScreen/internal/infrastructure/storage"
	"BibScreen/internal/logging"
	"BibScreen/internal/ports"
	"BibScreen/internal/source"
	"BibScreen/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
	db       *sql.DB
}

// New builds a runnable application instance. All criteria validation
// happens here, before any record is loaded or screened.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	model, err := loadCriteria(cfg.Criteria.Path)
	if err != nil {
		return nil, err
	}
	baseLogger.Debug("criteria ready", "description", model.Description())

	registry := source.NewRegistry()
	registry.Register(parser.NewBibTeXSource())
	registry.Register(parser.NewJSONSource())
	registry.Register(feed.NewSource(nil))

	corpusSource := parser.NewCorpusSource(registry, cfg.Corpora, baseLogger.With("component", "source"))

	var writer ports.DecisionWriter
	if cfg.Output.Path == "" || cfg.Output.Path == "-" {
		writer = csvout.NewWriter(os.Stdout)
	} else {
		writer = csvout.NewFileWriter(cfg.Output.Path)
	}

	var repository ports.DecisionRepository
	var db *sql.DB
	if cfg.Database.DSN != "" {
		db, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		repository = storage.NewPostgresRepository(db)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     corpusSource,
		Screener:   engine.New(model),
		Writer:     writer,
		Repository: repository,
		Logger:     baseLogger.With("component", "pipeline"),
		Workers:    cfg.Screening.Workers,
	})

	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline, db: db}, nil
}

// Run performs a single corpus screening pass.
func (a *Application) Run(ctx context.Context) ([]domain.Decision, error) {
	if a.pipeline == nil {
		return nil, nil
	}
	return a.pipeline.Run(ctx)
}

// Close releases held resources.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func loadCriteria(path string) (*criteria.Model, error) {
	if path == "" {
		return criteria.Default(), nil
	}
	return criteriafile.Load(path)
}
