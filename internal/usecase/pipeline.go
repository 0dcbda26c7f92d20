package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"BibScreen/internal/domain"
	"BibScreen/internal/ports"
)

// PipelineDeps wires all driven adapters into the screening pipeline.
type PipelineDeps struct {
	Source     ports.RecordSource
	Screener   ports.Screener
	Writer     ports.DecisionWriter
	Repository ports.DecisionRepository
	Logger     *slog.Logger
	Workers    int
}

// Pipeline implements the corpus screening workflow: load the ordered
// record sequence, evaluate every record independently, and export the
// decisions in input order.
type Pipeline struct {
	source     ports.RecordSource
	screener   ports.Screener
	writer     ports.DecisionWriter
	repository ports.DecisionRepository
	logger     *slog.Logger
	workers    int
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	workers := deps.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pipeline{
		source:     deps.Source,
		screener:   deps.Screener,
		writer:     deps.Writer,
		repository: deps.Repository,
		logger:     deps.Logger,
		workers:    workers,
	}
}

// Run screens the whole corpus once and returns the ordered decisions.
// Records are independent, so evaluation fans out across workers; results
// are written back by index so output order always matches input order.
func (p *Pipeline) Run(ctx context.Context) ([]domain.Decision, error) {
	if p.source == nil || p.screener == nil {
		return nil, fmt.Errorf("pipeline misconfigured: source and screener are required")
	}

	records, err := p.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	p.info("corpus loaded", "records", len(records))

	if p.repository != nil && len(records) > 0 {
		keys := make([]string, len(records))
		for i, rec := range records {
			keys[i] = rec.Key
		}
		screened, err := p.repository.AlreadyScreened(ctx, keys)
		if err != nil {
			return nil, fmt.Errorf("load prior decisions: %w", err)
		}
		if len(screened) > 0 {
			p.info("prior decisions found, re-screening deterministically", "count", len(screened))
		}
	}

	decisions := make([]domain.Decision, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			decisions[i] = p.screener.Screen(rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("screen corpus: %w", err)
	}

	included := 0
	for _, d := range decisions {
		if d.Included() {
			included++
		}
	}
	p.info("screening done", "records", len(decisions), "included", included, "excluded", len(decisions)-included)

	if p.writer != nil {
		if err := p.writer.WriteAll(ctx, decisions); err != nil {
			return nil, fmt.Errorf("write decisions: %w", err)
		}
	}

	if p.repository != nil {
		for _, d := range decisions {
			if err := p.repository.SaveDecision(ctx, d); err != nil {
				return nil, fmt.Errorf("persist decision %s: %w", d.Key, err)
			}
		}
	}

	return decisions, nil
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
