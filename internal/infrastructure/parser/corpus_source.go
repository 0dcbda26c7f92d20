package parser

import (
	"context"
	"fmt"
	"log/slog"

	"BibScreen/internal/config"
	"BibScreen/internal/domain"
	"BibScreen/internal/ports"
	"BibScreen/internal/source"
)

// CorpusSource implements RecordSource over registered format strategies,
// concatenating every configured corpus in declaration order.
type CorpusSource struct {
	registry *source.Registry
	corpora  []config.CorpusConfig
	logger   *slog.Logger
}

var _ ports.RecordSource = (*CorpusSource)(nil)

// NewCorpusSource wires the strategy registry with config-defined corpora.
func NewCorpusSource(reg *source.Registry, corpora []config.CorpusConfig, log *slog.Logger) *CorpusSource {
	return &CorpusSource{
		registry: reg,
		corpora:  corpora,
		logger:   log,
	}
}

// Load iterates over configured corpora and executes their strategies.
// Record order follows corpus declaration order, then each corpus's own
// internal order; duplicate keys across corpora keep their first occurrence.
func (s *CorpusSource) Load(ctx context.Context) ([]domain.ArticleRecord, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("source registry is not configured")
	}

	s.debug("load corpora", "count", len(s.corpora))

	var aggregated []domain.ArticleRecord
	seen := map[string]struct{}{}
	for _, corpus := range s.corpora {
		strategy, err := s.registry.Resolve(corpus.Format)
		if err != nil {
			return nil, fmt.Errorf("corpus %s: %w", corpus.Name, err)
		}

		req := source.Request{
			CorpusName: corpus.Name,
			Path:       corpus.Path,
			URL:        corpus.URL,
			Options:    corpus.Options,
		}

		records, err := strategy.Load(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("load corpus %s: %w", corpus.Name, err)
		}

		kept := 0
		for _, rec := range records {
			if _, ok := seen[rec.Key]; ok && rec.Key != "" {
				continue
			}
			seen[rec.Key] = struct{}{}
			aggregated = append(aggregated, rec)
			kept++
		}
		s.debug("corpus loaded", "corpus", corpus.Name, "format", corpus.Format, "records", len(records), "kept", kept)
	}

	s.debug("corpus source done", "total_records", len(aggregated))
	return aggregated, nil
}

func (s *CorpusSource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
