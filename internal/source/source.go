// Package source defines the pluggable record-source strategies and their
// registry. Each strategy loads one corpus format (BibTeX export, parsed
// JSON, RSS/Atom feed) into ordered ArticleRecords.
package source

import (
	"context"
	"fmt"

	"BibScreen/internal/domain"
)

// Request carries all parameters required to load one configured corpus.
type Request struct {
	CorpusName string
	Path       string
	URL        string
	Options    map[string]string
}

// Strategy captures a single corpus-format implementation.
type Strategy interface {
	Name() string
	Load(ctx context.Context, req Request) ([]domain.ArticleRecord, error)
}

// Registry keeps a mapping from format names to their implementations.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: map[string]Strategy{}}
}

// Register adds or replaces a strategy implementation.
func (r *Registry) Register(strategy Strategy) {
	if r.strategies == nil {
		r.strategies = map[string]Strategy{}
	}
	r.strategies[strategy.Name()] = strategy
}

// Resolve returns a strategy by format name or an error if it is absent.
func (r *Registry) Resolve(name string) (Strategy, error) {
	if strategy, ok := r.strategies[name]; ok {
		return strategy, nil
	}
	return nil, fmt.Errorf("source format %s is not registered", name)
}
