package parser

import (
	"context"
	"fmt"
	"os"

	"BibScreen/internal/domain"
	"BibScreen/internal/source"
)

// BibTeXSource loads a corpus from a BibTeX export file.
type BibTeXSource struct{}

var _ source.Strategy = (*BibTeXSource)(nil)

// NewBibTeXSource builds the strategy; it holds no state.
func NewBibTeXSource() *BibTeXSource {
	return &BibTeXSource{}
}

// Name identifies the strategy inside the registry.
func (b *BibTeXSource) Name() string {
	return "bibtex"
}

// Load reads and parses the configured .bib file.
func (b *BibTeXSource) Load(_ context.Context, req source.Request) ([]domain.ArticleRecord, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("corpus %s: bibtex source requires a path", req.CorpusName)
	}

	raw, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: read %s: %w", req.CorpusName, req.Path, err)
	}

	records, err := ParseBibTeX(string(raw))
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", req.CorpusName, err)
	}
	return records, nil
}
