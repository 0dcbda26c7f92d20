// Package feed adapts RSS/Atom feeds into screening corpora, letting the
// pipeline triage alert-service items the same way as BibTeX exports.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"BibScreen/internal/domain"
	"BibScreen/internal/source"
)

// Source loads candidate records from an RSS or Atom feed URL. Item titles
// map to titles and item descriptions stand in for abstracts.
type Source struct {
	parser *gofeed.Parser
}

var _ source.Strategy = (*Source)(nil)

// NewSource wires an HTTP client; a nil client gets a 20s-timeout default.
func NewSource(client *http.Client) *Source {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	p := gofeed.NewParser()
	p.Client = client
	p.UserAgent = "BibScreen/1.0"
	return &Source{parser: p}
}

// Name identifies the strategy inside the registry.
func (s *Source) Name() string {
	return "feed"
}

// Load fetches and parses the configured feed, preserving item order.
func (s *Source) Load(ctx context.Context, req source.Request) ([]domain.ArticleRecord, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("corpus %s: feed source requires a url", req.CorpusName)
	}

	parsed, err := s.parser.ParseURLWithContext(req.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: fetch feed: %w", req.CorpusName, err)
	}

	records := make([]domain.ArticleRecord, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		key := item.GUID
		if key == "" {
			key = item.Link
		}
		records = append(records, domain.ArticleRecord{
			Key:      key,
			Title:    item.Title,
			Abstract: item.Description,
		})
	}
	return records, nil
}
