package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"BibScreen/internal/domain"
	"BibScreen/internal/source"
)

// JSONSource loads a corpus from a pre-parsed JSON array of records, the
// hand-off format produced by external bibliography tooling.
type JSONSource struct{}

var _ source.Strategy = (*JSONSource)(nil)

// NewJSONSource builds the strategy; it holds no state.
func NewJSONSource() *JSONSource {
	return &JSONSource{}
}

// Name identifies the strategy inside the registry.
func (j *JSONSource) Name() string {
	return "json"
}

type jsonRecord struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Journal  string `json:"journal"`
	Year     string `json:"year"`
	Author   string `json:"author"`
	DOI      string `json:"doi"`
}

// Load reads and decodes the configured JSON corpus, preserving input order.
func (j *JSONSource) Load(_ context.Context, req source.Request) ([]domain.ArticleRecord, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("corpus %s: json source requires a path", req.CorpusName)
	}

	raw, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: read %s: %w", req.CorpusName, req.Path, err)
	}

	var items []jsonRecord
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("corpus %s: decode %s: %w", req.CorpusName, req.Path, err)
	}

	records := make([]domain.ArticleRecord, 0, len(items))
	for _, item := range items {
		records = append(records, domain.ArticleRecord{
			Key:      item.Key,
			Title:    item.Title,
			Abstract: item.Abstract,
			Journal:  item.Journal,
			Year:     item.Year,
			Author:   item.Author,
			DOI:      item.DOI,
		})
	}
	return records, nil
}
