package parser

import (
	"fmt"
	"regexp"
	"strings"

	"BibScreen/internal/domain"
)

var (
	entryExpr = regexp.MustCompile(`@\w+\s*\{`)
	fieldExpr = map[string]*regexp.Regexp{}
)

var bibFields = []string{"title", "abstract", "journal", "year", "author", "doi"}

func init() {
	for _, field := range bibFields {
		fieldExpr[field] = regexp.MustCompile(`(?is)` + field + `\s*=\s*\{(.*?)\}`)
	}
}

// ParseBibTeX extracts records from a BibTeX export. Field extraction is
// deliberately lexical: `field={...}` bodies are captured non-greedily and
// newlines flattened. Missing fields become empty strings.
func ParseBibTeX(content string) ([]domain.ArticleRecord, error) {
	chunks := entryExpr.Split(content, -1)
	if len(chunks) < 2 {
		return nil, fmt.Errorf("bibtex: no entries found")
	}

	records := make([]domain.ArticleRecord, 0, len(chunks)-1)
	for _, chunk := range chunks[1:] {
		records = append(records, parseEntry(chunk))
	}
	return records, nil
}

func parseEntry(chunk string) domain.ArticleRecord {
	head, _, _ := strings.Cut(chunk, "\n")
	key := strings.TrimSuffix(strings.TrimSpace(head), ",")

	fields := map[string]string{}
	for name, expr := range fieldExpr {
		if m := expr.FindStringSubmatch(chunk); m != nil {
			fields[name] = flatten(m[1])
		}
	}

	return domain.ArticleRecord{
		Key:      key,
		Title:    fields["title"],
		Abstract: fields["abstract"],
		Journal:  fields["journal"],
		Year:     fields["year"],
		Author:   fields["author"],
		DOI:      fields["doi"],
	}
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
