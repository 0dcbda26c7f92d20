// Package criteriafile parses human-authored criteria files into validated
// criteria models. Three formats are supported, dispatched by extension:
// delimited-section plain text, heading-structured HTML documents, and
// direct YAML/JSON structures. Every adapter feeds the same validating
// constructor, so a malformed criteria file fails before screening starts.
package criteriafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"BibScreen/internal/criteria"
)

// Load reads a criteria file and builds the validated model.
func Load(path string) (*criteria.Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("criteria file: read %s: %w", path, err)
	}

	spec, err := Parse(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("criteria file %s: %w", path, err)
	}

	model, err := criteria.New(spec)
	if err != nil {
		return nil, fmt.Errorf("criteria file %s: %w", path, err)
	}
	return model, nil
}

// Parse decodes raw criteria content according to the file extension.
func Parse(raw []byte, ext string) (criteria.Spec, error) {
	switch strings.ToLower(ext) {
	case ".txt":
		return parseText(string(raw)), nil
	case ".html", ".htm":
		return parseHTML(raw)
	case ".json", ".yaml", ".yml":
		return parseStructured(raw)
	default:
		return criteria.Spec{}, fmt.Errorf("unsupported criteria format %q (supported: .txt, .html, .json, .yaml)", ext)
	}
}

type section int

const (
	sectionNone section = iota
	sectionInclusion
	sectionExclusion
	sectionRules
	sectionDescription
)

func classifySection(name string) section {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "inclusion"):
		return sectionInclusion
	case strings.Contains(name, "exclusion"):
		return sectionExclusion
	case strings.Contains(name, "rule"), strings.Contains(name, "config"):
		return sectionRules
	case strings.Contains(name, "description"):
		return sectionDescription
	default:
		return sectionNone
	}
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
}

func splitKeywords(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// coerceRule converts textual rule values: yes/true/1 and no/false/0 become
// booleans, everything else stays a string parameter.
func coerceRule(value string) any {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1":
		return true
	case "no", "false", "0":
		return false
	default:
		return strings.TrimSpace(value)
	}
}

func emptySpec() criteria.Spec {
	return criteria.Spec{
		Inclusion: map[string][]string{},
		Exclusion: map[string][]string{},
		Rules:     map[string]any{},
	}
}
