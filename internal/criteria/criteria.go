// Package criteria defines the validated, immutable screening criteria model
// and the data-driven rule plan the decision engine executes.
package criteria

import (
	"fmt"
	"sort"
	"strings"

	"BibScreen/internal/match"
)

// Section identifies which half of the criteria a category belongs to.
type Section int

const (
	SectionInclusion Section = iota
	SectionExclusion
)

// String returns the section name used in memo keys and diagnostics.
func (s Section) String() string {
	if s == SectionInclusion {
		return "inclusion"
	}
	return "exclusion"
}

// Spec is the raw, unvalidated shape produced by the criteria-file adapters.
// Keyword casing and duplicates are tolerated here; Model construction
// canonicalizes everything.
type Spec struct {
	Inclusion   map[string][]string `yaml:"inclusion" json:"inclusion"`
	Exclusion   map[string][]string `yaml:"exclusion" json:"exclusion"`
	Rules       map[string]any      `yaml:"rules" json:"rules"`
	Description string              `yaml:"description" json:"description"`
}

// Model is the validated screening configuration. Keyword sets are
// case-insensitive (stored upper-cased), deduplicated, and immutable after
// construction; the derived Plan fixes the guard order the engine runs.
type Model struct {
	inclusion   map[string][]string
	exclusion   map[string][]string
	rules       map[string]any
	description string
	plan        Plan
}

// New validates the spec and builds the immutable model plus its rule plan.
// All structural problems (empty model, plan referencing a missing category)
// surface here, before any record is evaluated.
func New(spec Spec) (*Model, error) {
	m := &Model{
		inclusion:   normalizeCategories(spec.Inclusion),
		exclusion:   normalizeCategories(spec.Exclusion),
		rules:       map[string]any{},
		description: strings.TrimSpace(spec.Description),
	}
	for k, v := range spec.Rules {
		m.rules[normalizeKey(k)] = v
	}

	if len(m.inclusion) == 0 {
		return nil, fmt.Errorf("criteria: no inclusion categories defined")
	}

	plan, err := buildPlan(m)
	if err != nil {
		return nil, err
	}
	m.plan = plan

	return m, nil
}

// Keywords returns a copy of the keyword set for a category, or nil when the
// category does not exist in the section.
func (m *Model) Keywords(section Section, category string) []string {
	var set []string
	switch section {
	case SectionInclusion:
		set = m.inclusion[category]
	default:
		set = m.exclusion[category]
	}
	if set == nil {
		return nil
	}
	out := make([]string, len(set))
	copy(out, set)
	return out
}

// Categories lists the category keys of a section in sorted order.
func (m *Model) Categories(section Section) []string {
	src := m.inclusion
	if section == SectionExclusion {
		src = m.exclusion
	}
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Plan returns the derived rule plan. The returned value shares no mutable
// state with the model beyond read-only keyword slices.
func (m *Model) Plan() Plan {
	return m.plan
}

// Description returns the free-text description carried by the criteria file.
func (m *Model) Description() string {
	return m.description
}

// RuleString returns a string-valued rule, or fallback when absent or not a
// string.
func (m *Model) RuleString(key, fallback string) string {
	if v, ok := m.rules[normalizeKey(key)]; ok {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return fallback
}

// RuleBool returns a boolean-valued rule, or fallback when absent or not a
// bool.
func (m *Model) RuleBool(key string, fallback bool) bool {
	if v, ok := m.rules[normalizeKey(key)]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

func (m *Model) hasCategory(section Section, category string) bool {
	if section == SectionInclusion {
		return len(m.inclusion[category]) > 0
	}
	return len(m.exclusion[category]) > 0
}

func normalizeCategories(src map[string][]string) map[string][]string {
	out := map[string][]string{}
	for category, keywords := range src {
		key := normalizeKey(category)
		if key == "" {
			continue
		}
		deduped := dedupeKeywords(keywords)
		if len(deduped) == 0 {
			continue
		}
		out[key] = deduped
	}
	return out
}

func dedupeKeywords(keywords []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		canonical := match.Normalize(kw)
		if canonical == "" {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}
	return out
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
}
