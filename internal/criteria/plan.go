package criteria

import (
	"fmt"
	"strings"

	"BibScreen/internal/match"
)

// Scope restricts which record fields a guard inspects.
type Scope int

const (
	ScopeEither Scope = iota
	ScopeTitle
	ScopeAbstract
)

// Guard is one configured step of the decision chain: a keyword category, the
// fields it inspects, the match mode, and the reason reported when it decides
// the record. Require guards exclude when they do NOT fire; forbid guards
// exclude when they do.
type Guard struct {
	Category string
	Section  Section
	Scope    Scope
	Mode     match.Mode
	Require  bool
	Reason   string
}

// Override cancels a competing-category flag when the title matches both the
// primary category and at least one qualifier keyword. Declared as data so
// criteria files can define their own override tuples.
type Override struct {
	Primary   string
	Competing string
	When      []string
}

// Plan is the fixed, ordered rule chain derived from a criteria model. Guard
// order is policy: subject-matter exclusions run before document-type
// exclusions so the reported reason reflects that precedence.
type Plan struct {
	Primary       string
	PrimaryReason string
	Competing     string
	Overrides     []Override
	Chain         []Guard
	IncludeReason string
}

// Rule keys understood by the planner. Category values default to the
// conventional names when the rule is absent and the category exists.
const (
	RulePrimaryCategory  = "primary_category"
	RuleCompeting        = "competing_category"
	RuleCompetingWhen    = "competing_override"
	RuleOriginCategory   = "origin_category"
	RuleLocationCategory = "location_category"
	RuleDocTypeCategory  = "document_type_category"
)

const (
	defaultPrimaryCategory  = "primary_topic"
	defaultCompeting        = "competing_diagnosis"
	defaultOriginCategory   = "origin_exclusion"
	defaultLocationCategory = "anatomical_location"
	defaultDocTypeCategory  = "study_types"
)

// Default reason texts; criteria files may override each via a *_reason rule.
const (
	ReasonNotPrimary  = "not primary topic / primary topic is a different category"
	ReasonWrongOrigin = "non-primary origin/subtype"
	ReasonNoLocation  = "required secondary criterion absent"
	ReasonDocType     = "excluded document type"
	ReasonInclude     = "satisfies primary topic and all required criteria"
)

func buildPlan(m *Model) (Plan, error) {
	plan := Plan{
		PrimaryReason: m.RuleString("primary_reason", ReasonNotPrimary),
		IncludeReason: m.RuleString("include_reason", ReasonInclude),
	}

	primary, err := resolveCategory(m, RulePrimaryCategory, defaultPrimaryCategory, SectionInclusion)
	if err != nil {
		return Plan{}, err
	}
	if primary == "" {
		return Plan{}, fmt.Errorf("criteria: no primary inclusion category defined (expected %q or a %s rule)",
			defaultPrimaryCategory, RulePrimaryCategory)
	}
	plan.Primary = primary

	competing, err := resolveCategory(m, RuleCompeting, defaultCompeting, SectionExclusion)
	if err != nil {
		return Plan{}, err
	}
	plan.Competing = competing

	if when := splitKeywordList(m.RuleString(RuleCompetingWhen, "")); len(when) > 0 {
		if competing == "" {
			return Plan{}, fmt.Errorf("criteria: rule %s set but no competing category defined", RuleCompetingWhen)
		}
		plan.Overrides = append(plan.Overrides, Override{
			Primary:   primary,
			Competing: competing,
			When:      when,
		})
	}

	// Guard order is deliberate: origin before location before document type.
	origin, err := resolveCategory(m, RuleOriginCategory, defaultOriginCategory, SectionExclusion)
	if err != nil {
		return Plan{}, err
	}
	if origin != "" {
		plan.Chain = append(plan.Chain, Guard{
			Category: origin,
			Section:  SectionExclusion,
			Scope:    ScopeEither,
			Mode:     match.ModeAuto,
			Reason:   m.RuleString("origin_reason", ReasonWrongOrigin),
		})
	}

	location, err := resolveCategory(m, RuleLocationCategory, defaultLocationCategory, SectionInclusion)
	if err != nil {
		return Plan{}, err
	}
	if location != "" {
		plan.Chain = append(plan.Chain, Guard{
			Category: location,
			Section:  SectionInclusion,
			Scope:    ScopeEither,
			Mode:     match.ModeAuto,
			Require:  true,
			Reason:   m.RuleString("location_reason", ReasonNoLocation),
		})
	}

	docType, err := resolveCategory(m, RuleDocTypeCategory, defaultDocTypeCategory, SectionExclusion)
	if err != nil {
		return Plan{}, err
	}
	if docType != "" {
		plan.Chain = append(plan.Chain, Guard{
			Category: docType,
			Section:  SectionExclusion,
			Scope:    ScopeTitle,
			Mode:     match.ModeDocType,
			Reason:   m.RuleString("document_type_reason", ReasonDocType),
		})
	}

	return plan, nil
}

// resolveCategory maps a rule key to a category name. An explicitly named
// category must exist; the conventional fallback is used only when present.
func resolveCategory(m *Model, ruleKey, conventional string, section Section) (string, error) {
	if named := m.RuleString(ruleKey, ""); named != "" {
		name := normalizeKey(named)
		if !m.hasCategory(section, name) {
			return "", fmt.Errorf("criteria: rule %s names %s category %q which is missing or empty",
				ruleKey, section, name)
		}
		return name, nil
	}
	if m.hasCategory(section, conventional) {
		return conventional, nil
	}
	return "", nil
}

func splitKeywordList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := match.Normalize(p); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
