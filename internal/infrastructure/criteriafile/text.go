package criteriafile

import (
	"strings"

	"BibScreen/internal/criteria"
)

// parseText handles the delimited-section plain-text format:
//
//	[INCLUSION_KEYWORDS]
//	Primary Topic: Giant Cell Tumor, Osteoclastoma
//
//	[EXCLUSION_KEYWORDS]
//	Study Types: Systematic Review, Meta-Analysis
//
//	[RULES]
//	Competing Override: metastas
//
//	[DESCRIPTION]
//	Free text.
func parseText(content string) criteria.Spec {
	spec := emptySpec()
	current := sectionNone
	var description strings.Builder

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = classifySection(strings.TrimSpace(line[1 : len(line)-1]))
			continue
		}

		key, value, hasColon := strings.Cut(line, ":")
		switch {
		case hasColon && (current == sectionInclusion || current == sectionExclusion):
			keywords := splitKeywords(value)
			if len(keywords) == 0 {
				continue
			}
			target := spec.Inclusion
			if current == sectionExclusion {
				target = spec.Exclusion
			}
			target[normalizeKey(key)] = append(target[normalizeKey(key)], keywords...)
		case hasColon && current == sectionRules:
			spec.Rules[normalizeKey(key)] = coerceRule(value)
		case current == sectionDescription:
			description.WriteString(line)
			description.WriteString(" ")
		}
	}

	spec.Description = strings.TrimSpace(description.String())
	return spec
}
