package criteriafile

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"BibScreen/internal/criteria"
)

// parseHTML handles heading-structured documents (e.g. a criteria document
// exported from a word processor as HTML): h1 marks a section, h2 a keyword
// category, and list items or paragraphs below carry the keywords. Rule
// sections reuse the "key: value" line convention of the text format.
func parseHTML(raw []byte) (criteria.Spec, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return criteria.Spec{}, fmt.Errorf("parse html: %w", err)
	}

	spec := emptySpec()
	current := sectionNone
	category := ""
	var description strings.Builder

	doc.Find("h1, h2, li, p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}

		switch goquery.NodeName(sel) {
		case "h1":
			current = classifySection(text)
			category = ""
		case "h2":
			if current == sectionInclusion || current == sectionExclusion {
				category = normalizeKey(text)
			}
		default:
			switch current {
			case sectionInclusion, sectionExclusion:
				if category == "" {
					return
				}
				target := spec.Inclusion
				if current == sectionExclusion {
					target = spec.Exclusion
				}
				target[category] = append(target[category], splitKeywords(text)...)
			case sectionRules:
				if key, value, ok := strings.Cut(text, ":"); ok {
					spec.Rules[normalizeKey(key)] = coerceRule(value)
				}
			case sectionDescription:
				description.WriteString(text)
				description.WriteString(" ")
			}
		}
	})

	spec.Description = strings.TrimSpace(description.String())
	return spec, nil
}
